// Package anim replays a trajectory as a growing polyline.
//
// An [Animator] walks a trajectory at a fixed stride. Every call to
// [Animator.Advance] appends one point to the drawn sequence until the last
// frame, after which the animator is [Done] for good. The animator holds no
// reference to a display; renderers read [Animator.Points] after each frame.
package anim

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Source is the read-only view of a trajectory the animator consumes.
type Source interface {
	Len() int
	At(i int) sim.Point
}

type Phase int

const (
	Initialized Phase = iota
	Running
	Done
)

func (p Phase) String() string {
	switch p {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type Animator struct {
	src    Source
	stride int
	frames int
	next   int
	points []sim.Point
}

// New returns an animator over src that draws every stride-th sample. The
// frame count is floor(src.Len()/stride), so no frame reads past the end.
func New(src Source, stride int) (*Animator, error) {
	if stride < 1 {
		return nil, fmt.Errorf("stride must be at least 1, got %d: %w", stride, dynamo.ErrParameterBounds)
	}

	frames := src.Len() / stride
	return &Animator{
		src:    src,
		stride: stride,
		frames: frames,
		points: make([]sim.Point, 0, frames),
	}, nil
}

func (a *Animator) Stride() int     { return a.stride }
func (a *Animator) FrameCount() int { return a.frames }

// Frame is the number of frames drawn so far.
func (a *Animator) Frame() int { return a.next }

func (a *Animator) Phase() Phase {
	switch {
	case a.next >= a.frames:
		return Done
	case a.next == 0:
		return Initialized
	default:
		return Running
	}
}

func (a *Animator) Done() bool { return a.Phase() == Done }

// Advance draws the next frame and returns its point. It returns false once
// every frame has been drawn and leaves the drawn points unchanged.
func (a *Animator) Advance() (sim.Point, bool) {
	if a.next >= a.frames {
		return sim.Point{}, false
	}

	p := a.src.At(a.next * a.stride)
	a.points = append(a.points, p)
	a.next++
	return p, true
}

// Points returns the drawn polyline. The slice is owned by the animator.
func (a *Animator) Points() []sim.Point { return a.points }

// Progress is the fraction of frames drawn, in [0, 1].
func (a *Animator) Progress() float64 {
	if a.frames == 0 {
		return 1
	}
	return float64(a.next) / float64(a.frames)
}

// SampleIndex maps the most recent frame back to its trajectory index, or -1
// before the first frame.
func (a *Animator) SampleIndex() int {
	if a.next == 0 {
		return -1
	}
	return (a.next - 1) * a.stride
}

// Reset clears the drawn points and returns to Initialized.
func (a *Animator) Reset() {
	a.next = 0
	a.points = a.points[:0]
}
