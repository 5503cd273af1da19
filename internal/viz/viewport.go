package viz

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Viewport is the fixed world-space window shown on the canvas.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

func DefaultViewport() Viewport {
	return Viewport{XMin: -0.5, XMax: 1.5, YMin: -0.5, YMax: 0.5}
}

func (v Viewport) Validate() error {
	if !(v.XMax > v.XMin) || !(v.YMax > v.YMin) {
		return fmt.Errorf("empty viewport %+v: %w", v, dynamo.ErrParameterBounds)
	}
	return nil
}

func (v Viewport) Contains(p sim.Point) bool {
	return p.X >= v.XMin && p.X <= v.XMax && p.Y >= v.YMin && p.Y <= v.YMax
}

// Project maps p to canvas sub-pixels with y pointing down. It reports false
// for non-finite points.
func (v Viewport) Project(c *Canvas, p sim.Point) (int, int, bool) {
	if !finite(p) {
		return 0, 0, false
	}
	w := float64(c.SubWidth() - 1)
	h := float64(c.SubHeight() - 1)
	px := (p.X - v.XMin) / (v.XMax - v.XMin) * w
	py := (v.YMax - p.Y) / (v.YMax - v.YMin) * h
	return int(math.Round(px)), int(math.Round(py)), true
}

// Clip trims the segment a-b to the viewport (Liang-Barsky). It reports false
// when nothing of the segment is visible.
func (v Viewport) Clip(a, b sim.Point) (sim.Point, sim.Point, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - v.XMin},
		{dx, v.XMax - a.X},
		{-dy, a.Y - v.YMin},
		{dy, v.YMax - a.Y},
	}

	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return sim.Point{X: a.X + t0*dx, Y: a.Y + t0*dy},
		sim.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}

func finite(p sim.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// DrawPolyline draws pts as connected segments clipped to v. A lone point is
// drawn as a single dot.
func DrawPolyline(c *Canvas, v Viewport, pts []sim.Point) {
	if len(pts) == 1 {
		if v.Contains(pts[0]) {
			if x, y, ok := v.Project(c, pts[0]); ok {
				c.Set(x, y)
			}
		}
		return
	}

	for i := 1; i < len(pts); i++ {
		a, b, ok := v.Clip(pts[i-1], pts[i])
		if !ok {
			continue
		}
		x0, y0, _ := v.Project(c, a)
		x1, y1, _ := v.Project(c, b)
		c.DrawLine(x0, y0, x1, y1)
	}
}

// DrawMarker draws a small filled disc of the given sub-pixel radius at p.
func DrawMarker(c *Canvas, v Viewport, p sim.Point, radius int) {
	if !v.Contains(p) {
		return
	}
	cx, cy, ok := v.Project(c, p)
	if !ok {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}
