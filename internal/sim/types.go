package sim

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/physics"
)

const (
	DefaultDt    = 0.0001
	DefaultSteps = 10000
)

// Params fixes everything a run depends on besides the initial condition.
type Params struct {
	Constants physics.Constants
	Dt        float64
	Steps     int
}

func DefaultParams() Params {
	return Params{
		Constants: physics.DefaultConstants(),
		Dt:        DefaultDt,
		Steps:     DefaultSteps,
	}
}

func (p Params) Validate() error {
	if p.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g: %w", p.Dt, dynamo.ErrParameterBounds)
	}
	if p.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d: %w", p.Steps, dynamo.ErrParameterBounds)
	}
	return nil
}

// Duration is the simulated time spanned by the trajectory.
func (p Params) Duration() float64 {
	if p.Steps < 1 {
		return 0
	}
	return float64(p.Steps-1) * p.Dt
}

type Point struct {
	X, Y float64
}

// Trajectory holds N equally spaced samples of a run. It is built once by
// Integrate and must not be modified afterwards.
type Trajectory struct {
	Params  Params
	X, Y    []float64
	VX, VY  []float64
	Metrics map[string]float64
}

func (tr *Trajectory) Len() int { return len(tr.X) }

func (tr *Trajectory) At(i int) Point {
	return Point{X: tr.X[i], Y: tr.Y[i]}
}

func (tr *Trajectory) State(i int) dynamo.State {
	return dynamo.State{tr.X[i], tr.Y[i], tr.VX[i], tr.VY[i]}
}

func (tr *Trajectory) Time(i int) float64 {
	return float64(i) * tr.Params.Dt
}

func (tr *Trajectory) Radii() []float64 {
	r := make([]float64, tr.Len())
	for i := range r {
		r[i] = physics.Radius(tr.X[i], tr.Y[i])
	}
	return r
}

// FirstInvalid returns the index of the first sample holding NaN or Inf, or
// -1 when every sample is finite.
func (tr *Trajectory) FirstInvalid() int {
	for i := 0; i < tr.Len(); i++ {
		if !tr.State(i).IsValid() {
			return i
		}
	}
	return -1
}

func (tr *Trajectory) Valid() bool { return tr.FirstInvalid() < 0 }

// Err reports the first non-finite sample as a *dynamo.SimulationError
// wrapping dynamo.ErrInvalidState.
func (tr *Trajectory) Err() error {
	i := tr.FirstInvalid()
	if i < 0 {
		return nil
	}
	return &dynamo.SimulationError{
		Step:    i,
		Time:    tr.Time(i),
		State:   tr.State(i),
		Wrapped: dynamo.ErrInvalidState,
	}
}
