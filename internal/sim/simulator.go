package sim

import (
	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/physics"
)

type Simulator struct {
	params     Params
	dyn        *physics.CentralBody
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
}

func New(p Params) *Simulator {
	return &Simulator{
		params:     p,
		dyn:        physics.NewCentralBody(p.Constants),
		integrator: integrators.NewVerlet(),
		metrics:    make([]dynamo.Metric, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) System() *physics.CentralBody { return s.dyn }

// Integrate advances the initial condition Steps-1 times and returns every
// sample, the initial condition included. Non-finite values are not caught.
func (s *Simulator) Integrate(x0, y0, vx0, vy0 float64) *Trajectory {
	n := s.params.Steps
	if n < 0 {
		n = 0
	}

	tr := &Trajectory{
		Params:  s.params,
		X:       make([]float64, n),
		Y:       make([]float64, n),
		VX:      make([]float64, n),
		VY:      make([]float64, n),
		Metrics: make(map[string]float64),
	}
	if n == 0 {
		return tr
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := dynamo.State{x0, y0, vx0, vy0}
	dt := s.params.Dt

	for i := 0; i < n; i++ {
		if i > 0 {
			x = s.integrator.Step(s.dyn, x, float64(i-1)*dt, dt)
		}
		tr.X[i], tr.Y[i], tr.VX[i], tr.VY[i] = x[0], x[1], x[2], x[3]

		for _, m := range s.metrics {
			m.Observe(x, float64(i)*dt)
		}
	}

	for _, m := range s.metrics {
		tr.Metrics[m.Name()] = m.Value()
	}

	return tr
}

// Integrate runs a fresh Simulator without metrics.
func Integrate(p Params, x0, y0, vx0, vy0 float64) *Trajectory {
	return New(p).Integrate(x0, y0, vx0, vy0)
}
