package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/dynamo"
)

// Stability is the fraction of states whose distance from the origin stays
// below threshold. Non-finite states count as violations.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(x dynamo.State, t float64) {
	s.samples++
	if !x.IsValid() || math.Hypot(x[0], x[1]) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// Radius records the extreme distance from the origin, the smallest when
// constructed with NewMinRadius and the largest with NewMaxRadius.
type Radius struct {
	name    string
	min     bool
	value   float64
	samples int
}

func NewMinRadius() *Radius { return &Radius{name: "radius_min", min: true} }
func NewMaxRadius() *Radius { return &Radius{name: "radius_max"} }

func (r *Radius) Name() string { return r.name }

func (r *Radius) Observe(x dynamo.State, t float64) {
	d := math.Hypot(x[0], x[1])
	if math.IsNaN(d) {
		return
	}
	if r.samples == 0 || (r.min && d < r.value) || (!r.min && d > r.value) {
		r.value = d
	}
	r.samples++
}

func (r *Radius) Value() float64 { return r.value }

func (r *Radius) Reset() {
	r.value = 0
	r.samples = 0
}

// Default returns the metrics reported for every run. divergence is the
// radius beyond which a state counts as unstable.
func Default(dyn dynamo.System, divergence float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergyDrift(dyn),
		NewMomentumDrift(dyn),
		NewMinRadius(),
		NewMaxRadius(),
		NewStability(divergence),
	}
}
