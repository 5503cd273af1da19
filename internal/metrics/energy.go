package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/dynamo"
)

// EnergyDrift tracks the largest relative deviation from the energy of the
// first observed state.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
	dyn           dynamo.System
}

func NewEnergyDrift(dyn dynamo.System) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		dyn:  dyn,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x dynamo.State, t float64) {
	ec, ok := e.dyn.(dynamo.Hamiltonian)
	if !ok {
		return
	}

	energy := ec.Energy(x)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

type angularMomentum interface {
	AngularMomentum(x dynamo.State) float64
}

// MomentumDrift is the angular momentum counterpart of EnergyDrift.
type MomentumDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
	dyn      dynamo.System
}

func NewMomentumDrift(dyn dynamo.System) *MomentumDrift {
	return &MomentumDrift{
		name: "momentum_drift",
		dyn:  dyn,
	}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(x dynamo.State, t float64) {
	am, ok := m.dyn.(angularMomentum)
	if !ok {
		return
	}

	l := am.AngularMomentum(x)

	if m.samples == 0 {
		m.initial = l
	}
	m.samples++

	if m.initial != 0 {
		m.maxDrift = math.Max(m.maxDrift, math.Abs(l-m.initial)/math.Abs(m.initial))
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
