package integrators

import "github.com/san-kum/orbitsim/internal/dynamo"

// Verlet is the velocity Verlet (kick-drift-kick leapfrog) stepper. The
// position is fully advanced before the velocity update reads the new
// acceleration.
type Verlet struct {
	scratch dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) ensureScratch(n int) {
	if len(v.scratch) != n {
		v.scratch = make(dynamo.State, n)
	}
}

func (v *Verlet) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	v.ensureScratch(n)

	result := make(dynamo.State, n)
	dx := dyn.Derive(x, t)
	dt2 := dt * dt

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt2
	}

	// Acceleration depends on position only, so the old velocity is fine here.
	for i := 0; i < half; i++ {
		v.scratch[i] = result[i]
		v.scratch[half+i] = x[half+i]
	}

	dxNew := dyn.Derive(v.scratch, t+dt)

	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + 0.5*(dx[half+i]+dxNew[half+i])*dt
	}

	return result
}
