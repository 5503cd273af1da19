// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types shared by the
// physics models, the steppers and the trajectory builder:
//
//   - [State]: vector representing system state
//   - [System]: interface for second-order systems (d²q/dt² = a(q))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Hamiltonian]: optional energy function for conservation checks
//   - [Metric]: observer accumulating a scalar over a run
//
// # Example
//
//	dyn := physics.NewCentralBody(physics.DefaultConstants())
//	integ := integrators.NewVerlet()
//	next := integ.Step(dyn, dynamo.State{1, 0, 0, 1}, 0, 1e-4)
//
// # Errors
//
// Numerical failure is never recovered. Callers that need to surface it wrap
// [ErrInvalidState] in a [SimulationError] carrying the step and time.
package dynamo
