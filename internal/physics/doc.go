// Package physics provides the restricted two-body model.
//
// [CentralBody] implements [dynamo.System] for a test particle moving under an
// inverse-square force toward a mass fixed at the origin. It also implements
// [dynamo.Hamiltonian], so the energy drift of a run can be measured:
//
//	dyn := physics.NewCentralBody(physics.DefaultConstants())
//	e0 := dyn.Energy(dynamo.State{1, 0, 0, 1})
//
// The free functions [Radius] and [Accel] are the closed-form pieces the
// model is built from.
package physics
