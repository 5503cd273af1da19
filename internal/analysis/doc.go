// Package analysis provides spectral tools for sampled trajectories.
//
//   - [PowerSpectrum]: magnitude spectrum of a real series
//   - [DominantPeriod]: period of the strongest oscillation
//
// # Orbital Period
//
// Feeding the x coordinate of an orbit recovers its period, which can be
// compared against the Kepler period of the initial state:
//
//	period := analysis.DominantPeriod(traj.X, traj.Params.Dt)
package analysis
