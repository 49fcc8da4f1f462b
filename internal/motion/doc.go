// Package motion provides the core primitives shared by the solvers, the
// animation lifecycle and the frame scheduler.
//
// The package defines:
//
//   - [State]: value, target and velocity of one animated quantity
//   - [Solver]: closed-form advance and convergence rules for a State
//   - [Ticker]: anything the scheduler can advance by a time delta
//   - [TimingSource]: the periodic frame clock that drives a scheduler
//   - [Frame]: one frame event delivered by a TimingSource
//
// # Example
//
//	spring := solvers.NewSpring[[1]float64, float64]()
//	st := motion.State[[1]float64, float64]{Target: vector.Scalar(10)}
//	st = spring.Advance(0.5, st)
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. States and solvers are
// owned by one animation and touched only from the goroutine that drives its
// scheduler.
package motion
