// Package solvers implements the closed-form solvers behind every animation:
// a damped harmonic spring, exponential velocity decay, cubic-bezier easing
// and a passthrough clock.
//
// Each solver implements [motion.Solver] and is configured through setters
// that reject invalid parameters with a [motion.ConfigError]. Advancing never
// fails and never integrates numerically: every step evaluates the analytic
// solution for the elapsed dt directly.
package solvers
