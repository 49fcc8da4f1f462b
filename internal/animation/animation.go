package animation

import (
	"math"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/vector"
)

type Animation[A vector.Lanes[S], S vector.Float] struct {
	state   motion.State[A, S]
	solver  motion.Solver[A, S]
	epsilon S

	enabled bool
	closed  bool

	onValue    func(vector.Vector[A, S])
	onComplete func()

	sched  *scheduler.Scheduler
	handle scheduler.Handle
}

// New creates an idle animation at initial and registers it with sched.
// A nil scheduler yields a detached animation that is only advanced by
// calling Tick directly.
func New[A vector.Lanes[S], S vector.Float](sched *scheduler.Scheduler, solver motion.Solver[A, S], initial vector.Vector[A, S]) *Animation[A, S] {
	a := &Animation[A, S]{
		solver:  solver,
		epsilon: S(motion.DefaultResolvingEpsilon),
		sched:   sched,
	}
	a.state.Value = initial
	a.state.Target = initial
	a.state.Origin = initial
	if sched != nil {
		a.handle = sched.Register(a)
	}
	return a
}

func (a *Animation[A, S]) Value() vector.Vector[A, S]    { return a.state.Value }
func (a *Animation[A, S]) Target() vector.Vector[A, S]   { return a.state.Target }
func (a *Animation[A, S]) Velocity() vector.Vector[A, S] { return a.state.Velocity }
func (a *Animation[A, S]) Elapsed() float64              { return a.state.Elapsed }
func (a *Animation[A, S]) State() motion.State[A, S]     { return a.state }
func (a *Animation[A, S]) Enabled() bool                 { return a.enabled }
func (a *Animation[A, S]) ResolvingEpsilon() S           { return a.epsilon }

// Resolved reports whether the animation is at rest for its current state.
func (a *Animation[A, S]) Resolved() bool {
	return a.solver.Resolved(a.state, a.epsilon)
}

// SetValue moves the animation to v, optionally notifying the value-changed
// callback.
func (a *Animation[A, S]) SetValue(v vector.Vector[A, S], postValueChanged bool) {
	a.state.Value = v
	if postValueChanged {
		a.post()
	}
}

func (a *Animation[A, S]) SetTarget(v vector.Vector[A, S]) {
	a.state.Target = v
}

// SetVelocity sets the rate of change of the value in units per second.
func (a *Animation[A, S]) SetVelocity(v vector.Vector[A, S]) {
	a.state.Velocity = v
}

func (a *Animation[A, S]) SetResolvingEpsilon(eps S) error {
	if err := motion.CheckPositive("resolving_epsilon", float64(eps), motion.ErrInvalidRange); err != nil {
		return err
	}
	a.epsilon = eps
	return nil
}

func (a *Animation[A, S]) OnValueChanged(fn func(vector.Vector[A, S])) {
	a.onValue = fn
}

func (a *Animation[A, S]) OnComplete(fn func()) {
	a.onComplete = fn
}

// Start enables the animation. It is a no-op when the animation is closed,
// already running, or already at rest.
func (a *Animation[A, S]) Start() {
	if a.closed || a.enabled {
		return
	}
	if a.solver.Resolved(a.state, a.epsilon) {
		return
	}
	if r, ok := a.solver.(motion.Rewinder[A, S]); ok {
		a.state = r.Rewind(a.state)
	}
	a.setEnabled(true)
}

// Stop disables the animation where it is.
func (a *Animation[A, S]) Stop() {
	a.halt()
}

// Resolve stops the animation and jumps to its rest state. Springs and
// easings snap to their target; decay keeps its value. The completion
// callback always fires.
func (a *Animation[A, S]) Resolve(postValueChanged bool) {
	a.halt()
	a.state, _ = a.solver.Settle(a.state)
	if postValueChanged {
		a.post()
	}
	a.complete()
}

// Tick advances a running animation by dt seconds. Ticking an idle
// animation, or ticking with a non-positive or non-finite dt, does nothing.
func (a *Animation[A, S]) Tick(dt float64) {
	if !a.enabled || !(dt > 0) || math.IsInf(dt, 1) {
		return
	}

	a.state = a.solver.Advance(dt, a.state)
	a.post()

	if !a.enabled || !a.solver.Resolved(a.state, a.epsilon) {
		return
	}

	a.halt()
	var snapped bool
	a.state, snapped = a.solver.Settle(a.state)
	if snapped {
		a.post()
	}
	a.complete()
}

// Clone returns a detached copy with the same state and solver
// configuration but no callbacks. Advancing the clone never affects a.
func (a *Animation[A, S]) Clone() *Animation[A, S] {
	return &Animation[A, S]{
		state:   a.state,
		solver:  a.solver.Clone(),
		epsilon: a.epsilon,
		enabled: a.enabled,
	}
}

// Close stops the animation and releases its scheduler slot. It is safe to
// call more than once.
func (a *Animation[A, S]) Close() {
	if a.closed {
		return
	}
	a.setEnabled(false)
	if a.sched != nil {
		a.sched.Unregister(a.handle)
	}
	a.closed = true
}

func (a *Animation[A, S]) halt() {
	a.setEnabled(false)
	a.state = a.solver.Halt(a.state)
}

func (a *Animation[A, S]) setEnabled(on bool) {
	if a.enabled == on {
		return
	}
	a.enabled = on
	if a.sched == nil || a.closed {
		return
	}
	if on {
		a.sched.Activate(a.handle)
	} else {
		a.sched.Deactivate(a.handle)
	}
}

func (a *Animation[A, S]) post() {
	if a.onValue != nil {
		a.onValue(a.state.Value)
	}
}

func (a *Animation[A, S]) complete() {
	if a.onComplete != nil {
		a.onComplete()
	}
}
