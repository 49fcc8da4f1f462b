// Package animation implements the lifecycle shared by every animation kind.
//
// An [Animation] pairs a [motion.State] with one [motion.Solver] and moves
// through three states:
//
//   - idle: constructed or stopped, not ticked
//   - running: enabled and in its scheduler's running set
//   - resolved: the solver reports rest; the animation disables itself,
//     settles, and fires its completion callback once
//
// [Spring], [Decay] and [Basic] wrap an Animation with setters specific to
// their solver. [Group] runs several detached animations as one.
//
// # Example
//
//	s := animation.NewSpring(sched, vector.Scalar(0))
//	_ = s.Configure(0.4, 0.8)
//	s.OnValueChanged(func(v vector.Vec1) { render(vector.ScalarOf(v)) })
//	s.SetTarget(vector.Scalar(320))
//	s.Start()
//	defer s.Close()
//
// # Callbacks
//
// Within one tick the value-changed callback always runs before the
// completion callback, and completion sees the settled value. Callbacks
// must not start or stop the animation that invoked them.
//
// # Thread Safety
//
// Animations are NOT safe for concurrent use and must only be touched from
// the goroutine that drives their scheduler.
package animation
