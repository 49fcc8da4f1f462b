// Package scheduler multiplexes many animations onto one timing source.
//
// Animations register once for their lifetime and receive a [Handle] into
// the scheduler's slot arena. Activating a handle adds it to the running
// set; the timing source is started when the running set becomes non-empty
// and stopped when it empties, so an idle scheduler costs no wakeups.
//
// # Example
//
//	s := scheduler.New(scheduler.Config{Source: clock.NewManual(60)})
//	h := s.Register(anim)
//	s.Activate(h)
//	...
//	s.Unregister(h)
//
// # Thread Safety
//
// A Scheduler is NOT safe for concurrent use. All calls, including frame
// delivery from the timing source, must happen on the goroutine that owns
// it. Timing sources that fire elsewhere hand frames over through a
// [clock.Mailbox].
package scheduler
