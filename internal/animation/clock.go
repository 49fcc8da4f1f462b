package animation

import (
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/solvers"
	"github.com/san-kum/motion/internal/vector"
)

// NewClock returns an animation whose value is the time elapsed while
// running. It never resolves and runs until stopped.
func NewClock[A vector.Lanes[S], S vector.Float](sched *scheduler.Scheduler) *Animation[A, S] {
	return New[A, S](sched, solvers.NewClock[A, S](), vector.Vector[A, S]{})
}

// NewFrameDeltas returns an animation whose value is the most recent dt.
func NewFrameDeltas[A vector.Lanes[S], S vector.Float](sched *scheduler.Scheduler) *Animation[A, S] {
	return New[A, S](sched, solvers.NewDeltas[A, S](), vector.Vector[A, S]{})
}
