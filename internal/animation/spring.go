package animation

import (
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/solvers"
	"github.com/san-kum/motion/internal/vector"
)

// Spring animates toward its target with a damped spring.
type Spring[A vector.Lanes[S], S vector.Float] struct {
	*Animation[A, S]
	spring *solvers.Spring[A, S]
}

func NewSpring[A vector.Lanes[S], S vector.Float](sched *scheduler.Scheduler, initial vector.Vector[A, S]) *Spring[A, S] {
	sp := solvers.NewSpring[A, S]()
	return &Spring[A, S]{Animation: New[A, S](sched, sp, initial), spring: sp}
}

// Configure sets the spring's response time and damping ratio.
func (s *Spring[A, S]) Configure(response, dampingRatio float64) error {
	return s.spring.ConfigureResponse(response, dampingRatio)
}

func (s *Spring[A, S]) ConfigureStiffness(stiffness, damping float64) error {
	return s.spring.ConfigureStiffness(stiffness, damping)
}

// SetClamp confines the value, and the value reported to callbacks, to
// [lower, upper].
func (s *Spring[A, S]) SetClamp(lower, upper vector.Vector[A, S]) error {
	return s.spring.SetClamp(lower, upper)
}

func (s *Spring[A, S]) ClearClamp() { s.spring.ClearClamp() }

func (s *Spring[A, S]) SetResolvesOnTarget(on bool) { s.spring.SetResolvesOnTarget(on) }

func (s *Spring[A, S]) Solver() *solvers.Spring[A, S] { return s.spring }
