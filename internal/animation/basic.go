package animation

import (
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/solvers"
	"github.com/san-kum/motion/internal/vector"
)

// Basic eases from one value to another over a fixed duration.
type Basic[A vector.Lanes[S], S vector.Float] struct {
	*Animation[A, S]
	easing *solvers.Easing[A, S]
}

func NewBasic[A vector.Lanes[S], S vector.Float](sched *scheduler.Scheduler, from, to vector.Vector[A, S], curve solvers.Bezier[S], duration float64) (*Basic[A, S], error) {
	e, err := solvers.NewEasing[A, S](curve, duration)
	if err != nil {
		return nil, err
	}
	b := &Basic[A, S]{Animation: New[A, S](sched, e, from), easing: e}
	b.state.Target = to
	return b, nil
}

// SetRange changes the interpolated range. A running animation continues
// from its elapsed time.
func (b *Basic[A, S]) SetRange(from, to vector.Vector[A, S]) {
	b.state.Origin = from
	b.state.Target = to
}

func (b *Basic[A, S]) From() vector.Vector[A, S] { return b.state.Origin }

func (b *Basic[A, S]) SetDuration(d float64) error { return b.easing.SetDuration(d) }

func (b *Basic[A, S]) SetCurve(c solvers.Bezier[S]) error { return b.easing.SetCurve(c) }

// Fraction is the linear time progress in [0, 1].
func (b *Basic[A, S]) Fraction() float64 { return b.easing.Fraction(b.state) }

// Reset stops the animation and rewinds it to the start of its range.
func (b *Basic[A, S]) Reset(postValueChanged bool) {
	b.Stop()
	b.state.Elapsed = 0
	b.SetValue(b.state.Origin, postValueChanged)
}

func (b *Basic[A, S]) Solver() *solvers.Easing[A, S] { return b.easing }
