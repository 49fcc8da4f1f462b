package solvers

import (
	"math"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

// DefaultDuration is the length of an easing animation in seconds.
const DefaultDuration = 0.3

// Interpolate eases fraction through c and lerps the result into [from, to].
func Interpolate[A vector.Lanes[S], S vector.Float](c Bezier[S], from, to vector.Vector[A, S], fraction S) vector.Vector[A, S] {
	if fraction <= 0 {
		return from
	}
	if fraction >= 1 {
		return to
	}
	return from.Combine(1, to.Sub(from), c.Solve(fraction))
}

// Easing interpolates from the state's origin to its target over a fixed
// duration.
type Easing[A vector.Lanes[S], S vector.Float] struct {
	curve    Bezier[S]
	duration float64
}

func NewEasing[A vector.Lanes[S], S vector.Float](curve Bezier[S], duration float64) (*Easing[A, S], error) {
	e := &Easing[A, S]{}
	if err := e.SetCurve(curve); err != nil {
		return nil, err
	}
	if err := e.SetDuration(duration); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Easing[A, S]) SetCurve(c Bezier[S]) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e.curve = c
	return nil
}

func (e *Easing[A, S]) Curve() Bezier[S] { return e.curve }

func (e *Easing[A, S]) SetDuration(d float64) error {
	if err := motion.CheckPositive("duration", d, motion.ErrInvalidDuration); err != nil {
		return err
	}
	e.duration = d
	return nil
}

func (e *Easing[A, S]) Duration() float64 { return e.duration }

// Fraction is the linear progress of st through the duration.
func (e *Easing[A, S]) Fraction(st motion.State[A, S]) float64 {
	return math.Min(math.Max(st.Elapsed/e.duration, 0), 1)
}

func (e *Easing[A, S]) Advance(dt float64, st motion.State[A, S]) motion.State[A, S] {
	st.Elapsed += dt
	st.Value = Interpolate(e.curve, st.Origin, st.Target, S(e.Fraction(st)))
	return st
}

func (e *Easing[A, S]) Resolved(st motion.State[A, S], epsilon S) bool {
	return st.Value.ApproximatelyEqual(st.Target, epsilon)
}

func (e *Easing[A, S]) Halt(st motion.State[A, S]) motion.State[A, S] {
	return st
}

func (e *Easing[A, S]) Settle(st motion.State[A, S]) (motion.State[A, S], bool) {
	st.Value = st.Target
	st.Elapsed = e.duration
	return st, true
}

// Rewind recovers elapsed time from a value already partway through the
// range, or restarts from the origin when the value lies outside it.
func (e *Easing[A, S]) Rewind(st motion.State[A, S]) motion.State[A, S] {
	if st.Value.ApproxEqual(st.Origin) || !st.Value.Contains(st.Origin, st.Target) {
		st.Value = st.Origin
		st.Elapsed = 0
		return st
	}

	span := st.Target.Sub(st.Origin)
	for i := 0; i < span.Len(); i++ {
		w := span.At(i)
		if abs(w) < S(vector.DefaultEpsilon) {
			continue
		}
		progress := (st.Value.At(i) - st.Origin.At(i)) / w
		st.Elapsed = float64(e.curve.SolveInverse(progress)) * e.duration
		return st
	}

	st.Elapsed = 0
	return st
}

func (e *Easing[A, S]) Clone() motion.Solver[A, S] {
	c := *e
	return &c
}
