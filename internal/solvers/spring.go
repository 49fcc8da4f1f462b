package solvers

import (
	"math"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

const (
	DefaultStiffness = 300.0
	DefaultDamping   = 10.0

	minResponse       = 1e-4
	criticalTolerance = 1e-3
)

type regime int

const (
	underdamped regime = iota
	critical
	overdamped
)

func (r regime) String() string {
	switch r {
	case underdamped:
		return "underdamped"
	case critical:
		return "critical"
	default:
		return "overdamped"
	}
}

// Spring solves a unit-mass damped harmonic oscillator pulling the value
// toward its target. An undamped spring (damping ratio 0) never resolves and
// keeps ticking until stopped.
type Spring[A vector.Lanes[S], S vector.Float] struct {
	stiffness float64
	damping   float64

	w0     float64
	zeta   float64
	wD     float64
	r0, r1 float64
	regime regime

	clamped      bool
	lower, upper vector.Vector[A, S]

	resolvesOnTarget bool
}

func NewSpring[A vector.Lanes[S], S vector.Float]() *Spring[A, S] {
	s := &Spring[A, S]{stiffness: DefaultStiffness, damping: DefaultDamping}
	s.update()
	return s
}

// NewSpringResponse returns a spring configured from a response time and
// damping ratio.
func NewSpringResponse[A vector.Lanes[S], S vector.Float](response, dampingRatio float64) (*Spring[A, S], error) {
	s := NewSpring[A, S]()
	if err := s.ConfigureResponse(response, dampingRatio); err != nil {
		return nil, err
	}
	return s, nil
}

// ConfigureResponse derives stiffness and damping from the approximate time
// the spring takes to settle and its damping ratio. A response of zero is
// treated as the smallest supported response.
func (s *Spring[A, S]) ConfigureResponse(response, dampingRatio float64) error {
	if err := motion.CheckNonNegative("response", response, motion.ErrInvalidResponse); err != nil {
		return err
	}
	if err := motion.CheckNonNegative("damping_ratio", dampingRatio, motion.ErrInvalidDampingRatio); err != nil {
		return err
	}
	if response < minResponse {
		response = minResponse
	}

	s.stiffness = math.Pow(2*math.Pi/response, 2)
	s.damping = 4 * math.Pi * dampingRatio / response
	s.update()
	return nil
}

func (s *Spring[A, S]) ConfigureStiffness(stiffness, damping float64) error {
	if err := motion.CheckPositive("stiffness", stiffness, motion.ErrInvalidStiffness); err != nil {
		return err
	}
	if err := motion.CheckNonNegative("damping", damping, motion.ErrInvalidStiffness); err != nil {
		return err
	}
	s.stiffness = stiffness
	s.damping = damping
	s.update()
	return nil
}

func (s *Spring[A, S]) update() {
	s.w0 = math.Sqrt(s.stiffness)
	s.zeta = s.damping / (2 * s.w0)

	switch {
	case math.Abs(s.zeta-1) < criticalTolerance:
		s.regime = critical
		s.wD = 0
	case s.zeta < 1:
		s.regime = underdamped
		s.wD = s.w0 * math.Sqrt(1-s.zeta*s.zeta)
	default:
		s.regime = overdamped
		s.wD = 0
		disc := math.Sqrt(s.damping*s.damping - 4*s.stiffness)
		s.r0 = (-s.damping + disc) / 2
		s.r1 = (-s.damping - disc) / 2
	}
}

func (s *Spring[A, S]) Stiffness() float64 { return s.stiffness }

func (s *Spring[A, S]) Damping() float64 { return s.damping }

func (s *Spring[A, S]) DampingRatio() float64 { return s.zeta }

// Response is the settling time implied by the current stiffness.
func (s *Spring[A, S]) Response() float64 { return 2 * math.Pi / s.w0 }

// AngularFrequency returns the undamped and damped angular frequencies.
func (s *Spring[A, S]) AngularFrequency() (w0, wD float64) { return s.w0, s.wD }

// Regime names the damping regime the solver is using.
func (s *Spring[A, S]) Regime() string { return s.regime.String() }

// SetClamp limits every advanced value to [lower, upper].
func (s *Spring[A, S]) SetClamp(lower, upper vector.Vector[A, S]) error {
	for i := 0; i < lower.Len(); i++ {
		if lower.At(i) > upper.At(i) {
			return &motion.ConfigError{Field: "clamp", Value: float64(lower.At(i)), Wrapped: motion.ErrInvalidRange}
		}
	}
	s.clamped = true
	s.lower, s.upper = lower, upper
	return nil
}

func (s *Spring[A, S]) ClearClamp() {
	s.clamped = false
}

// SetResolvesOnTarget makes the spring resolve as soon as the value reaches
// the target, regardless of remaining velocity.
func (s *Spring[A, S]) SetResolvesOnTarget(on bool) {
	s.resolvesOnTarget = on
}

// propagator returns the coefficients mapping displacement x0 and its rate
// v0 onto their values dt later: x = a*x0 + b*v0, v = c*x0 + d*v0.
func (s *Spring[A, S]) propagator(dt float64) (a, b, c, d float64) {
	switch s.regime {
	case underdamped:
		env := math.Exp(-s.zeta * s.w0 * dt)
		sin, cos := math.Sincos(s.wD * dt)
		k := s.zeta * s.w0 / s.wD
		a = env * (cos + k*sin)
		b = env * sin / s.wD
		c = -env * s.w0 * s.w0 * sin / s.wD
		d = env * (cos - k*sin)
	case critical:
		env := math.Exp(-s.w0 * dt)
		a = env * (1 + s.w0*dt)
		b = env * dt
		c = -env * s.w0 * s.w0 * dt
		d = env * (1 - s.w0*dt)
	default:
		e0 := math.Exp(s.r0 * dt)
		e1 := math.Exp(s.r1 * dt)
		delta := s.r1 - s.r0
		a = e0 - s.r0*(e1-e0)/delta
		b = (e1 - e0) / delta
		c = s.r0*e0 - s.r0*(s.r1*e1-s.r0*e0)/delta
		d = (s.r1*e1 - s.r0*e0) / delta
	}
	return a, b, c, d
}

func (s *Spring[A, S]) target(st motion.State[A, S]) vector.Vector[A, S] {
	if s.clamped {
		return st.Target.Clamp(s.lower, s.upper)
	}
	return st.Target
}

// Advance works on the displacement from target, so retargeting mid-flight
// only re-biases the next step.
func (s *Spring[A, S]) Advance(dt float64, st motion.State[A, S]) motion.State[A, S] {
	a, b, c, d := s.propagator(dt)

	x0 := st.Target.Sub(st.Value)
	v0 := st.Velocity.Neg()

	x := x0.Combine(S(a), v0, S(b))
	v := x0.Combine(S(c), v0, S(d))

	st.Value = st.Target.Sub(x)
	st.Velocity = v.Neg()
	if s.clamped {
		st = s.pin(st)
	}
	st.Elapsed += dt
	return st
}

// pin clamps the value and stops every lane that hit a bound.
func (s *Spring[A, S]) pin(st motion.State[A, S]) motion.State[A, S] {
	clamped := st.Value.Clamp(s.lower, s.upper)
	for i := 0; i < clamped.Len(); i++ {
		if clamped.At(i) != st.Value.At(i) {
			st.Velocity = st.Velocity.With(i, 0)
		}
	}
	st.Value = clamped
	return st
}

func (s *Spring[A, S]) Resolved(st motion.State[A, S], epsilon S) bool {
	if !st.Value.ApproximatelyEqual(s.target(st), epsilon) {
		return false
	}
	return s.resolvesOnTarget || st.Velocity.IsApproximatelyZero(epsilon)
}

func (s *Spring[A, S]) Halt(st motion.State[A, S]) motion.State[A, S] {
	st.Velocity = vector.Vector[A, S]{}
	return st
}

func (s *Spring[A, S]) Settle(st motion.State[A, S]) (motion.State[A, S], bool) {
	st.Value = s.target(st)
	st.Velocity = vector.Vector[A, S]{}
	return st, true
}

func (s *Spring[A, S]) Clone() motion.Solver[A, S] {
	c := *s
	return &c
}
