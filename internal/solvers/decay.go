package solvers

import (
	"math"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

const (
	// DefaultDecayConstant matches the deceleration of a flicked scroll view.
	DefaultDecayConstant = 0.998

	// decayRestSpeed is the per-lane speed below which decay is at rest.
	decayRestSpeed = 0.5
)

// Decay solves exponentially decaying velocity. It has no fixed target:
// the value coasts until the velocity falls below the rest speed.
type Decay[A vector.Lanes[S], S vector.Float] struct {
	constant float64
	oneLn    float64
	rounding float64
}

func NewDecay[A vector.Lanes[S], S vector.Float]() *Decay[A, S] {
	d := &Decay[A, S]{}
	d.setConstant(DefaultDecayConstant)
	return d
}

// SetDecayConstant sets the per-millisecond velocity retention factor.
func (d *Decay[A, S]) SetDecayConstant(c float64) error {
	if err := motion.CheckUnitOpen("decay_constant", c, motion.ErrInvalidDecayConstant); err != nil {
		return err
	}
	d.setConstant(c)
	return nil
}

func (d *Decay[A, S]) setConstant(c float64) {
	d.constant = c
	d.oneLn = 1 / (1000 * math.Log(c))
}

func (d *Decay[A, S]) DecayConstant() float64 { return d.constant }

// SetRoundingFactor snaps projected rest positions to multiples of f.
// Zero disables rounding.
func (d *Decay[A, S]) SetRoundingFactor(f float64) error {
	if err := motion.CheckNonNegative("rounding", f, motion.ErrInvalidRange); err != nil {
		return err
	}
	d.rounding = f
	return nil
}

func (d *Decay[A, S]) RoundingFactor() float64 { return d.rounding }

func (d *Decay[A, S]) Advance(dt float64, st motion.State[A, S]) motion.State[A, S] {
	k := math.Pow(d.constant, 1000*dt)
	st.Value = st.Value.Combine(1, st.Velocity, S((k-1)*d.oneLn))
	st.Velocity = st.Velocity.Scale(S(k))
	st.Elapsed += dt
	return st
}

func (d *Decay[A, S]) Resolved(st motion.State[A, S], _ S) bool {
	return st.Velocity.MaxAbs() < decayRestSpeed
}

func (d *Decay[A, S]) Halt(st motion.State[A, S]) motion.State[A, S] {
	st.Velocity = vector.Vector[A, S]{}
	return st
}

func (d *Decay[A, S]) Settle(st motion.State[A, S]) (motion.State[A, S], bool) {
	return st, false
}

func (d *Decay[A, S]) Clone() motion.Solver[A, S] {
	c := *d
	return &c
}

// SolveTarget returns where value comes to rest when decaying from velocity,
// rounded to the rounding factor when one is set.
func (d *Decay[A, S]) SolveTarget(value, velocity vector.Vector[A, S]) vector.Vector[A, S] {
	target := value.Combine(1, velocity, S(-d.oneLn))
	if d.rounding > 0 {
		f := d.rounding
		target = target.Map(func(x S) S {
			return S(math.Round(float64(x)/f) * f)
		})
	}
	return target
}

// SolveVelocity returns the velocity that decays from value to rest at target.
func (d *Decay[A, S]) SolveVelocity(value, target vector.Vector[A, S]) vector.Vector[A, S] {
	return value.Sub(target).Scale(S(1 / d.oneLn))
}
