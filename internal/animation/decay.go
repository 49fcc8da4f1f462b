package animation

import (
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/solvers"
	"github.com/san-kum/motion/internal/vector"
)

// Decay coasts with exponentially decaying velocity. Its target is the
// projected rest position and follows the velocity.
type Decay[A vector.Lanes[S], S vector.Float] struct {
	*Animation[A, S]
	decay *solvers.Decay[A, S]
}

func NewDecay[A vector.Lanes[S], S vector.Float](sched *scheduler.Scheduler, initial vector.Vector[A, S]) *Decay[A, S] {
	d := solvers.NewDecay[A, S]()
	return &Decay[A, S]{Animation: New[A, S](sched, d, initial), decay: d}
}

// SetVelocity sets the fling velocity and re-projects the target. With a
// rounding factor the velocity is adjusted so the value comes to rest
// exactly on the rounded target.
func (d *Decay[A, S]) SetVelocity(v vector.Vector[A, S]) {
	d.state.Velocity = v
	d.state.Target = d.decay.SolveTarget(d.state.Value, v)
	if d.decay.RoundingFactor() > 0 {
		d.state.Velocity = d.decay.SolveVelocity(d.state.Value, d.state.Target)
	}
}

// SetTarget solves the velocity needed to come to rest at target.
func (d *Decay[A, S]) SetTarget(target vector.Vector[A, S]) {
	d.state.Target = target
	d.state.Velocity = d.decay.SolveVelocity(d.state.Value, target)
}

func (d *Decay[A, S]) SetDecayConstant(c float64) error {
	if err := d.decay.SetDecayConstant(c); err != nil {
		return err
	}
	d.SetVelocity(d.state.Velocity)
	return nil
}

func (d *Decay[A, S]) SetRoundingFactor(f float64) error {
	if err := d.decay.SetRoundingFactor(f); err != nil {
		return err
	}
	d.SetVelocity(d.state.Velocity)
	return nil
}

// ProjectedTarget is where the value would come to rest from its current
// state.
func (d *Decay[A, S]) ProjectedTarget() vector.Vector[A, S] {
	return d.decay.SolveTarget(d.state.Value, d.state.Velocity)
}

func (d *Decay[A, S]) Solver() *solvers.Decay[A, S] { return d.decay }
