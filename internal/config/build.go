package config

import (
	"fmt"

	"github.com/san-kum/motion/internal/animation"
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/solvers"
	"github.com/san-kum/motion/internal/vector"
)

// Built is one configured animation. Every kind runs on four lanes; only
// the first Lanes of them are meaningful.
type Built struct {
	Name  string
	Kind  string
	Lanes int
	Anim  *animation.Animation[[4]float64, float64]
}

func vec4(xs []float64) vector.Vec4 {
	return vector.FromFloat64s[[4]float64, float64](xs)
}

// Build resolves presets and params and constructs every animation in the
// scene. A nil scheduler builds detached animations.
func (s *Scene) Build(sched *scheduler.Scheduler) ([]*Built, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]*Built, 0, len(s.Animations))
	for i := range s.Animations {
		def := s.Animations[i]
		b, err := def.build(sched)
		if err != nil {
			for _, done := range out {
				done.Anim.Close()
			}
			return nil, fmt.Errorf("animation %q: %w", def.Name, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (d AnimationDef) build(sched *scheduler.Scheduler) (*Built, error) {
	d.applyPreset()
	if err := d.applyParams(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := &Built{Name: d.Name, Kind: d.Kind, Lanes: d.Lanes()}
	from := vec4(d.From)

	switch d.Kind {
	case KindSpring:
		sp := animation.NewSpring(sched, from)
		if err := d.Spring.configure(sp); err != nil {
			sp.Close()
			return nil, err
		}
		if d.Clamp != nil {
			if err := sp.SetClamp(vec4(d.Clamp.Lower), vec4(d.Clamp.Upper)); err != nil {
				sp.Close()
				return nil, err
			}
		}
		sp.SetResolvesOnTarget(d.Spring.ResolvesOnTarget)
		sp.SetTarget(vec4(d.To))
		if d.To == nil {
			sp.SetTarget(from)
		}
		sp.SetVelocity(vec4(d.Velocity))
		b.Anim = sp.Animation

	case KindDecay:
		dc := animation.NewDecay(sched, from)
		if d.Decay.Constant != 0 {
			if err := dc.SetDecayConstant(d.Decay.Constant); err != nil {
				dc.Close()
				return nil, err
			}
		}
		if err := dc.SetRoundingFactor(d.Decay.Rounding); err != nil {
			dc.Close()
			return nil, err
		}
		if len(d.Velocity) == 0 && len(d.To) > 0 {
			dc.SetTarget(vec4(d.To))
		} else {
			dc.SetVelocity(vec4(d.Velocity))
		}
		b.Anim = dc.Animation

	case KindEasing:
		curve, err := d.Easing.curve()
		if err != nil {
			return nil, err
		}
		duration := d.Easing.Duration
		if duration == 0 {
			duration = DefaultEasingDuration
		}
		to := d.To
		if to == nil {
			to = d.From
		}
		basic, err := animation.NewBasic(sched, from, vec4(to), curve, duration)
		if err != nil {
			return nil, err
		}
		b.Anim = basic.Animation

	case KindClock:
		b.Anim = animation.NewClock[[4]float64, float64](sched)
	}

	return b, nil
}

func (c SpringConfig) configure(sp *animation.Spring[[4]float64, float64]) error {
	switch {
	case c.Stiffness != 0:
		return sp.ConfigureStiffness(c.Stiffness, c.Damping)
	case c.Response != 0:
		return sp.Configure(c.Response, c.Ratio())
	}
	return nil
}

func (c EasingConfig) curve() (solvers.Bezier[float64], error) {
	if len(c.ControlPoints) > 0 {
		if len(c.ControlPoints) != 4 {
			return solvers.Bezier[float64]{}, fmt.Errorf("control_points needs 4 values, got %d", len(c.ControlPoints))
		}
		p := c.ControlPoints
		b := solvers.NewBezier(p[0], p[1], p[2], p[3])
		return b, b.Validate()
	}
	name := c.Curve
	if name == "" {
		name = "ease-in-out"
	}
	return solvers.CurveByName[float64](name)
}
