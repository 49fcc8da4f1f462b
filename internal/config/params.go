package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Set applies a --set style override. "key=value" applies to the scene or
// to every animation; "name.key=value" targets one animation.
func (s *Scene) Set(expr string) error {
	lhs, value, ok := strings.Cut(expr, "=")
	if !ok || lhs == "" {
		return fmt.Errorf("%w: %q", ErrBadOverride, expr)
	}

	name, key, scoped := strings.Cut(lhs, ".")
	if !scoped {
		key = lhs
		switch key {
		case "fps":
			fps, err := cast.ToIntE(value)
			if err != nil {
				return fmt.Errorf("fps: %w", err)
			}
			s.FPS = fps
			return nil
		case "max_duration":
			d, err := cast.ToFloat64E(value)
			if err != nil {
				return fmt.Errorf("max_duration: %w", err)
			}
			s.MaxDuration = d
			return nil
		}
	}

	matched := false
	for i := range s.Animations {
		def := &s.Animations[i]
		if scoped && def.Name != name {
			continue
		}
		if def.Params == nil {
			def.Params = make(map[string]any)
		}
		def.Params[key] = value
		matched = true
	}
	if !matched {
		return fmt.Errorf("%w: no animation named %q", ErrBadOverride, name)
	}
	return nil
}

// applyParams coerces loose params onto the typed fields.
func (d *AnimationDef) applyParams() error {
	for key, raw := range d.Params {
		if err := d.applyParam(key, raw); err != nil {
			return fmt.Errorf("param %s: %w", key, err)
		}
	}
	return nil
}

func (d *AnimationDef) applyParam(key string, raw any) error {
	var err error
	switch key {
	case "response":
		d.Spring.Response, err = cast.ToFloat64E(raw)
		d.Spring.Stiffness = 0
	case "damping_ratio":
		var r float64
		r, err = cast.ToFloat64E(raw)
		d.Spring.DampingRatio = &r
	case "stiffness":
		d.Spring.Stiffness, err = cast.ToFloat64E(raw)
	case "damping":
		d.Spring.Damping, err = cast.ToFloat64E(raw)
	case "resolves_on_target":
		d.Spring.ResolvesOnTarget, err = cast.ToBoolE(raw)
	case "constant":
		d.Decay.Constant, err = cast.ToFloat64E(raw)
	case "rounding":
		d.Decay.Rounding, err = cast.ToFloat64E(raw)
	case "curve":
		d.Easing.Curve, err = cast.ToStringE(raw)
		d.Easing.ControlPoints = nil
	case "duration":
		d.Easing.Duration, err = cast.ToFloat64E(raw)
	case "from":
		d.From, err = toFloats(raw)
	case "to":
		d.To, err = toFloats(raw)
	case "velocity":
		d.Velocity, err = toFloats(raw)
	default:
		err = ErrUnknownParam
	}
	return err
}

// toFloats accepts a list or a comma separated string.
func toFloats(raw any) ([]float64, error) {
	if s, ok := raw.(string); ok {
		parts := strings.Split(s, ",")
		out := make([]float64, 0, len(parts))
		for _, p := range parts {
			x, err := cast.ToFloat64E(strings.TrimSpace(p))
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
		return out, nil
	}

	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(items))
	for _, item := range items {
		x, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}
