package config

import (
	"sort"

	"github.com/san-kum/motion/internal/solvers"
)

var SpringPresets = map[string]SpringConfig{
	"default": {Stiffness: 300, Damping: 10},
	"smooth":  {Response: 0.5, DampingRatio: ratio(1)},
	"snappy":  {Response: 0.3, DampingRatio: ratio(0.85)},
	"bouncy":  {Response: 0.5, DampingRatio: ratio(0.6)},
	"gentle":  {Response: 0.8, DampingRatio: ratio(1)},
	"stiff":   {Response: 0.2, DampingRatio: ratio(1)},
}

var DecayPresets = map[string]DecayConfig{
	"scroll": {Constant: 0.998},
	"fast":   {Constant: 0.99},
	"slow":   {Constant: 0.999},
}

const DefaultEasingDuration = solvers.DefaultDuration

func HasPreset(kind, name string) bool {
	switch kind {
	case KindSpring:
		_, ok := SpringPresets[name]
		return ok
	case KindDecay:
		_, ok := DecayPresets[name]
		return ok
	case KindEasing:
		for _, c := range solvers.CurveNames() {
			if c == name {
				return true
			}
		}
	}
	return false
}

// ListPresets returns the sorted preset names for kind.
func ListPresets(kind string) []string {
	var names []string
	switch kind {
	case KindSpring:
		for name := range SpringPresets {
			names = append(names, name)
		}
	case KindDecay:
		for name := range DecayPresets {
			names = append(names, name)
		}
	case KindEasing:
		return solvers.CurveNames()
	default:
		return nil
	}
	sort.Strings(names)
	return names
}

// applyPreset fills zero fields of d from its preset.
func (d *AnimationDef) applyPreset() {
	switch d.Kind {
	case KindSpring:
		p, ok := SpringPresets[d.Preset]
		if !ok || d.Spring.Stiffness != 0 || d.Spring.Response != 0 {
			return
		}
		resolves, r := d.Spring.ResolvesOnTarget, d.Spring.DampingRatio
		d.Spring = p
		d.Spring.ResolvesOnTarget = resolves
		if r != nil {
			d.Spring.DampingRatio = r
		}
	case KindDecay:
		if p, ok := DecayPresets[d.Preset]; ok && d.Decay.Constant == 0 {
			d.Decay.Constant = p.Constant
		}
	case KindEasing:
		if d.Easing.Curve == "" && len(d.Easing.ControlPoints) == 0 {
			d.Easing.Curve = d.Preset
		}
	}
}
