package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS         = 60
	DefaultMaxDuration = 10.0
	MaxLanes           = 4
)

const (
	KindSpring = "spring"
	KindDecay  = "decay"
	KindEasing = "easing"
	KindClock  = "clock"
)

var (
	ErrNoAnimations  = errors.New("config: scene has no animations")
	ErrUnknownKind   = errors.New("config: unknown animation kind")
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrLaneCount     = errors.New("config: animations take 1 to 4 lanes")
	ErrDuplicateName = errors.New("config: duplicate animation name")
	ErrBadOverride   = errors.New("config: override must look like [name.]key=value")
	ErrUnknownParam  = errors.New("config: unknown param")
)

// Scene is a set of animations baked or played together.
type Scene struct {
	FPS         int            `yaml:"fps"`
	MaxDuration float64        `yaml:"max_duration"`
	Animations  []AnimationDef `yaml:"animations"`
}

type AnimationDef struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Preset   string    `yaml:"preset,omitempty"`
	From     []float64 `yaml:"from"`
	To       []float64 `yaml:"to,omitempty"`
	Velocity []float64 `yaml:"velocity,omitempty"`

	Spring SpringConfig `yaml:"spring,omitempty"`
	Decay  DecayConfig  `yaml:"decay,omitempty"`
	Easing EasingConfig `yaml:"easing,omitempty"`
	Clamp  *ClampConfig `yaml:"clamp,omitempty"`

	// Params are loose overrides applied after the preset, keyed like the
	// --set flag.
	Params map[string]any `yaml:"params,omitempty"`
}

// SpringConfig takes either a response and damping ratio or a raw
// stiffness and damping. Stiffness wins when both are set. An unset damping
// ratio means critical damping; an explicit 0 is undamped.
type SpringConfig struct {
	Response         float64  `yaml:"response,omitempty"`
	DampingRatio     *float64 `yaml:"damping_ratio,omitempty"`
	Stiffness        float64  `yaml:"stiffness,omitempty"`
	Damping          float64  `yaml:"damping,omitempty"`
	ResolvesOnTarget bool     `yaml:"resolves_on_target,omitempty"`
}

// Ratio returns the damping ratio, defaulting to 1.
func (c SpringConfig) Ratio() float64 {
	if c.DampingRatio == nil {
		return 1
	}
	return *c.DampingRatio
}

func ratio(x float64) *float64 { return &x }

type DecayConfig struct {
	Constant float64 `yaml:"constant,omitempty"`
	Rounding float64 `yaml:"rounding,omitempty"`
}

type EasingConfig struct {
	Curve         string    `yaml:"curve,omitempty"`
	ControlPoints []float64 `yaml:"control_points,omitempty"`
	Duration      float64   `yaml:"duration,omitempty"`
}

type ClampConfig struct {
	Lower []float64 `yaml:"lower"`
	Upper []float64 `yaml:"upper"`
}

func DefaultScene() *Scene {
	return &Scene{
		FPS:         DefaultFPS,
		MaxDuration: DefaultMaxDuration,
		Animations: []AnimationDef{
			{Name: "spring", Kind: KindSpring, Preset: "default", From: []float64{0}, To: []float64{100}},
		},
	}
}

// QuickScene builds a one-animation scene from command line style inputs.
func QuickScene(kind, preset string, from, to, velocity []float64) *Scene {
	if len(from) == 0 {
		from = []float64{0}
	}
	return &Scene{
		FPS:         DefaultFPS,
		MaxDuration: DefaultMaxDuration,
		Animations: []AnimationDef{
			{Name: kind, Kind: kind, Preset: preset, From: from, To: to, Velocity: velocity},
		},
	}
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene := &Scene{FPS: DefaultFPS, MaxDuration: DefaultMaxDuration}
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

func Save(path string, scene *Scene) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Scene) Validate() error {
	if s.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", s.FPS)
	}
	if s.MaxDuration <= 0 {
		return fmt.Errorf("config: max_duration must be positive, got %g", s.MaxDuration)
	}
	if len(s.Animations) == 0 {
		return ErrNoAnimations
	}

	seen := make(map[string]bool, len(s.Animations))
	for i := range s.Animations {
		def := &s.Animations[i]
		if def.Name == "" {
			def.Name = fmt.Sprintf("%s_%d", def.Kind, i)
		}
		if seen[def.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
		}
		seen[def.Name] = true

		if err := def.Validate(); err != nil {
			return fmt.Errorf("animation %q: %w", def.Name, err)
		}
	}
	return nil
}

func (d *AnimationDef) Validate() error {
	switch d.Kind {
	case KindSpring, KindDecay, KindEasing, KindClock:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
	if d.Preset != "" && !HasPreset(d.Kind, d.Preset) {
		return fmt.Errorf("%w: %s/%s", ErrUnknownPreset, d.Kind, d.Preset)
	}
	if n := d.Lanes(); d.Kind != KindClock && (n < 1 || n > MaxLanes) {
		return fmt.Errorf("%w, got %d", ErrLaneCount, n)
	}
	return nil
}

// Lanes is the widest of the def's vectors.
func (d *AnimationDef) Lanes() int {
	n := len(d.From)
	for _, xs := range [][]float64{d.To, d.Velocity} {
		if len(xs) > n {
			n = len(xs)
		}
	}
	if d.Kind == KindClock && n == 0 {
		n = 1
	}
	return n
}
