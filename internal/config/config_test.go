package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

func TestDefaultScene(t *testing.T) {
	scene := DefaultScene()

	if scene.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, scene.FPS)
	}
	if err := scene.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
	if len(scene.Animations) != 1 || scene.Animations[0].Kind != KindSpring {
		t.Errorf("expected one spring animation, got %+v", scene.Animations)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Scene)
		check error
	}{
		{"no animations", func(s *Scene) { s.Animations = nil }, ErrNoAnimations},
		{"unknown kind", func(s *Scene) { s.Animations[0].Kind = "gravity" }, ErrUnknownKind},
		{"unknown preset", func(s *Scene) { s.Animations[0].Preset = "wobbly" }, ErrUnknownPreset},
		{"too many lanes", func(s *Scene) { s.Animations[0].From = []float64{1, 2, 3, 4, 5} }, ErrLaneCount},
		{"no lanes", func(s *Scene) { s.Animations[0].From, s.Animations[0].To = nil, nil }, ErrLaneCount},
		{"duplicate name", func(s *Scene) { s.Animations = append(s.Animations, s.Animations[0]) }, ErrDuplicateName},
	}

	for _, tt := range tests {
		scene := DefaultScene()
		tt.edit(scene)
		err := scene.Validate()
		if !errors.Is(err, tt.check) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.check, err)
		}
	}

	scene := DefaultScene()
	scene.FPS = 0
	if scene.Validate() == nil {
		t.Error("expected error for zero fps")
	}
}

func TestListPresets(t *testing.T) {
	springs := ListPresets(KindSpring)
	if len(springs) != len(SpringPresets) {
		t.Errorf("expected %d spring presets, got %d", len(SpringPresets), len(springs))
	}
	if springs[0] != "bouncy" {
		t.Errorf("expected sorted names, got %v", springs)
	}
	if len(ListPresets(KindEasing)) == 0 {
		t.Error("expected easing curves")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for unknown kind")
	}
}

func TestSet(t *testing.T) {
	scene := DefaultScene()
	scene.Animations = append(scene.Animations, AnimationDef{Name: "fling", Kind: KindDecay, From: []float64{0}, Velocity: []float64{1000}})

	for _, expr := range []string{"fps=120", "max_duration=2.5", "spring.response=0.4", "rounding=1"} {
		if err := scene.Set(expr); err != nil {
			t.Fatalf("set %s: %v", expr, err)
		}
	}

	if scene.FPS != 120 || scene.MaxDuration != 2.5 {
		t.Errorf("scene overrides not applied: fps=%d max=%g", scene.FPS, scene.MaxDuration)
	}
	if scene.Animations[0].Params["response"] != "0.4" {
		t.Errorf("expected scoped param, got %v", scene.Animations[0].Params)
	}
	if _, ok := scene.Animations[1].Params["response"]; ok {
		t.Error("scoped param leaked to another animation")
	}
	if scene.Animations[1].Params["rounding"] != "1" {
		t.Error("unscoped param not applied to every animation")
	}

	for _, bad := range []string{"nonsense", "=1", "ghost.response=1", "fps=fast"} {
		if err := scene.Set(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestBuild_Spring(t *testing.T) {
	scene := DefaultScene()
	if err := scene.Set("spring.response=0.5"); err != nil {
		t.Fatal(err)
	}
	if err := scene.Set("spring.damping_ratio=0.5"); err != nil {
		t.Fatal(err)
	}

	built, err := scene.Build(nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(built) != 1 {
		t.Fatalf("expected 1 animation, got %d", len(built))
	}

	b := built[0]
	if b.Lanes != 1 {
		t.Errorf("expected 1 lane, got %d", b.Lanes)
	}
	if got := b.Anim.Target().At(0); got != 100 {
		t.Errorf("expected target 100, got %f", got)
	}

	b.Anim.Start()
	peak := 0.0
	for i := 0; i < 600 && b.Anim.Enabled(); i++ {
		b.Anim.Tick(1.0 / 60)
		peak = math.Max(peak, b.Anim.Value().At(0))
	}
	if peak <= 100 {
		t.Errorf("expected overshoot with damping ratio 0.5, peak %f", peak)
	}
}

func TestBuild_AllKinds(t *testing.T) {
	scene := &Scene{
		FPS:         60,
		MaxDuration: 5,
		Animations: []AnimationDef{
			{Name: "s", Kind: KindSpring, Preset: "snappy", From: []float64{0, 0}, To: []float64{10, 20},
				Clamp: &ClampConfig{Lower: []float64{0, 0}, Upper: []float64{10, 20}}},
			{Name: "d", Kind: KindDecay, Preset: "scroll", From: []float64{0}, Velocity: []float64{2000}, Decay: DecayConfig{Rounding: 10}},
			{Name: "e", Kind: KindEasing, Preset: "ease-out", From: []float64{0, 0, 0}, To: []float64{1, 2, 3}},
			{Name: "c", Kind: KindClock},
		},
	}

	built, err := scene.Build(nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	lanes := map[string]int{"s": 2, "d": 1, "e": 3, "c": 1}
	for _, b := range built {
		if b.Lanes != lanes[b.Name] {
			t.Errorf("%s: expected %d lanes, got %d", b.Name, lanes[b.Name], b.Lanes)
		}
	}

	if got := built[1].Anim.Target().At(0); got != 1000 {
		t.Errorf("expected rounded decay target 1000, got %f", got)
	}
	if got := built[2].Anim.Target(); got != vector.FromFloat64s[[4]float64, float64]([]float64{1, 2, 3}) {
		t.Errorf("unexpected easing target %v", got.Float64s())
	}
}

func TestBuild_ReportsSolverErrors(t *testing.T) {
	scene := DefaultScene()
	scene.Animations[0] = AnimationDef{Name: "d", Kind: KindDecay, From: []float64{0}, Decay: DecayConfig{Constant: 1.5}}

	_, err := scene.Build(nil)
	if !errors.Is(err, motion.ErrInvalidDecayConstant) {
		t.Errorf("expected decay constant error, got %v", err)
	}

	scene.Animations[0] = AnimationDef{Name: "e", Kind: KindEasing, From: []float64{0}, To: []float64{1}, Params: map[string]any{"curve": "wiggle"}}
	_, err = scene.Build(nil)
	if !errors.Is(err, motion.ErrUnknownCurve) {
		t.Errorf("expected unknown curve error, got %v", err)
	}

	scene.Animations[0] = AnimationDef{Name: "e", Kind: KindEasing, From: []float64{0}, Params: map[string]any{"bogus": 1}}
	_, err = scene.Build(nil)
	if !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected unknown param error, got %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")

	scene := DefaultScene()
	scene.Animations = append(scene.Animations, AnimationDef{
		Name: "fade", Kind: KindEasing, From: []float64{0}, To: []float64{1},
		Easing: EasingConfig{ControlPoints: []float64{0.25, 0.1, 0.25, 1}, Duration: 0.5},
	})
	if err := Save(path, scene); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Animations) != 2 {
		t.Fatalf("expected 2 animations, got %d", len(loaded.Animations))
	}
	if loaded.Animations[1].Easing.Duration != 0.5 {
		t.Errorf("expected duration 0.5, got %f", loaded.Animations[1].Easing.Duration)
	}
}

func TestLoad_YAMLParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte(`
animations:
  - name: card
    kind: spring
    from: [0, 0]
    to: [300, 120]
    params:
      response: 0.35
      damping_ratio: "0.9"
      velocity: "50, -20"
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	scene, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if scene.FPS != DefaultFPS {
		t.Errorf("expected default fps, got %d", scene.FPS)
	}

	built, err := scene.Build(nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got := built[0].Anim.Velocity().At(1); got != -20 {
		t.Errorf("expected velocity -20, got %f", got)
	}
}

func TestBuild_DampingRatio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := `fps: 60
max_duration: 10
animations:
  - name: undamped
    kind: spring
    from: [0]
    to: [100]
    spring:
      response: 0.5
      damping_ratio: 0
  - name: unset
    kind: spring
    from: [0]
    to: [100]
    spring:
      response: 0.5
  - name: override
    kind: spring
    preset: bouncy
    from: [0]
    to: [100]
    params:
      damping_ratio: 1
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	scene, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if r := scene.Animations[0].Spring.DampingRatio; r == nil || *r != 0 {
		t.Fatalf("explicit zero damping ratio lost: %v", r)
	}

	built, err := scene.Build(nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	peaks := make([]float64, len(built))
	for i, b := range built {
		b.Anim.Start()
		for n := 0; n < 600 && b.Anim.Enabled(); n++ {
			b.Anim.Tick(1.0 / 60)
			peaks[i] = math.Max(peaks[i], b.Anim.Value().At(0))
		}
	}

	if !built[0].Anim.Enabled() || peaks[0] < 190 {
		t.Errorf("undamped spring should ring forever near 2x target, enabled=%v peak=%f", built[0].Anim.Enabled(), peaks[0])
	}
	for _, i := range []int{1, 2} {
		if built[i].Anim.Enabled() {
			t.Errorf("%s: expected critically damped spring to resolve", built[i].Name)
		}
		if peaks[i] > 100+motion.DefaultResolvingEpsilon {
			t.Errorf("%s: unexpected overshoot, peak %f", built[i].Name, peaks[i])
		}
	}
}
