package solvers

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

type scalarState = motion.State[[1]float64, float64]

func newScalarSpring(t *testing.T, response, ratio float64) *Spring[[1]float64, float64] {
	t.Helper()
	s, err := NewSpringResponse[[1]float64, float64](response, ratio)
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	return s
}

func TestSpring_CriticallyDampedStep(t *testing.T) {
	s := newScalarSpring(t, 1.0, 1.0)
	if s.Regime() != "critical" {
		t.Fatalf("expected critical regime, got %s", s.Regime())
	}

	st := s.Advance(0.5, scalarState{Target: vector.Scalar(10)})
	if got := vector.ScalarOf(st.Value); math.Abs(got-8.210) > 1e-3 {
		t.Errorf("expected value 8.210, got %.4f", got)
	}
}

func TestSpring_UnderdampedStep(t *testing.T) {
	s := newScalarSpring(t, 1.0, 0.8)
	if s.Regime() != "underdamped" {
		t.Fatalf("expected underdamped regime, got %s", s.Regime())
	}

	st := s.Advance(0.5, scalarState{Target: vector.Scalar(10)})
	if got := vector.ScalarOf(st.Value); math.Abs(got-9.223) > 1e-3 {
		t.Errorf("expected value 9.223, got %.4f", got)
	}
}

func TestSpring_DerivedConstants(t *testing.T) {
	s := NewSpring[[1]float64, float64]()
	if s.Stiffness() != DefaultStiffness || s.Damping() != DefaultDamping {
		t.Fatalf("unexpected defaults: k=%f c=%f", s.Stiffness(), s.Damping())
	}

	w0, wD := s.AngularFrequency()
	if math.Abs(w0-math.Sqrt(300)) > 1e-12 {
		t.Errorf("w0 = %f", w0)
	}
	zeta := 10 / (2 * math.Sqrt(300))
	if math.Abs(s.DampingRatio()-zeta) > 1e-12 {
		t.Errorf("damping ratio = %f, want %f", s.DampingRatio(), zeta)
	}
	if math.Abs(wD-w0*math.Sqrt(1-zeta*zeta)) > 1e-12 {
		t.Errorf("wD = %f", wD)
	}

	if err := s.ConfigureResponse(0.5, 0.7); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Response()-0.5) > 1e-9 || math.Abs(s.DampingRatio()-0.7) > 1e-9 {
		t.Errorf("round trip response=%f ratio=%f", s.Response(), s.DampingRatio())
	}
}

func TestSpring_Configuration(t *testing.T) {
	s := NewSpring[[1]float64, float64]()

	err := s.ConfigureResponse(-1, 1)
	if !errors.Is(err, motion.ErrInvalidResponse) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	} else if !strings.Contains(err.Error(), "must not be negative") {
		t.Errorf("response error should reject only negatives, got %q", err)
	}
	if err := s.ConfigureResponse(1, -0.5); !errors.Is(err, motion.ErrInvalidDampingRatio) {
		t.Errorf("expected ErrInvalidDampingRatio, got %v", err)
	}
	if err := s.ConfigureStiffness(0, 1); !errors.Is(err, motion.ErrInvalidStiffness) {
		t.Errorf("expected ErrInvalidStiffness, got %v", err)
	}

	if err := s.ConfigureResponse(0, 1); err != nil {
		t.Fatalf("zero response should clamp, got %v", err)
	}
	if math.IsInf(s.Stiffness(), 0) || math.IsNaN(s.Stiffness()) {
		t.Errorf("expected finite stiffness, got %f", s.Stiffness())
	}
}

// velocity must be the analytic derivative of position in every regime.
func TestSpring_VelocityIsDerivative(t *testing.T) {
	ratios := []float64{0.3, 1.0, 2.5}
	const h = 1e-6

	for _, ratio := range ratios {
		s := newScalarSpring(t, 0.6, ratio)
		st := scalarState{Value: vector.Scalar(2), Target: vector.Scalar(10), Velocity: vector.Scalar(-15)}

		for _, dt := range []float64{0.01, 0.1, 0.4} {
			mid := s.Advance(dt, st)
			before := s.Advance(dt-h, st)
			after := s.Advance(dt+h, st)

			fd := (vector.ScalarOf(after.Value) - vector.ScalarOf(before.Value)) / (2 * h)
			if got := vector.ScalarOf(mid.Velocity); math.Abs(got-fd) > 1e-3*math.Max(1, math.Abs(fd)) {
				t.Errorf("%s dt=%.2f: velocity %.6f, finite difference %.6f", s.Regime(), dt, got, fd)
			}
		}
	}
}

func TestSpring_UnderdampedResolves(t *testing.T) {
	s := NewSpring[[1]float64, float64]()
	st := scalarState{Target: vector.Scalar(100)}

	ticks := 0
	for !s.Resolved(st, motion.DefaultResolvingEpsilon) {
		st = s.Advance(1.0/60, st)
		ticks++
		if ticks > 600 {
			t.Fatalf("did not resolve within 600 ticks, value %.4f", vector.ScalarOf(st.Value))
		}
	}
}

func TestSpring_CriticalNoOvershoot(t *testing.T) {
	s := newScalarSpring(t, 0.5, 1.0)
	st := scalarState{Target: vector.Scalar(320)}

	for i := 0; i < 600 && !s.Resolved(st, motion.DefaultResolvingEpsilon); i++ {
		prev := vector.ScalarOf(st.Value)
		st = s.Advance(1.0/60, st)
		v := vector.ScalarOf(st.Value)
		if v > 320+motion.DefaultResolvingEpsilon {
			t.Fatalf("tick %d overshot: %.6f", i, v)
		}
		if v < prev {
			t.Fatalf("tick %d moved away from target: %.6f -> %.6f", i, prev, v)
		}
	}
}

func TestSpring_OverdampedNoOscillation(t *testing.T) {
	s := newScalarSpring(t, 0.5, 2.0)
	if s.Regime() != "overdamped" {
		t.Fatalf("expected overdamped regime, got %s", s.Regime())
	}

	st := scalarState{Value: vector.Scalar(-50), Target: vector.Scalar(50)}
	resolved := false
	for i := 0; i < 2000; i++ {
		st = s.Advance(1.0/60, st)
		if s.Resolved(st, motion.DefaultResolvingEpsilon) {
			resolved = true
			break
		}
		if diff := 50 - vector.ScalarOf(st.Value); diff < 0 {
			t.Fatalf("tick %d crossed target: diff %.6f", i, diff)
		}
	}
	if !resolved {
		t.Error("overdamped spring did not resolve")
	}
}

func TestSpring_Undamped(t *testing.T) {
	s := NewSpring[[1]float64, float64]()
	if err := s.ConfigureStiffness(100, 0); err != nil {
		t.Fatal(err)
	}

	st := scalarState{Target: vector.Scalar(1)}
	for i := 0; i < 1000; i++ {
		st = s.Advance(1.0/60, st)
		if s.Resolved(st, motion.DefaultResolvingEpsilon) {
			t.Fatalf("undamped spring resolved at tick %d", i)
		}
	}
	if v := vector.ScalarOf(st.Value); v < -0.01 || v > 2.01 {
		t.Errorf("undamped amplitude drifted: %f", v)
	}
}

func TestSpring_Clamp(t *testing.T) {
	s := newScalarSpring(t, 0.4, 0.3)
	if err := s.SetClamp(vector.Scalar(0), vector.Scalar(5)); err != nil {
		t.Fatal(err)
	}
	if err := s.SetClamp(vector.Scalar(5), vector.Scalar(0)); !errors.Is(err, motion.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}

	st := scalarState{Target: vector.Scalar(10)}
	for i := 0; i < 300; i++ {
		st = s.Advance(1.0/60, st)
		if v := vector.ScalarOf(st.Value); v < 0 || v > 5 {
			t.Fatalf("value escaped clamp: %f", v)
		}
	}

	if v := vector.ScalarOf(st.Velocity); v != 0 {
		t.Errorf("expected velocity pinned to 0 at the bound, got %f", v)
	}
	if !s.Resolved(st, motion.DefaultResolvingEpsilon) {
		t.Error("expected spring pinned at the bound to resolve")
	}

	settled, posted := s.Settle(st)
	if !posted || vector.ScalarOf(settled.Value) != 5 {
		t.Errorf("expected settle to clamped target 5, got %f", vector.ScalarOf(settled.Value))
	}
}

func TestSpring_ResolvesOnTarget(t *testing.T) {
	s := NewSpring[[1]float64, float64]()
	st := scalarState{Value: vector.Scalar(10), Target: vector.Scalar(10), Velocity: vector.Scalar(50)}

	if s.Resolved(st, motion.DefaultResolvingEpsilon) {
		t.Error("moving spring at target should not resolve by default")
	}
	s.SetResolvesOnTarget(true)
	if !s.Resolved(st, motion.DefaultResolvingEpsilon) {
		t.Error("expected resolution on reaching target")
	}
}

func TestSpring_MultiLane(t *testing.T) {
	s, err := NewSpringResponse[[4]float32, float32](1.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	st := motion.State[[4]float32, float32]{
		Target: vector.Of[[4]float32, float32]([4]float32{10, 20, 0, -10}),
	}
	st = s.Advance(0.5, st)

	want := [4]float64{8.2103, 16.4205, 0, -8.2103}
	for i, w := range want {
		if got := float64(st.Value.At(i)); math.Abs(got-w) > 1e-3 {
			t.Errorf("lane %d = %f, want %f", i, got, w)
		}
	}
}
