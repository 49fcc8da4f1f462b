package solvers

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

func presets() map[string]Bezier[float64] {
	return map[string]Bezier[float64]{
		"linear":      Linear[float64](),
		"ease-in":     EaseIn[float64](),
		"ease-out":    EaseOut[float64](),
		"ease-in-out": EaseInOut[float64](),
		"custom":      NewBezier(0.17, 0.67, 0.83, 0.67),
	}
}

func TestBezier_SolveCurveXRoundTrip(t *testing.T) {
	for name, b := range presets() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= 100; i++ {
				x := float64(i) / 100
				tt := b.SolveCurveX(x, DefaultBezierEpsilon)
				if got := b.SampleCurveX(tt); math.Abs(got-x) > DefaultBezierEpsilon {
					t.Fatalf("x=%.2f: sampleCurveX(solveCurveX) = %.6f", x, got)
				}
			}
		})
	}
}

func TestBezier_Float32RoundTrip(t *testing.T) {
	b := EaseInOut[float32]()
	for i := 0; i <= 100; i++ {
		x := float32(i) / 100
		if got := b.SampleCurveX(b.SolveCurveX(x, 1e-4)); abs(got-x) > 1e-4 {
			t.Fatalf("x=%.2f: got %.6f", x, got)
		}
	}
}

func TestBezier_Endpoints(t *testing.T) {
	for name, b := range presets() {
		if b.Solve(0) != 0 || b.Solve(1) != 1 {
			t.Errorf("%s: endpoints %f %f", name, b.Solve(0), b.Solve(1))
		}
	}

	if got := Linear[float64]().Solve(0.37); math.Abs(got-0.37) > 1e-4 {
		t.Errorf("linear solve(0.37) = %f", got)
	}
	if got := EaseIn[float64]().Solve(0.5); got >= 0.5 {
		t.Errorf("ease-in should lag at midpoint, got %f", got)
	}
	if got := EaseOut[float64]().Solve(0.5); got <= 0.5 {
		t.Errorf("ease-out should lead at midpoint, got %f", got)
	}
}

func TestBezier_SolveInverse(t *testing.T) {
	b := EaseInOut[float64]()
	for _, x := range []float64{0.1, 0.25, 0.5, 0.8} {
		y := b.Solve(x)
		if back := b.SolveInverse(y); math.Abs(back-x) > 1e-3 {
			t.Errorf("inverse(solve(%f)) = %f", x, back)
		}
	}
}

func TestBezier_Validate(t *testing.T) {
	if err := NewBezier(1.2, 0.0, 0.5, 1.0).Validate(); !errors.Is(err, motion.ErrInvalidCurve) {
		t.Errorf("expected ErrInvalidCurve, got %v", err)
	}
	if err := NewBezier(0.3, -0.5, 0.7, 1.5).Validate(); err != nil {
		t.Errorf("y overshoot is allowed, got %v", err)
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range CurveNames() {
		if _, err := CurveByName[float64](name); err != nil {
			t.Errorf("registered curve %s failed: %v", name, err)
		}
	}

	if _, err := CurveByName[float64]("bounce"); !errors.Is(err, motion.ErrUnknownCurve) {
		t.Errorf("expected ErrUnknownCurve, got %v", err)
	}
}

func TestInterpolate_Endpoints(t *testing.T) {
	from := vector.Point{X: -3, Y: 12.5}.Vector()
	to := vector.Point{X: 47.25, Y: -8}.Vector()

	for name, b := range presets() {
		if got := Interpolate(b, from, to, 0); got != from {
			t.Errorf("%s: solve(range, 0) = %v", name, got)
		}
		if got := Interpolate(b, from, to, 1); got != to {
			t.Errorf("%s: solve(range, 1) = %v", name, got)
		}
	}
}

func TestEasing_Advance(t *testing.T) {
	e, err := NewEasing[[1]float64, float64](EaseInOut[float64](), 0.3)
	if err != nil {
		t.Fatal(err)
	}

	st := scalarState{Origin: vector.Scalar(0), Target: vector.Scalar(100)}
	prev := 0.0
	for i := 0; i < 18; i++ {
		st = e.Advance(1.0/60, st)
		v := vector.ScalarOf(st.Value)
		if v < prev {
			t.Fatalf("tick %d went backwards: %f -> %f", i, prev, v)
		}
		prev = v
	}

	if !e.Resolved(st, motion.DefaultResolvingEpsilon) {
		t.Errorf("expected resolution after full duration, value %f", vector.ScalarOf(st.Value))
	}

	if _, err := NewEasing[[1]float64, float64](Linear[float64](), 0); !errors.Is(err, motion.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestEasing_Rewind(t *testing.T) {
	e, err := NewEasing[[1]float64, float64](EaseOut[float64](), 2)
	if err != nil {
		t.Fatal(err)
	}

	st := scalarState{Origin: vector.Scalar(10), Target: vector.Scalar(20)}
	for i := 0; i < 30; i++ {
		st = e.Advance(1.0/60, st)
	}
	want := st.Elapsed

	st.Elapsed = 0
	st = e.Rewind(st)
	if math.Abs(st.Elapsed-want) > 0.01 {
		t.Errorf("recovered elapsed %.4f, want %.4f", st.Elapsed, want)
	}

	outside := e.Rewind(scalarState{Value: vector.Scalar(50), Origin: vector.Scalar(10), Target: vector.Scalar(20), Elapsed: 1})
	if outside.Elapsed != 0 || vector.ScalarOf(outside.Value) != 10 {
		t.Errorf("value outside range should restart, got %+v", outside)
	}
}

func TestPassthrough(t *testing.T) {
	clock := NewClock[[1]float64, float64]()
	deltas := NewDeltas[[1]float64, float64]()

	var a, b scalarState
	for i := 0; i < 3; i++ {
		a = clock.Advance(0.25, a)
		b = deltas.Advance(0.25, b)
	}

	if vector.ScalarOf(a.Value) != 0.75 {
		t.Errorf("clock value = %f, want 0.75", vector.ScalarOf(a.Value))
	}
	if vector.ScalarOf(b.Value) != 0.25 {
		t.Errorf("delta value = %f, want 0.25", vector.ScalarOf(b.Value))
	}
	if clock.Resolved(a, 1) {
		t.Error("passthrough must never resolve")
	}
}
