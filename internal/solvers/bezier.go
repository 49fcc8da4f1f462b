package solvers

import (
	"fmt"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

const (
	// DefaultBezierEpsilon is the x tolerance used by Solve.
	DefaultBezierEpsilon = 1e-4

	newtonIterations    = 8
	newtonMinDerivative = 1e-6
	bisectionIterations = 64
)

// Bezier is a unit cubic bezier with implicit endpoints (0,0) and (1,1).
type Bezier[S vector.Float] struct {
	x1, y1, x2, y2 S
	ax, bx, cx     S
	ay, by, cy     S
}

func NewBezier[S vector.Float](x1, y1, x2, y2 S) Bezier[S] {
	b := Bezier[S]{x1: x1, y1: y1, x2: x2, y2: y2}
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

func (b Bezier[S]) ControlPoints() (x1, y1, x2, y2 S) {
	return b.x1, b.y1, b.x2, b.y2
}

// Validate rejects curves that are not a function of x.
func (b Bezier[S]) Validate() error {
	for _, x := range []S{b.x1, b.x2} {
		if x < 0 || x > 1 {
			return &motion.ConfigError{Field: "control_points", Value: float64(x), Wrapped: motion.ErrInvalidCurve}
		}
	}
	return nil
}

func (b Bezier[S]) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", float64(b.x1), float64(b.y1), float64(b.x2), float64(b.y2))
}

func (b Bezier[S]) SampleCurveX(t S) S {
	return ((b.ax*t+b.bx)*t + b.cx) * t
}

func (b Bezier[S]) SampleCurveY(t S) S {
	return ((b.ay*t+b.by)*t + b.cy) * t
}

func (b Bezier[S]) SampleCurveDerivativeX(t S) S {
	return (3*b.ax*t+2*b.bx)*t + b.cx
}

func (b Bezier[S]) SampleCurveDerivativeY(t S) S {
	return (3*b.ay*t+2*b.by)*t + b.cy
}

// SolveCurveX finds the curve parameter whose x is within epsilon of x.
func (b Bezier[S]) SolveCurveX(x, epsilon S) S {
	return solveCurve(x, epsilon, b.SampleCurveX, b.SampleCurveDerivativeX)
}

// SolveCurveY finds the curve parameter whose y is within epsilon of y.
// It assumes y is monotonic in t.
func (b Bezier[S]) SolveCurveY(y, epsilon S) S {
	return solveCurve(y, epsilon, b.SampleCurveY, b.SampleCurveDerivativeY)
}

// Solve maps a time fraction onto its eased progress.
func (b Bezier[S]) Solve(x S) S {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.SampleCurveY(b.SolveCurveX(x, DefaultBezierEpsilon))
}

// SolveInverse maps eased progress back onto its time fraction.
func (b Bezier[S]) SolveInverse(y S) S {
	if y <= 0 {
		return 0
	}
	if y >= 1 {
		return 1
	}
	return b.SampleCurveX(b.SolveCurveY(y, DefaultBezierEpsilon))
}

func solveCurve[S vector.Float](target, epsilon S, sample, derivative func(S) S) S {
	t := target
	for i := 0; i < newtonIterations; i++ {
		v := sample(t) - target
		if abs(v) < epsilon {
			return t
		}
		d := derivative(t)
		if abs(d) < newtonMinDerivative {
			break
		}
		t -= v / d
	}

	var lo, hi S = 0, 1
	t = target
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}

	for i := 0; i < bisectionIterations && lo < hi; i++ {
		v := sample(t)
		if abs(v-target) < epsilon {
			return t
		}
		if target > v {
			lo = t
		} else {
			hi = t
		}
		t = (hi-lo)/2 + lo
	}
	return t
}

func abs[S vector.Float](x S) S {
	if x < 0 {
		return -x
	}
	return x
}
