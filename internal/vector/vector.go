package vector

import "math"

// DefaultEpsilon is the tolerance used by ApproxEqual.
const DefaultEpsilon = 0.001

type Float interface {
	~float32 | ~float64
}

// Lanes enumerates the supported lane widths.
type Lanes[S Float] interface {
	~[1]S | ~[2]S | ~[3]S | ~[4]S | ~[8]S | ~[16]S | ~[32]S | ~[64]S
}

type Vector[A Lanes[S], S Float] struct {
	lanes A
}

type (
	Vec1  = Vector[[1]float64, float64]
	Vec2  = Vector[[2]float64, float64]
	Vec3  = Vector[[3]float64, float64]
	Vec4  = Vector[[4]float64, float64]
	Vec8  = Vector[[8]float64, float64]
	Vec16 = Vector[[16]float64, float64]
	Vec32 = Vector[[32]float64, float64]
	Vec64 = Vector[[64]float64, float64]

	Vec2f32 = Vector[[2]float32, float32]
	Vec4f32 = Vector[[4]float32, float32]
)

func Of[A Lanes[S], S Float](lanes A) Vector[A, S] {
	return Vector[A, S]{lanes: lanes}
}

func Zero[A Lanes[S], S Float]() Vector[A, S] {
	return Vector[A, S]{}
}

// Splat returns a vector with every lane set to x.
func Splat[A Lanes[S], S Float](x S) Vector[A, S] {
	var v Vector[A, S]
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] = x
	}
	return v
}

// FromFloat64s fills lanes from xs. Missing lanes stay zero and extra
// values are ignored.
func FromFloat64s[A Lanes[S], S Float](xs []float64) Vector[A, S] {
	var v Vector[A, S]
	for i := 0; i < len(v.lanes) && i < len(xs); i++ {
		v.lanes[i] = S(xs[i])
	}
	return v
}

func (v Vector[A, S]) Lanes() A { return v.lanes }

func (v Vector[A, S]) Len() int { return len(v.lanes) }

func (v Vector[A, S]) At(i int) S { return v.lanes[i] }

// With returns a copy of v with lane i set to x.
func (v Vector[A, S]) With(i int, x S) Vector[A, S] {
	v.lanes[i] = x
	return v
}

func (v Vector[A, S]) Add(o Vector[A, S]) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] += o.lanes[i]
	}
	return v
}

func (v Vector[A, S]) Sub(o Vector[A, S]) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] -= o.lanes[i]
	}
	return v
}

func (v Vector[A, S]) Mul(o Vector[A, S]) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] *= o.lanes[i]
	}
	return v
}

func (v Vector[A, S]) Div(o Vector[A, S]) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] /= o.lanes[i]
	}
	return v
}

func (v Vector[A, S]) Scale(k S) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] *= k
	}
	return v
}

func (v Vector[A, S]) Neg() Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] = -v.lanes[i]
	}
	return v
}

func (v Vector[A, S]) Abs() Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		if v.lanes[i] < 0 {
			v.lanes[i] = -v.lanes[i]
		}
	}
	return v
}

// Combine returns v*a + o*b lane-wise.
func (v Vector[A, S]) Combine(a S, o Vector[A, S], b S) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] = v.lanes[i]*a + o.lanes[i]*b
	}
	return v
}

// Clamp limits each lane to [lo[i], hi[i]].
func (v Vector[A, S]) Clamp(lo, hi Vector[A, S]) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		if v.lanes[i] < lo.lanes[i] {
			v.lanes[i] = lo.lanes[i]
		} else if v.lanes[i] > hi.lanes[i] {
			v.lanes[i] = hi.lanes[i]
		}
	}
	return v
}

// Contains reports whether every lane lies within [lo[i], hi[i]], in either
// order of the bounds.
func (v Vector[A, S]) Contains(lo, hi Vector[A, S]) bool {
	for i := 0; i < len(v.lanes); i++ {
		a, b := lo.lanes[i], hi.lanes[i]
		if a > b {
			a, b = b, a
		}
		if v.lanes[i] < a || v.lanes[i] > b {
			return false
		}
	}
	return true
}

// ApproximatelyEqual reports whether every lane pair differs by less than eps.
func (v Vector[A, S]) ApproximatelyEqual(o Vector[A, S], eps S) bool {
	for i := 0; i < len(v.lanes); i++ {
		d := v.lanes[i] - o.lanes[i]
		if d < 0 {
			d = -d
		}
		if !(d < eps) {
			return false
		}
	}
	return true
}

func (v Vector[A, S]) ApproxEqual(o Vector[A, S]) bool {
	return v.ApproximatelyEqual(o, S(DefaultEpsilon))
}

// IsApproximatelyZero reports whether every lane is within eps of zero.
func (v Vector[A, S]) IsApproximatelyZero(eps S) bool {
	return v.ApproximatelyEqual(Vector[A, S]{}, eps)
}

// MaxAbs returns the largest lane magnitude.
func (v Vector[A, S]) MaxAbs() S {
	var m S
	for i := 0; i < len(v.lanes); i++ {
		x := v.lanes[i]
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	return m
}

func (v Vector[A, S]) IsFinite() bool {
	for i := 0; i < len(v.lanes); i++ {
		x := float64(v.lanes[i])
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Map applies fn to every lane.
func (v Vector[A, S]) Map(fn func(S) S) Vector[A, S] {
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] = fn(v.lanes[i])
	}
	return v
}

func (v Vector[A, S]) Float64s() []float64 {
	out := make([]float64, len(v.lanes))
	for i := range out {
		out[i] = float64(v.lanes[i])
	}
	return out
}
