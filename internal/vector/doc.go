// Package vector provides the fixed-width lane vectors every solver works on.
//
// A [Vector] is parameterized by its lane array type and scalar type, so the
// lane count is fixed at compile time:
//
//	p := vector.Vec2{}.With(0, 12).With(1, 4)
//	q := p.Scale(2).Add(vector.Splat[[2]float64, float64](1))
//
// Vectors are plain values. Every operation returns a new vector and never
// mutates its receiver.
//
// NaN and Inf lanes propagate through arithmetic per IEEE 754; callers that
// need finite values can check [Vector.IsFinite].
package vector
