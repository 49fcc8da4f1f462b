package motion

import "math"

// DefaultRubberbandCoefficient matches the resistance of a scroll view
// dragged past its content edge.
const DefaultRubberbandCoefficient = 0.55

// Rubberband maps an unbounded offset onto a resisted offset that
// approaches dimension asymptotically.
func Rubberband(offset, coefficient, dimension float64) float64 {
	if dimension == 0 {
		return 0
	}
	sign := 1.0
	if offset < 0 {
		sign = -1
		offset = -offset
	}
	return sign * (1.0 - (1.0 / (offset*coefficient/dimension + 1.0))) * dimension
}

// RubberbandRange returns value unchanged inside [lo, hi] and rubberbands
// the overshoot past whichever bound was crossed.
func RubberbandRange(value, lo, hi, coefficient float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	dimension := math.Max(hi-lo, 1)
	switch {
	case value < lo:
		return lo + Rubberband(value-lo, coefficient, dimension)
	case value > hi:
		return hi + Rubberband(value-hi, coefficient, dimension)
	default:
		return value
	}
}
