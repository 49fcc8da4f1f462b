package solvers

import (
	"fmt"
	"sort"

	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

var namedCurves = map[string][4]float64{
	"linear":      {0, 0, 1, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

func Linear[S vector.Float]() Bezier[S]    { return NewBezier[S](0, 0, 1, 1) }
func EaseIn[S vector.Float]() Bezier[S]    { return NewBezier[S](0.42, 0, 1, 1) }
func EaseOut[S vector.Float]() Bezier[S]   { return NewBezier[S](0, 0, 0.58, 1) }
func EaseInOut[S vector.Float]() Bezier[S] { return NewBezier[S](0.42, 0, 0.58, 1) }

// CurveByName returns a registered curve.
func CurveByName[S vector.Float](name string) (Bezier[S], error) {
	p, ok := namedCurves[name]
	if !ok {
		return Bezier[S]{}, fmt.Errorf("%w: %s", motion.ErrUnknownCurve, name)
	}
	return NewBezier(S(p[0]), S(p[1]), S(p[2]), S(p[3])), nil
}

func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
