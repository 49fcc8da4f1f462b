package metrics

import "math"

// Overshoot is the largest excursion past the target, as a fraction of the
// distance travelled. The first observed key is taken as the origin.
type Overshoot struct {
	target []float64
	origin []float64
	peak   float64
}

func NewOvershoot(target []float64) *Overshoot {
	return &Overshoot{target: target}
}

func (o *Overshoot) Name() string { return "overshoot" }

func (o *Overshoot) Observe(_ float64, value, _ []float64) {
	if o.origin == nil {
		o.origin = append([]float64(nil), value...)
	}
	for i, x := range value {
		if i >= len(o.target) {
			break
		}
		span := o.target[i] - o.origin[i]
		if math.Abs(span) < 1e-12 {
			continue
		}
		if excess := (x - o.target[i]) / span; excess > o.peak {
			o.peak = excess
		}
	}
}

func (o *Overshoot) Value() float64 { return o.peak }

func (o *Overshoot) Reset() {
	o.origin = nil
	o.peak = 0
}
