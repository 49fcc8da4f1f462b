package metrics

import "github.com/san-kum/motion/internal/keyframe"

// Metric summarises a track one key at a time.
type Metric interface {
	Name() string
	Observe(t float64, value, velocity []float64)
	Value() float64
	Reset()
}

// Standard returns the metrics recorded with every baked track.
func Standard(target []float64, tolerance float64) []Metric {
	return []Metric{
		NewOvershoot(target),
		NewSettleTime(target, tolerance),
		NewPeakSpeed(),
		NewSamples(),
	}
}

// Observers adapts metrics for keyframe.Options.
func Observers(ms []Metric) []keyframe.Observer {
	out := make([]keyframe.Observer, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}

func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Evaluate resets ms and replays a stored track through them.
func Evaluate(track *keyframe.Track, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for k, at := range track.KeyTimes {
		for _, m := range ms {
			m.Observe(at, track.Values[k], track.Velocities[k])
		}
	}
	return Collect(ms)
}
