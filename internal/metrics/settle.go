package metrics

import "math"

// SettleTime is the time after which every lane stays within tolerance of
// the target. It is -1 while the track is outside the band.
type SettleTime struct {
	target    []float64
	tolerance float64
	settled   float64
}

func NewSettleTime(target []float64, tolerance float64) *SettleTime {
	return &SettleTime{target: target, tolerance: tolerance, settled: -1}
}

func (s *SettleTime) Name() string { return "settle_time" }

func (s *SettleTime) Observe(t float64, value, _ []float64) {
	for i, x := range value {
		if i < len(s.target) && math.Abs(x-s.target[i]) > s.tolerance {
			s.settled = -1
			return
		}
	}
	if s.settled < 0 {
		s.settled = t
	}
}

func (s *SettleTime) Value() float64 { return s.settled }

func (s *SettleTime) Reset() { s.settled = -1 }
