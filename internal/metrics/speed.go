package metrics

import "math"

type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(_ float64, _, velocity []float64) {
	for _, v := range velocity {
		p.peak = math.Max(p.peak, math.Abs(v))
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }

type Samples struct {
	n int
}

func NewSamples() *Samples { return &Samples{} }

func (s *Samples) Name() string { return "samples" }

func (s *Samples) Observe(float64, []float64, []float64) { s.n++ }

func (s *Samples) Value() float64 { return float64(s.n) }

func (s *Samples) Reset() { s.n = 0 }
