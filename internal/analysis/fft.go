package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// NextPow2 returns the smallest power of two not below n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerSpectrum returns the magnitude of the first half of the spectrum of
// data, zero padded to a power of two.
func PowerSpectrum(data []float64) []float64 {
	padded := make([]float64, NextPow2(len(data)))
	copy(padded, data)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency in samples taken
// at fps, in Hz. It reports false when the signal has no oscillation.
func DominantFrequency(samples []float64, fps int) (float64, bool) {
	if len(samples) < 4 || fps <= 0 {
		return 0, false
	}

	mean := 0.0
	for _, x := range samples {
		mean += x
	}
	mean /= float64(len(samples))

	centred := make([]float64, len(samples))
	for i, x := range samples {
		centred[i] = x - mean
	}

	ps := PowerSpectrum(centred)
	best, peak := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > peak {
			best, peak = k, ps[k]
		}
	}
	if best == 0 || peak < 1e-9 {
		return 0, false
	}
	return float64(best) * float64(fps) / float64(2*len(ps)), true
}
