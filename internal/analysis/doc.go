// Package analysis inspects baked tracks.
//
//   - [PowerSpectrum] and [DominantFrequency]: spectral content of a lane,
//     used to read off a spring's ringing frequency
//   - [NewPhasePortrait]: value against velocity for one lane
//   - [Residual]: distance from the resting value over time
//
// # Ringing
//
// An underdamped spring oscillates at its damped angular frequency. The
// dominant frequency of its residual recovers it from samples alone:
//
//	hz, ok := analysis.DominantFrequency(analysis.Residual(track, 0), track.FPS)
package analysis
