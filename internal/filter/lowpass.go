// Package filter provides the anti-aliasing filter design used for downsampling.
package filter

import (
	"math"

	"github.com/tphakala/go-audio-downsampler/internal/simdops"
	"github.com/tphakala/simd/f64"
)

// NumTaps is the fixed length of every designed low-pass filter.
const NumTaps = 101

const (
	// Hamming window coefficients
	hammingAlpha = 0.54
	hammingBeta  = 0.46

	// Window and sinc constants
	nyquistDivisor = 2.0
	sincCenterTap  = 1.0
)

// Sinc returns the normalized sinc function sin(πx)/(πx), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return sincCenterTap
	}
	arg := math.Pi * x
	return math.Sin(arg) / arg
}

// HammingWindow generates a symmetric Hamming window of the specified length:
//
//	w[i] = 0.54 - 0.46·cos(2πi / (length-1))
//
// A length of one yields [1]. Non-positive lengths yield an empty window.
func HammingWindow(length int) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = sincCenterTap
		return window
	}

	span := float64(length - 1)
	for i := range length {
		window[i] = hammingAlpha - hammingBeta*math.Cos(2*math.Pi*float64(i)/span)
	}

	return window
}

// LowPass designs a NumTaps-long Hamming-windowed sinc low-pass filter.
//
// The cutoff is expressed in Hz and normalized against the Nyquist frequency
// of sampleRate. Tap i is centered at time offset i-(NumTaps-1)/2:
//
//	h[i] = Sinc((i - 50) · cutoff/(sampleRate/2)) · w[i]
//
// The coefficients are not normalized for unity DC gain; the passband gain is
// roughly 1/normalizedCutoff. A cutoff at or above Nyquist is accepted and
// yields a near-allpass filter.
func LowPass(cutoff, sampleRate float64) []float64 {
	normalizedCutoff := cutoff / (sampleRate / nyquistDivisor)
	window := HammingWindow(NumTaps)
	center := float64(NumTaps-1) / nyquistDivisor

	coeffs := make([]float64, NumTaps)
	for i := range NumTaps {
		x := float64(i) - center
		coeffs[i] = Sinc(x*normalizedCutoff) * window[i]
	}

	return coeffs
}

// LowPassAs is like LowPass but returns the coefficients in precision F.
func LowPassAs[F simdops.Float](cutoff, sampleRate float64) []F {
	coeffs := LowPass(cutoff, sampleRate)

	if out, ok := any(coeffs).([]F); ok {
		return out
	}

	out := make([]F, len(coeffs))
	for i, c := range coeffs {
		out[i] = F(c)
	}
	return out
}

// DCGain returns the sum of the coefficients, i.e. the filter's gain at 0 Hz.
func DCGain(coeffs []float64) float64 {
	return f64.Sum(coeffs)
}
