package engine

import (
	"math"

	"github.com/tphakala/go-audio-downsampler/internal/filter"
	"github.com/tphakala/go-audio-downsampler/internal/simdops"
)

// DecimatedLength returns floor(n / ratio), the number of samples kept when
// decimating n samples by ratio.
func DecimatedLength(n int, ratio float64) int {
	return int(math.Floor(float64(n) / ratio))
}

// Decimate keeps sample floor(k*ratio) for every output index k in
// [0, floor(len(filtered)/ratio)). There is no interpolation: the nearest
// lower input index is selected. ratio must be >= 1.
func Decimate[F simdops.Float](filtered []F, ratio float64) []F {
	n := DecimatedLength(len(filtered), ratio)
	if n <= 0 {
		return []F{}
	}

	output := make([]F, n)
	last := len(filtered) - 1
	for k := range n {
		idx := min(int(math.Floor(float64(k)*ratio)), last)
		output[k] = filtered[idx]
	}

	return output
}

// Cutoff returns the anti-aliasing cutoff for a conversion to targetRate:
// the target Nyquist frequency.
func Cutoff(targetRate float64) float64 {
	return targetRate / nyquistDivisor
}

// GroupDelay returns the uncompensated delay of the anti-aliasing filter in
// source-rate samples.
func GroupDelay() int {
	return (filter.NumTaps - 1) / groupDelayDivisor
}

// Downsample low-pass filters input at the target Nyquist frequency and then
// decimates it from sourceRate to targetRate.
//
// Rates are assumed to be validated by the caller: both positive and finite,
// with targetRate < sourceRate. The input is never modified.
func Downsample[F simdops.Float](input []F, sourceRate, targetRate float64, method Method) []F {
	ratio := sourceRate / targetRate

	coeffs := filter.LowPassAs[F](Cutoff(targetRate), sourceRate)
	filtered := Convolve(input, coeffs, method)

	return Decimate(filtered, ratio)
}
