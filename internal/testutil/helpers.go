// Package testutil provides reusable test helper functions for downsampler tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	WindowTolerance  = 1e-12
	FFTTolerance     = 1e-9
	Float32Tolerance = 1e-4
)

// halfDivisor is used for finding center indices in symmetric arrays.
const halfDivisor = 2

// Sine generates numSamples of amplitude·sin(2π·freq·n/sampleRate).
func Sine(numSamples int, freq, sampleRate, amplitude float64) []float64 {
	s := make([]float64, numSamples)
	omega := 2 * math.Pi * freq / sampleRate
	for i := range s {
		s[i] = amplitude * math.Sin(omega*float64(i))
	}
	return s
}

// Mix returns the element-wise sum of equally long signals.
func Mix(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i, v := range s {
			out[i] += v
		}
	}
	return out
}

// Noise generates reproducible pseudo-random samples in [-1, 1) using an LCG.
func Noise(numSamples int, seed uint32) []float64 {
	const (
		lcgMultiplier = 1664525
		lcgIncrement  = 1013904223
		lcgScale      = 1.0 / (1 << 31)
	)
	s := make([]float64, numSamples)
	state := seed
	for i := range s {
		state = state*lcgMultiplier + lcgIncrement
		s[i] = float64(state)*lcgScale - 1
	}
	return s
}

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/halfDivisor; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%g != s[%d]=%g", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertCenterIsMax verifies that the center element is the maximum value.
func AssertCenterIsMax(t *testing.T, s []float64) bool {
	t.Helper()
	if len(s) == 0 {
		return assert.Fail(t, "empty slice")
	}
	centerIdx := len(s) / halfDivisor
	centerValue := s[centerIdx]
	for i, v := range s {
		if v > centerValue {
			return assert.Fail(t, "center is not max",
				"s[%d]=%g > center s[%d]=%g", i, v, centerIdx, centerValue)
		}
	}
	return true
}

// AssertSlicesInDelta verifies equal lengths and element-wise closeness.
// Only the first mismatch is reported.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "length mismatch") {
		return false
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tolerance {
			return assert.Fail(t, "slices differ",
				"index %d: expected %g, got %g (tolerance %g)", i, expected[i], actual[i], tolerance)
		}
	}
	return true
}
