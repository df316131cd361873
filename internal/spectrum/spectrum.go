// Package spectrum provides windowed magnitude spectra for checking the
// frequency content of downsampled audio.
package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/go-audio-downsampler/internal/filter"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	nyquistDivisor = 2.0
	minSamples     = 2
)

// Spectrum is the one-sided magnitude spectrum of a real signal.
// Bin k covers frequency k*BinWidth Hz, for k in [0, N/2].
type Spectrum struct {
	SampleRate float64
	BinWidth   float64
	Magnitudes []float64
}

// Analyze computes the Hamming-windowed magnitude spectrum of samples.
// Magnitudes are normalized by the window sum, so a sine of amplitude A
// centered in a bin reads about A/2.
// Fewer than two samples yield an empty spectrum.
func Analyze(samples []float64, sampleRate float64) Spectrum {
	n := len(samples)
	if n < minSamples {
		return Spectrum{SampleRate: sampleRate}
	}

	window := filter.HammingWindow(n)
	var windowSum float64
	windowed := make([]float64, n)
	for i, s := range samples {
		windowed[i] = s * window[i]
		windowSum += window[i]
	}

	coeffs := fourier.NewFFT(n).Coefficients(nil, windowed)

	mags := make([]float64, len(coeffs))
	for k, c := range coeffs {
		mags[k] = cmplx.Abs(c) / windowSum
	}

	return Spectrum{
		SampleRate: sampleRate,
		BinWidth:   sampleRate / float64(n),
		Magnitudes: mags,
	}
}

// Nyquist returns half the analyzed sample rate.
func (s Spectrum) Nyquist() float64 {
	return s.SampleRate / nyquistDivisor
}

// DominantFrequency returns the center frequency of the strongest non-DC bin.
// Returns 0 for an empty spectrum.
func (s Spectrum) DominantFrequency() float64 {
	best := -1
	for k := 1; k < len(s.Magnitudes); k++ {
		if best < 0 || s.Magnitudes[k] > s.Magnitudes[best] {
			best = k
		}
	}
	if best < 0 {
		return 0
	}
	return float64(best) * s.BinWidth
}

// PeakDB returns the level in dB of the strongest bin whose center lies in
// [lowHz, highHz]. Returns -Inf if no bin falls in the band.
func (s Spectrum) PeakDB(lowHz, highHz float64) float64 {
	peak := math.Inf(-1)
	for k, m := range s.Magnitudes {
		freq := float64(k) * s.BinWidth
		if freq < lowHz || freq > highHz {
			continue
		}
		peak = math.Max(peak, filter.MagnitudeDB(m))
	}
	return peak
}

// BandEnergy returns the sum of squared magnitudes of bins in [lowHz, highHz].
func (s Spectrum) BandEnergy(lowHz, highHz float64) float64 {
	var energy float64
	for k, m := range s.Magnitudes {
		freq := float64(k) * s.BinWidth
		if freq >= lowHz && freq <= highHz {
			energy += m * m
		}
	}
	return energy
}
