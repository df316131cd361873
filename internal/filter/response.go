package filter

import (
	"math"
)

const (
	defaultResponsePoints = 512

	// Magnitude floor and scale for dB conversion
	minMagnitude = 1e-10
	dbMultiplier = 20.0
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which the response was evaluated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse evaluates the DTFT of an FIR filter at numPoints
// evenly spaced frequencies from DC up to (but excluding) Nyquist.
// A non-positive numPoints selects 512 points.
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	for k := range numPoints {
		freq := float64(k) / (nyquistDivisor * float64(numPoints))
		response.Frequencies[k] = freq
		response.Magnitude[k], response.Phase[k] = evaluate(coeffs, freq)
	}

	return response
}

// MagnitudeAt returns the linear magnitude response of coeffs at freqHz for
// a filter running at sampleRate.
func MagnitudeAt(coeffs []float64, freqHz, sampleRate float64) float64 {
	magnitude, _ := evaluate(coeffs, freqHz/sampleRate)
	return magnitude
}

// evaluate computes H(e^jω) = Σ h[n]·e^(-jωn) at a normalized frequency.
func evaluate(coeffs []float64, freq float64) (magnitude, phase float64) {
	var realPart, imagPart float64
	omega := 2 * math.Pi * freq

	for n, h := range coeffs {
		angle := omega * float64(n)
		realPart += h * math.Cos(angle)
		imagPart -= h * math.Sin(angle)
	}

	return math.Hypot(realPart, imagPart), math.Atan2(imagPart, realPart)
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
