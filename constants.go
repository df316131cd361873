package downsampler

import "math"

// Common sample rates.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000

	// RateSpeech is the common speech analysis sample rate (half of CD).
	RateSpeech = 22050

	// RateVoIP is the VoIP wideband and speech recognition sample rate.
	RateVoIP = 16000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000
)

// Info constants
const (
	algorithmName   = "windowed-sinc FIR + decimation"
	bytesPerFloat64 = 8
)

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Parallel processing constants
const (
	minParallelJobs = 2 // Below this, ProcessAll runs sequentially
)
