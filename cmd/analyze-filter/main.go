// Command analyze-filter prints the anti-aliasing filter designed for a rate
// pair together with its frequency response.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tphakala/go-audio-downsampler/internal/engine"
	"github.com/tphakala/go-audio-downsampler/internal/filter"
)

const (
	defaultSourceRate = 44100.0
	defaultTargetRate = 22050.0

	// Response probe points as fractions of the target Nyquist frequency
	passbandProbe   = 0.5
	cutoffProbe     = 1.0
	transitionProbe = 1.25
	stopbandProbe   = 1.5

	// Taps printed either side of the center tap
	tapsToShow = 5
)

func main() {
	sourceRate := flag.Float64("source", defaultSourceRate, "Source sample rate in Hz")
	targetRate := flag.Float64("target", defaultTargetRate, "Target sample rate in Hz")
	showAll := flag.Bool("all", false, "Print every tap")
	flag.Parse()

	if *targetRate <= 0 || *sourceRate <= 0 || *targetRate > *sourceRate {
		log.Fatalf("invalid rate pair: %g Hz -> %g Hz", *sourceRate, *targetRate)
	}

	cutoff := engine.Cutoff(*targetRate)
	coeffs := filter.LowPass(cutoff, *sourceRate)
	dcGain := filter.DCGain(coeffs)

	fmt.Println("=== Anti-aliasing Filter ===")
	fmt.Printf("  Rates: %g Hz -> %g Hz (ratio %.6f)\n", *sourceRate, *targetRate, *sourceRate / *targetRate)
	fmt.Printf("  Taps: %d\n", len(coeffs))
	fmt.Printf("  Cutoff: %g Hz (normalized %.6f)\n", cutoff, cutoff/(*sourceRate/2))
	fmt.Printf("  DC gain: %.10f (%.2f dB)\n", dcGain, filter.MagnitudeDB(dcGain))
	fmt.Printf("  Group delay: %d samples\n\n", engine.GroupDelay())

	fmt.Println("Coefficients:")
	center := len(coeffs) / 2
	for i, c := range coeffs {
		if *showAll || (i >= center-tapsToShow && i <= center+tapsToShow) {
			fmt.Printf("  h[%3d] = % .10f\n", i, c)
		}
	}

	fmt.Println("\nResponse (relative to DC):")
	for _, probe := range []float64{passbandProbe, cutoffProbe, transitionProbe, stopbandProbe} {
		freq := probe * cutoff
		if freq >= *sourceRate/2 {
			continue
		}
		mag := filter.MagnitudeAt(coeffs, freq, *sourceRate)
		fmt.Printf("  %8.1f Hz: %8.2f dB\n", freq, filter.MagnitudeDB(mag/dcGain))
	}
}
