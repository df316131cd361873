package engine

import (
	"fmt"
	"testing"

	"github.com/tphakala/go-audio-downsampler/internal/filter"
	"github.com/tphakala/go-audio-downsampler/internal/testutil"
)

// Sink variable to prevent DCE
var benchSink []float64

// BenchmarkConvolve compares direct SIMD and FFT convolution of the
// 101-tap anti-aliasing filter.
func BenchmarkConvolve(b *testing.B) {
	coeffs := filter.LowPass(Cutoff(testRateVoIP), testRateDAT)

	for _, n := range []int{1024, 16384, 48000} {
		input := testutil.Noise(n, testNoiseSeed)
		for _, method := range []Method{MethodDirect, MethodFFT} {
			b.Run(fmt.Sprintf("%d/%s", n, method), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					benchSink = Convolve(input, coeffs, method)
				}
			})
		}
	}
}

// BenchmarkConvolveDirect_Reference benchmarks the plain Go loop.
func BenchmarkConvolveDirect_Reference(b *testing.B) {
	coeffs := filter.LowPass(Cutoff(testRateVoIP), testRateDAT)
	input := testutil.Noise(16384, testNoiseSeed)

	b.ReportAllocs()
	for b.Loop() {
		benchSink = ConvolveDirect(input, coeffs)
	}
}

// BenchmarkDownsample benchmarks one second of 48 kHz audio to 16 kHz.
func BenchmarkDownsample(b *testing.B) {
	input := testutil.Noise(int(testRateDAT), testNoiseSeed)

	b.ReportAllocs()
	for b.Loop() {
		benchSink = Downsample(input, testRateDAT, testRateVoIP, MethodAuto)
	}
}
