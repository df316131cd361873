// Package downsampler provides anti-aliased audio sample-rate reduction in pure Go.
//
// A complete, already-captured mono buffer is low-pass filtered at the target
// Nyquist frequency and then decimated to the target rate.
//
// # Features
//
//   - Fixed 101-tap Hamming-windowed sinc anti-aliasing filter
//   - Direct-form FIR convolution accelerated with SIMD (AVX2/SSE/NEON) via
//     github.com/tphakala/simd, or FFT overlap-save convolution via gonum
//   - float64 and float32 APIs
//   - Concurrent processing of independent buffers
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
//	output, err := downsampler.Downsample(input, 44100, 16000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated conversions between the same rates:
//
//	d, err := downsampler.New(&downsampler.Config{
//	    SourceRate: 48000,
//	    TargetRate: 16000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output, err := d.Process(input)
//
// # Algorithm
//
//	Input -> [101-tap low-pass @ target/2] -> [decimate] -> Output
//
// The filter is designed against the source rate with its cutoff at half the
// target rate, so content that would fold back below the new Nyquist frequency
// is attenuated before samples are dropped. Output sample k is the filtered
// sample at index floor(k * sourceRate/targetRate); no interpolation is done,
// and the output holds floor(len(input) / (sourceRate/targetRate)) samples.
//
// The filter is causal: samples before the start of the buffer count as zero
// and the 50-sample group delay is left in the output. Taps are not
// normalized for unity gain, so the passband gain is roughly
// sourceRate/targetRate. Both behaviors are part of the output contract.
//
// # Errors
//
// Equal rates return the input unchanged. A target rate above the source
// rate, or a rate that is not positive and finite, fails with an
// *InvalidRateError matching [ErrInvalidRate] before any filtering work.
//
// # Thread Safety
//
// All functions are pure and every call allocates its own buffers.
// A [Downsampler] holds only immutable configuration and may be shared by
// multiple goroutines.
package downsampler
