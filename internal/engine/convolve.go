// Package engine implements FIR convolution and decimation for downsampling.
//
// All functions are pure: they never modify their inputs and always return
// freshly allocated buffers, so they are safe for concurrent use.
package engine

import (
	"fmt"

	"github.com/tphakala/go-audio-downsampler/internal/simdops"
)

// Method selects the convolution algorithm.
type Method int

const (
	// MethodAuto picks direct SIMD convolution for short kernels and
	// FFT overlap-save convolution for long ones.
	MethodAuto Method = iota

	// MethodDirect forces direct SIMD convolution, O(N×M).
	MethodDirect

	// MethodFFT forces FFT overlap-save convolution, O(N log N).
	MethodFFT
)

// String returns the flag-style name of the method.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// resolve maps MethodAuto to a concrete method for the given kernel length.
func (m Method) resolve(kernelLen int) Method {
	if m != MethodAuto {
		return m
	}
	if kernelLen >= minKernelForFFT {
		return MethodFFT
	}
	return MethodDirect
}

// ConvolveDirect is the reference causal FIR convolution:
//
//	out[i] = Σ_{j=0}^{M-1} input[i-j] * coeffs[j], for i-j >= 0
//
// The output has the same length as input. Samples before the start of the
// input are treated as zero and the (M-1)/2 group delay is not compensated.
func ConvolveDirect[F simdops.Float](input, coeffs []F) []F {
	output := make([]F, len(input))

	for i := range input {
		var sum F
		for j := 0; j < len(coeffs) && j <= i; j++ {
			sum += input[i-j] * coeffs[j]
		}
		output[i] = sum
	}

	return output
}

// Convolve computes the same result as ConvolveDirect using the given method.
//
// The causal same-length convolution is mapped onto a "valid" correlation by
// left-padding the input with M-1 zeros and reversing the kernel:
//
//	out[i] = Σ_j padded[i+j] * reversed[j]
//
// which is exactly what SIMD ConvolveValid and the FFT overlap-save convolver
// compute.
func Convolve[F simdops.Float](input, coeffs []F, method Method) []F {
	if len(input) == 0 {
		return []F{}
	}
	if len(coeffs) == 0 {
		return make([]F, len(input))
	}

	padded, reversed := causalLayout(input, coeffs)

	if method.resolve(len(coeffs)) == MethodFFT {
		return convolveFFT(padded, reversed, len(input))
	}

	output := make([]F, len(input))
	simdops.For[F]().ConvolveValid(output, padded, reversed)
	return output
}

// causalLayout returns the zero left-padded input and the reversed kernel.
func causalLayout[F simdops.Float](input, coeffs []F) (padded, reversed []F) {
	overlap := len(coeffs) - 1

	padded = make([]F, overlap+len(input))
	copy(padded[overlap:], input)

	reversed = make([]F, len(coeffs))
	for i, c := range coeffs {
		reversed[len(coeffs)-1-i] = c
	}

	return padded, reversed
}

// convolveFFT runs the valid correlation through the float64 FFT convolver,
// converting precision at the boundaries when F is float32.
func convolveFFT[F simdops.Float](padded, reversed []F, outputLen int) []F {
	signal := toFloat64(padded)
	conv := NewFFTConvolver(toFloat64(reversed))

	result := make([]float64, outputLen)
	conv.Convolve(result, signal)

	if out, ok := any(result).([]F); ok {
		return out
	}

	out := make([]F, outputLen)
	for i, v := range result {
		out[i] = F(v)
	}
	return out
}

func toFloat64[F simdops.Float](s []F) []float64 {
	if out, ok := any(s).([]float64); ok {
		return out
	}

	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
