package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-audio-downsampler/internal/filter"
	"github.com/tphakala/go-audio-downsampler/internal/testutil"
)

const (
	testRateCD     = 44100.0
	testRateSpeech = 22050.0
	testRateVoIP   = 16000.0
	testRateDAT    = 48000.0

	testNoiseSeed = 12345
)

func testKernel() []float64 {
	return filter.LowPass(Cutoff(testRateSpeech), testRateCD)
}

// =============================================================================
// Method Tests
// =============================================================================

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "auto", MethodAuto.String())
	assert.Equal(t, "direct", MethodDirect.String())
	assert.Equal(t, "fft", MethodFFT.String())
	assert.Equal(t, "Method(9)", Method(9).String())
}

func TestMethod_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		method    Method
		kernelLen int
		want      Method
	}{
		{"auto_short_kernel", MethodAuto, filter.NumTaps, MethodDirect},
		{"auto_long_kernel", MethodAuto, minKernelForFFT, MethodFFT},
		{"direct_long_kernel", MethodDirect, 4 * minKernelForFFT, MethodDirect},
		{"fft_short_kernel", MethodFFT, 3, MethodFFT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.resolve(tt.kernelLen))
		})
	}
}

// =============================================================================
// Convolution Tests
// =============================================================================

// TestConvolveDirect_Causal checks the reference loop on a hand-computed case.
func TestConvolveDirect_Causal(t *testing.T) {
	input := []float64{1, 2, 3, 4}
	coeffs := []float64{0.5, 0.25}

	// out[0] = 1*0.5, out[i] = x[i]*0.5 + x[i-1]*0.25
	want := []float64{0.5, 1.25, 2.0, 2.75}
	assert.Equal(t, want, ConvolveDirect(input, coeffs))
}

// TestConvolve_ImpulseResponse verifies a unit impulse reproduces the kernel.
func TestConvolve_ImpulseResponse(t *testing.T) {
	coeffs := testKernel()

	for _, method := range []Method{MethodDirect, MethodFFT} {
		t.Run(method.String(), func(t *testing.T) {
			input := make([]float64, 2*filter.NumTaps)
			input[0] = 1

			output := Convolve(input, coeffs, method)
			require.Len(t, output, len(input))

			testutil.AssertSlicesInDelta(t, coeffs, output[:filter.NumTaps], testutil.FFTTolerance)
			for i := filter.NumTaps; i < len(output); i++ {
				assert.InDelta(t, 0.0, output[i], testutil.FFTTolerance, "out[%d]", i)
			}
		})
	}
}

// TestConvolve_MatchesReference compares every method against ConvolveDirect.
func TestConvolve_MatchesReference(t *testing.T) {
	coeffs := testKernel()

	lengths := []int{1, 7, filter.NumTaps - 1, filter.NumTaps, 500, 1000, 4096}
	methods := []Method{MethodAuto, MethodDirect, MethodFFT}

	for _, n := range lengths {
		input := testutil.Noise(n, testNoiseSeed)
		want := ConvolveDirect(input, coeffs)

		for _, method := range methods {
			got := Convolve(input, coeffs, method)
			testutil.AssertSlicesInDelta(t, want, got, testutil.FFTTolerance)
		}
	}
}

// TestConvolve_SameLength verifies the output always matches the input length.
func TestConvolve_SameLength(t *testing.T) {
	coeffs := testKernel()

	for _, n := range []int{1, 2, 50, 101, 1234} {
		for _, method := range []Method{MethodDirect, MethodFFT} {
			output := Convolve(make([]float64, n), coeffs, method)
			assert.Len(t, output, n, "method=%s n=%d", method, n)
		}
	}
}

func TestConvolve_EmptyInput(t *testing.T) {
	for _, method := range []Method{MethodDirect, MethodFFT} {
		output := Convolve([]float64{}, testKernel(), method)
		assert.NotNil(t, output)
		assert.Empty(t, output)

		output = Convolve(nil, testKernel(), method)
		assert.NotNil(t, output)
		assert.Empty(t, output)
	}
}

func TestConvolve_EmptyKernel(t *testing.T) {
	input := []float64{1, 2, 3}
	output := Convolve(input, nil, MethodDirect)
	assert.Equal(t, []float64{0, 0, 0}, output)
}

// TestConvolve_DoesNotModifyInput verifies inputs are treated as read-only.
func TestConvolve_DoesNotModifyInput(t *testing.T) {
	coeffs := testKernel()
	coeffsCopy := append([]float64(nil), coeffs...)
	input := testutil.Noise(600, testNoiseSeed)
	inputCopy := append([]float64(nil), input...)

	for _, method := range []Method{MethodDirect, MethodFFT} {
		_ = Convolve(input, coeffs, method)
		assert.Equal(t, inputCopy, input, "input modified by %s", method)
		assert.Equal(t, coeffsCopy, coeffs, "kernel modified by %s", method)
	}
}

// TestConvolve_Float32 verifies float32 convolution tracks the float64 result.
func TestConvolve_Float32(t *testing.T) {
	coeffs := testKernel()
	input := testutil.Noise(1500, testNoiseSeed)
	want := ConvolveDirect(input, coeffs)

	coeffs32 := filter.LowPassAs[float32](Cutoff(testRateSpeech), testRateCD)
	input32 := make([]float32, len(input))
	for i, v := range input {
		input32[i] = float32(v)
	}

	for _, method := range []Method{MethodDirect, MethodFFT} {
		got := Convolve(input32, coeffs32, method)
		require.Len(t, got, len(want))
		for i := range want {
			if !assert.InDelta(t, want[i], float64(got[i]), testutil.Float32Tolerance,
				"method=%s index %d", method, i) {
				break
			}
		}
	}
}
