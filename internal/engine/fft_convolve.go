package engine

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTConvolver performs overlap-save FFT convolution.
//
// It computes the same "valid" correlation as SIMD ConvolveValid:
//
//	dst[i] = Σ signal[i+j] * kernel[j], len(dst) = len(signal) - len(kernel) + 1
//
// The kernel spectrum is computed once and reused for every block:
//  1. Input is processed in blocks of fftSize samples overlapping by kernelLen-1
//  2. Each block yields blockSize = fftSize - kernelLen + 1 valid outputs
//  3. The first kernelLen-1 outputs of each block carry circular wrap and are discarded
//
// An FFTConvolver owns scratch buffers and must not be shared between goroutines.
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int

	kernelFFT []complex128
	kernelLen int
	scale     float64 // 1/fftSize, gonum's inverse transform is unnormalized

	block      []float64
	blockFFT   []complex128
	productFFT []complex128
	ifftResult []float64
}

// NewFFTConvolver creates a convolver for kernel. Returns nil for an empty kernel.
func NewFFTConvolver(kernel []float64) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil
	}

	// Next power of 2 >= 2*kernelLen keeps the discarded overlap under half a block
	fftSize := defaultFFTBlockSize
	for fftSize < 2*kernelLen {
		fftSize *= 2
	}

	fft := fourier.NewFFT(fftSize)

	// Circular convolution computes Σ x[n-k]·h[k]; feeding it the reversed
	// kernel turns the result into the correlation Σ x[n+j]·kernel[j].
	reversed := make([]float64, fftSize)
	for i := range kernelLen {
		reversed[i] = kernel[kernelLen-1-i]
	}

	binCount := fftSize/fftHermitianDivisor + 1

	return &FFTConvolver{
		fft:        fft,
		fftSize:    fftSize,
		blockSize:  fftSize - kernelLen + 1,
		kernelFFT:  fft.Coefficients(nil, reversed),
		kernelLen:  kernelLen,
		scale:      1.0 / float64(fftSize),
		block:      make([]float64, fftSize),
		blockFFT:   make([]complex128, binCount),
		productFFT: make([]complex128, binCount),
		ifftResult: make([]float64, fftSize),
	}
}

// KernelLen returns the length of the kernel the convolver was built for.
func (c *FFTConvolver) KernelLen() int {
	return c.kernelLen
}

// Convolve writes len(signal)-KernelLen()+1 valid outputs to dst.
// It does nothing if the signal is shorter than the kernel or dst is too short.
func (c *FFTConvolver) Convolve(dst, signal []float64) {
	outputLen := len(signal) - c.kernelLen + 1
	if outputLen <= 0 || len(dst) < outputLen {
		return
	}

	overlap := c.kernelLen - 1

	for outIdx := 0; outIdx < outputLen; {
		clear(c.block)
		end := min(outIdx+c.fftSize, len(signal))
		copy(c.block, signal[outIdx:end])

		c.blockFFT = c.fft.Coefficients(c.blockFFT, c.block)
		c128.Mul(c.productFFT, c.blockFFT, c.kernelFFT)
		c.ifftResult = c.fft.Sequence(c.ifftResult, c.productFFT)
		f64.Scale(c.ifftResult, c.ifftResult, c.scale)

		valid := min(c.blockSize, outputLen-outIdx)
		copy(dst[outIdx:outIdx+valid], c.ifftResult[overlap:overlap+valid])

		outIdx += valid
	}
}
