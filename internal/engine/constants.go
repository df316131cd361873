package engine

// Convolution method selection constants
const (
	// Minimum kernel length to use FFT convolution in MethodAuto
	// (below this, direct SIMD convolution is faster).
	// Benchmarking shows crossover around 400-500 taps with gonum FFT.
	minKernelForFFT = 400

	// Default FFT block size (power of 2 for efficiency)
	defaultFFTBlockSize = 512

	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)

// Decimation constants
const (
	// nyquistDivisor converts a sample rate into its Nyquist frequency.
	nyquistDivisor = 2.0

	// groupDelayDivisor gives the delay of a symmetric FIR: (taps-1)/2.
	groupDelayDivisor = 2
)
