package downsampler

import (
	"fmt"

	"github.com/tphakala/go-audio-downsampler/internal/engine"
	"github.com/tphakala/go-audio-downsampler/internal/filter"
	"github.com/tphakala/simd/cpu"
)

// ConvolutionMethod selects how the anti-aliasing filter is applied.
// Every method produces the same output within floating-point tolerance.
type ConvolutionMethod int

const (
	// ConvolutionAuto picks the fastest method for the filter length.
	ConvolutionAuto ConvolutionMethod = iota

	// ConvolutionDirect uses direct-form SIMD convolution.
	ConvolutionDirect

	// ConvolutionFFT uses FFT overlap-save convolution.
	ConvolutionFFT
)

// String returns the flag-style name of the method.
func (m ConvolutionMethod) String() string {
	return m.engineMethod().String()
}

func (m ConvolutionMethod) engineMethod() engine.Method {
	switch m {
	case ConvolutionDirect:
		return engine.MethodDirect
	case ConvolutionFFT:
		return engine.MethodFFT
	default:
		return engine.MethodAuto
	}
}

// Config holds downsampling configuration.
type Config struct {
	// SourceRate is the sample rate of the input buffer in Hz.
	SourceRate float64

	// TargetRate is the desired output sample rate in Hz.
	// Must not exceed SourceRate.
	TargetRate float64

	// Method selects the convolution algorithm. The zero value is ConvolutionAuto.
	Method ConvolutionMethod
}

// Validate checks if the configuration is valid.
// Rate problems are reported as *InvalidRateError.
func (c *Config) Validate() error {
	if err := validateRates(c.SourceRate, c.TargetRate); err != nil {
		return err
	}

	if c.Method < ConvolutionAuto || c.Method > ConvolutionFFT {
		return fmt.Errorf("%w: unknown convolution method %d", ErrInvalidConfig, int(c.Method))
	}

	return nil
}

// Downsampler converts single-channel buffers between a fixed rate pair.
//
// It holds only immutable configuration: filter coefficients are designed
// fresh on every call, so a Downsampler is safe for concurrent use.
type Downsampler struct {
	sourceRate float64
	targetRate float64
	method     engine.Method
}

// New creates a Downsampler for the configured rate pair.
func New(config *Config) (*Downsampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Downsampler{
		sourceRate: config.SourceRate,
		targetRate: config.TargetRate,
		method:     config.Method.engineMethod(),
	}, nil
}

// Process downsamples a float64 buffer. When the rates are equal the input
// slice itself is returned. The input is never modified.
func (d *Downsampler) Process(input []float64) ([]float64, error) {
	if d.sourceRate == d.targetRate {
		return input, nil
	}
	return engine.Downsample(input, d.sourceRate, d.targetRate, d.method), nil
}

// ProcessFloat32 is like Process but for float32 samples.
func (d *Downsampler) ProcessFloat32(input []float32) ([]float32, error) {
	if d.sourceRate == d.targetRate {
		return input, nil
	}
	return engine.Downsample(input, d.sourceRate, d.targetRate, d.method), nil
}

// GetRatio returns the decimation ratio (source_rate / target_rate).
func (d *Downsampler) GetRatio() float64 {
	return d.sourceRate / d.targetRate
}

// GetLatency returns the filter group delay in source-rate samples.
// Zero when no filtering takes place.
func (d *Downsampler) GetLatency() int {
	if d.sourceRate == d.targetRate {
		return 0
	}
	return engine.GroupDelay()
}

// OutputLength returns the number of samples Process produces for n input samples.
func (d *Downsampler) OutputLength(n int) int {
	if d.sourceRate == d.targetRate {
		return n
	}
	return engine.DecimatedLength(n, d.GetRatio())
}

// Info describes the filter a Downsampler applies.
type Info struct {
	// Algorithm describes the downsampling algorithm.
	Algorithm string

	// Method is the convolution method in use.
	Method string

	// FilterLength is the number of filter taps.
	FilterLength int

	// Cutoff is the anti-aliasing cutoff in Hz (the target Nyquist frequency).
	Cutoff float64

	// DCGain is the sum of the filter taps. The filter is not gain
	// normalized, so this is typically close to source_rate / target_rate.
	DCGain float64

	// Latency is the uncompensated group delay in source-rate samples.
	Latency int

	// MemoryUsage is the approximate per-call coefficient memory in bytes.
	MemoryUsage int64

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// GetInfo returns information about the filter d applies.
func (d *Downsampler) GetInfo() Info {
	coeffs := filter.LowPass(engine.Cutoff(d.targetRate), d.sourceRate)

	return Info{
		Algorithm:    algorithmName,
		Method:       d.method.String(),
		FilterLength: len(coeffs),
		Cutoff:       engine.Cutoff(d.targetRate),
		DCGain:       filter.DCGain(coeffs),
		Latency:      d.GetLatency(),
		MemoryUsage:  int64(len(coeffs)) * bytesPerFloat64,
		SIMDType:     cpu.Info(),
	}
}

// Downsample converts input from sourceRate to the lower targetRate.
//
// The buffer is low-pass filtered at targetRate/2 with a fixed 101-tap
// Hamming-windowed sinc filter and then decimated by selecting sample
// floor(k*sourceRate/targetRate) for each output index k. The output holds
// floor(len(input)/(sourceRate/targetRate)) samples.
//
// Equal rates return input unchanged. A targetRate above sourceRate, or a
// non-positive rate, returns an *InvalidRateError matching ErrInvalidRate
// and no buffer. Rates are checked for being positive and finite first, so
// equal rates such as (0, 0) are rejected rather than passed through.
func Downsample(input []float64, sourceRate, targetRate float64) ([]float64, error) {
	d, err := New(&Config{SourceRate: sourceRate, TargetRate: targetRate})
	if err != nil {
		return nil, err
	}
	return d.Process(input)
}

// DownsampleFloat32 is like Downsample but for float32 samples.
// Filtering runs in float32 precision throughout.
func DownsampleFloat32(input []float32, sourceRate, targetRate float64) ([]float32, error) {
	d, err := New(&Config{SourceRate: sourceRate, TargetRate: targetRate})
	if err != nil {
		return nil, err
	}
	return d.ProcessFloat32(input)
}
