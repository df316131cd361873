package downsampler

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates invalid configuration parameters other than rates.
var ErrInvalidConfig = errors.New("invalid downsampler configuration")

// ErrInvalidRate is the sentinel matched by every *InvalidRateError.
// Use errors.Is(err, ErrInvalidRate) to detect rate rejections.
var ErrInvalidRate = errors.New("invalid sample rate")

// Rejection reasons reported by InvalidRateError.
const (
	// ReasonUpsampling is reported when the target rate exceeds the source rate.
	ReasonUpsampling = "target sample rate must not exceed source sample rate"

	// ReasonNonPositive is reported when a rate is zero, negative, NaN or infinite.
	ReasonNonPositive = "sample rates must be positive and finite"
)

// InvalidRateError reports a source/target rate pair that cannot be downsampled.
// It is returned before any filtering work starts.
type InvalidRateError struct {
	SourceRate float64
	TargetRate float64
	Reason     string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("%s (source %g Hz, target %g Hz)", e.Reason, e.SourceRate, e.TargetRate)
}

// Is reports whether target is ErrInvalidRate.
func (e *InvalidRateError) Is(target error) bool {
	return target == ErrInvalidRate
}

// validateRates checks a rate pair. Equal rates are valid.
func validateRates(sourceRate, targetRate float64) error {
	if !isPositiveFinite(sourceRate) || !isPositiveFinite(targetRate) {
		return &InvalidRateError{SourceRate: sourceRate, TargetRate: targetRate, Reason: ReasonNonPositive}
	}

	if targetRate > sourceRate {
		return &InvalidRateError{SourceRate: sourceRate, TargetRate: targetRate, Reason: ReasonUpsampling}
	}

	return nil
}
