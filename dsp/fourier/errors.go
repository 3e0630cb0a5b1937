package fourier

import "errors"

// Sentinel errors returned by transform operations. Returned errors wrap
// these with context; match them with errors.Is.
var (
	// ErrInvalidConfiguration is returned when the sample frequency or
	// zero-padding time is not a finite, non-negative number, or when the
	// padded length before power-of-two rounding is not positive.
	ErrInvalidConfiguration = errors.New("fourier: invalid configuration")

	// ErrSizeLimitExceeded is returned when the padded length or the
	// resulting FFT size exceeds the transform's maximum size.
	ErrSizeLimitExceeded = errors.New("fourier: size limit exceeded")

	// ErrShapeMismatch is returned when a spectrum or destination slice does
	// not have the length implied by the sample count and padding settings.
	ErrShapeMismatch = errors.New("fourier: shape mismatch")

	// ErrKernel is returned when the FFT kernel backend fails.
	ErrKernel = errors.New("fourier: kernel failure")
)
