package fourier

import "log/slog"

// DefaultMaxSize is the default ceiling on the FFT size of a transform.
const DefaultMaxSize = 10_000_000

// Option configures a Transform at construction.
type Option func(*Transform)

// WithSampleFrequency sets the sampling frequency in Hz.
func WithSampleFrequency(hz float64) Option {
	return func(t *Transform) {
		t.sampleFreq = hz
	}
}

// WithZeroPaddingTime sets the zero-padding duration in seconds.
func WithZeroPaddingTime(seconds float64) Option {
	return func(t *Transform) {
		t.zeroPadTime = seconds
	}
}

// WithMaxSize sets the largest FFT size the transform accepts.
// Non-positive values are ignored.
func WithMaxSize(n int) Option {
	return func(t *Transform) {
		if n > 0 {
			t.maxSize = n
		}
	}
}

// WithKernel replaces the default [Radix2] kernel. Nil is ignored.
func WithKernel(k Kernel) Option {
	return func(t *Transform) {
		if k != nil {
			t.kernel = k
		}
	}
}

// WithPlannedKernel gives each Transform built with this option its own
// [PlannedKernel]. Prefer it to WithKernel(NewPlannedKernel()) when the
// options are shared, as in [NewBatch].
func WithPlannedKernel() Option {
	return func(t *Transform) {
		t.kernel = NewPlannedKernel()
	}
}

// WithLogger sets the logger used for status messages. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Transform) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithParsevalCheck makes Forward log a warning whenever the time-domain
// and frequency-domain energies differ by more than pct percent.
// pct <= 0 disables the check.
func WithParsevalCheck(pct float64) Option {
	return func(t *Transform) {
		t.parsevalPct = pct
	}
}
