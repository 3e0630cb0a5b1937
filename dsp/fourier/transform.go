package fourier

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-nmr/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

// Transform converts a real time series into its zero-padded spectrum and a
// spectrum back into a time series.
//
// The FFT size for n samples is the next power of two above
// n + floor(sampleFrequency*zeroPaddingTime). Forward scales the spectrum by
// 1/NFFT; Inverse applies no scaling, so Inverse(n, Forward(x)) returns x.
//
// A Transform owns a scratch buffer that every call overwrites, so it must
// not be used from more than one goroutine at a time. Use one Transform per
// goroutine, or [Batch].
type Transform struct {
	sampleFreq  float64
	zeroPadTime float64
	maxSize     int
	kernel      Kernel
	logger      *slog.Logger
	parsevalPct float64

	work *buffer.Complex
}

// New returns a Transform with zero sample frequency and padding time,
// the [Radix2] kernel and a size limit of [DefaultMaxSize].
func New(opts ...Option) *Transform {
	t := &Transform{
		maxSize: DefaultMaxSize,
		kernel:  Radix2{},
		logger:  slog.New(slog.DiscardHandler),
		work:    &buffer.Complex{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// SetSampleFrequency sets the sampling frequency in Hz.
func (t *Transform) SetSampleFrequency(hz float64) { t.sampleFreq = hz }

// SetZeroPaddingTime sets the zero-padding duration in seconds.
func (t *Transform) SetZeroPaddingTime(seconds float64) { t.zeroPadTime = seconds }

// SampleFrequency returns the sampling frequency in Hz.
func (t *Transform) SampleFrequency() float64 { return t.sampleFreq }

// ZeroPaddingTime returns the zero-padding duration in seconds.
func (t *Transform) ZeroPaddingTime() float64 { return t.zeroPadTime }

// MaxSize returns the largest FFT size the transform accepts.
func (t *Transform) MaxSize() int { return t.maxSize }

// PaddingSamples returns floor(sampleFrequency*zeroPaddingTime).
func (t *Transform) PaddingSamples() (int, error) {
	if err := t.validateConfig(); err != nil {
		return 0, err
	}
	pad := math.Floor(t.sampleFreq * t.zeroPadTime)
	if pad > float64(t.maxSize) {
		return 0, fmt.Errorf("%w: %.0f padding samples exceed limit %d", ErrSizeLimitExceeded, pad, t.maxSize)
	}
	return int(pad), nil
}

// FFTSize returns the FFT size used for n input samples.
func (t *Transform) FFTSize(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative sample count %d", ErrShapeMismatch, n)
	}
	if n > t.maxSize {
		return 0, fmt.Errorf("%w: %d samples exceed limit %d", ErrSizeLimitExceeded, n, t.maxSize)
	}
	pad, err := t.PaddingSamples()
	if err != nil {
		return 0, err
	}

	padded := n + pad
	if padded <= 0 {
		return 0, fmt.Errorf("%w: padded length %d must be > 0", ErrInvalidConfiguration, padded)
	}
	if padded > t.maxSize {
		return 0, fmt.Errorf("%w: padded length %d exceeds limit %d", ErrSizeLimitExceeded, padded, t.maxSize)
	}

	nfft := NextPowerOfTwo(padded)
	if nfft > t.maxSize {
		return 0, fmt.Errorf("%w: fft size %d exceeds limit %d", ErrSizeLimitExceeded, nfft, t.maxSize)
	}
	return nfft, nil
}

func (t *Transform) validateConfig() error {
	if math.IsNaN(t.sampleFreq) || math.IsInf(t.sampleFreq, 0) || t.sampleFreq < 0 {
		return fmt.Errorf("%w: sample frequency must be finite and >= 0: %v", ErrInvalidConfiguration, t.sampleFreq)
	}
	if math.IsNaN(t.zeroPadTime) || math.IsInf(t.zeroPadTime, 0) || t.zeroPadTime < 0 {
		return fmt.Errorf("%w: zero-padding time must be finite and >= 0: %v", ErrInvalidConfiguration, t.zeroPadTime)
	}
	return nil
}

// Forward transforms samples and returns the FFT size and a new spectrum of
// length 2*NFFT+2. On error the spectrum is nil.
func (t *Transform) Forward(samples []float64) (int, Spectrum, error) {
	nfft, err := t.FFTSize(len(samples))
	if err != nil {
		return 0, nil, err
	}
	out := NewSpectrum(nfft)
	loadSamples(t.work, nfft, samples)
	if err := t.forward(out, nfft); err != nil {
		return 0, nil, err
	}
	return nfft, out, nil
}

// ForwardInt16 is Forward for raw 16-bit ADC samples.
func (t *Transform) ForwardInt16(samples []int16) (int, Spectrum, error) {
	nfft, err := t.FFTSize(len(samples))
	if err != nil {
		return 0, nil, err
	}
	out := NewSpectrum(nfft)
	loadSamples(t.work, nfft, samples)
	if err := t.forward(out, nfft); err != nil {
		return 0, nil, err
	}
	return nfft, out, nil
}

// ForwardInto is Forward writing into dst, which must have length
// SpectrumLen(NFFT). dst contents are unspecified if an error is returned.
func (t *Transform) ForwardInto(dst Spectrum, samples []float64) (int, error) {
	nfft, err := t.FFTSize(len(samples))
	if err != nil {
		return 0, err
	}
	if len(dst) != SpectrumLen(nfft) {
		return 0, fmt.Errorf("%w: spectrum length %d, want %d for nfft %d", ErrShapeMismatch, len(dst), SpectrumLen(nfft), nfft)
	}
	loadSamples(t.work, nfft, samples)
	if err := t.forward(dst, nfft); err != nil {
		return 0, err
	}
	return nfft, nil
}

// loadSamples resets w for nfft points and fills the real parts. Imaginary
// parts and the padded tail stay zero from the reset.
func loadSamples[S float64 | int16](w *buffer.Complex, nfft int, samples []S) {
	w.Reset(nfft)
	for i, v := range samples {
		w.Set(i, float64(v), 0)
	}
}

func (t *Transform) forward(dst Spectrum, nfft int) error {
	t.logger.Debug("computing FFT", "nfft", nfft, "sample_frequency", t.sampleFreq, "zero_padding_time", t.zeroPadTime)

	copy(dst, t.work.Data())
	active := dst.Active()
	if err := t.kernel.Apply(active, SignForward); err != nil {
		return err
	}
	vecmath.ScaleBlockInPlace(active, 1/float64(nfft))

	if t.parsevalPct > 0 {
		in := t.work.Active()
		dev := parsevalPercent(vecmath.DotProduct(in, in), float64(nfft)*vecmath.DotProduct(active, active))
		if dev > t.parsevalPct {
			t.logger.Warn("parseval's theorem not satisfied", "nfft", nfft, "deviation_pct", dev, "threshold_pct", t.parsevalPct)
		}
	}

	t.logger.Debug("FFT done", "nfft", nfft)
	return nil
}

// Inverse transforms spec back into n time-domain samples, keeping the real
// part of each. spec must have length SpectrumLen(FFTSize(n)); any other
// length means the producer used different padding settings and is
// rejected with ErrShapeMismatch.
func (t *Transform) Inverse(n int, spec Spectrum) ([]float64, error) {
	nfft, err := t.FFTSize(n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	if err := t.inverse(out, nfft, spec); err != nil {
		return nil, err
	}
	return out, nil
}

// InverseInto is Inverse with n = len(dst), writing into dst.
func (t *Transform) InverseInto(dst []float64, spec Spectrum) error {
	nfft, err := t.FFTSize(len(dst))
	if err != nil {
		return err
	}
	return t.inverse(dst, nfft, spec)
}

func (t *Transform) inverse(dst []float64, nfft int, spec Spectrum) error {
	if len(spec) != SpectrumLen(nfft) {
		return fmt.Errorf("%w: spectrum length %d, want %d for %d samples (nfft %d)",
			ErrShapeMismatch, len(spec), SpectrumLen(nfft), len(dst), nfft)
	}

	t.logger.Debug("computing inverse FFT", "nfft", nfft, "samples", len(dst))

	t.work.Reset(nfft)
	work := t.work.Active()
	copy(work, spec.Active())
	if err := t.kernel.Apply(work, SignInverse); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = t.work.Real(i)
	}

	t.logger.Debug("inverse FFT done", "nfft", nfft)
	return nil
}
