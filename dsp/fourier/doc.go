// Package fourier converts NMR magnetometer waveforms into zero-padded
// frequency spectra and back.
//
// # Sizing
//
// A waveform of n samples is padded with floor(fs*tpad) zeros, where fs is
// the sample frequency and tpad the zero-padding time, and the result is
// rounded up to the next power of two:
//
//	tr := fourier.New(
//		fourier.WithSampleFrequency(10e6),
//		fourier.WithZeroPaddingTime(1e-3),
//	)
//	nfft, err := tr.FFTSize(len(samples))
//
// Padding interpolates the spectrum; the padding time trades frequency
// resolution against kernel cost.
//
// # Spectrum layout
//
// [Spectrum] is an interleaved (re, im) buffer of length 2*NFFT+2. Slot 0
// and the last slot are reserved and stay zero, bin k is stored at
// 2k+1 and 2k+2. The layout matches what existing NMR analysis consumers
// expect; use [Spectrum.Bin] or [Spectrum.Bins] rather than indexing by
// hand.
//
// # Normalization
//
// [Transform.Forward] runs the kernel with [SignForward] (exponent +2*pi*i)
// and scales every component by 1/NFFT, so bin 0 holds the mean of the
// padded waveform. [Transform.Inverse] runs the kernel with [SignInverse]
// and applies no scaling. The unnormalized kernel pair multiplies a signal
// by NFFT and the forward 1/NFFT cancels it, so
//
//	_, spec, _ := tr.Forward(x)
//	y, _ := tr.Inverse(len(x), spec) // y == x within rounding
//
// Calling [FFT] directly with +1 and then -1 returns the input scaled by
// NFFT.
//
// # Kernels
//
// The default kernel, [Radix2], is an in-place bit-reversal plus butterfly
// Cooley-Tukey FFT. [PlannedKernel] produces the same result through
// algo-fft plans and can be selected with [WithKernel].
//
// # Concurrency
//
// A [Transform] reuses one scratch buffer for every call and must not be
// shared between goroutines. Distinct Transforms share no state. [Batch]
// runs one Transform per worker.
package fourier
