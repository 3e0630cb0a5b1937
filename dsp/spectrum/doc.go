// Package spectrum extracts magnitude, power, phase and peak information
// from complex FFT bins.
//
// Functions take a [ComplexBins] source, so they accept a fourier.Spectrum
// directly as well as a plain []complex128 wrapped in [SliceBins]. Frequency
// axes follow the usual convention f_k = k*fs/NFFT.
package spectrum
