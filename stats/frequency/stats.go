// Package frequency measures the resonance line of an NMR magnitude
// spectrum: its frequency, width, decay time and signal-to-noise ratio.
//
// Functions take a one-sided magnitude spectrum, bins 0 (DC) to Nyquist,
// of length FFTSize/2 + 1. The frequency of bin i is
//
//	f_i = i * sampleRate / (2 * (len(magnitude) - 1))
package frequency

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-nmr/dsp/spectrum"
)

// ErrUnresolvedLine is returned when the magnitude does not fall to half
// the peak height on both sides of the peak.
var ErrUnresolvedLine = errors.New("frequency: line not resolved")

// Line describes the strongest non-DC resonance of a spectrum.
type Line struct {
	Bin       int     // bin of the largest magnitude
	Frequency float64 // interpolated peak frequency (Hz)
	Height    float64 // interpolated peak magnitude
	FWHM      float64 // full width at half maximum (Hz)
	T2Star    float64 // effective decay time from FWHM (s)
	Noise     float64 // RMS magnitude of the noise region
	SNR       float64 // Height / Noise, +Inf for a noiseless spectrum
	SNR_dB    float64
}

// OneSided returns the DC-to-Nyquist part of a full NFFT-bin magnitude
// spectrum. The result aliases full.
func OneSided(full []float64) []float64 {
	if len(full) < 2 {
		return full
	}
	return full[:len(full)/2+1]
}

// binFreq returns the frequency in Hz of a given bin index.
func binFreq(i float64, sampleRate float64, binCount int) float64 {
	return i * sampleRate / float64(2*(binCount-1))
}

// Analyze locates the strongest line above DC and measures it. The noise
// is taken from the upper quarter of the band, or the lower quarter above
// DC when the line lies in the upper quarter.
func Analyze(magnitude []float64, sampleRate float64) (Line, error) {
	n := len(magnitude)
	if n < 3 {
		return Line{}, fmt.Errorf("line analysis requires at least 3 bins: %d", n)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Line{}, fmt.Errorf("line analysis sampleRate must be finite and > 0: %v", sampleRate)
	}

	p, err := spectrum.PeakBin(magnitude, 1, n)
	if err != nil {
		return Line{}, err
	}
	line := Line{
		Bin:       p.Bin,
		Frequency: binFreq(p.Position(), sampleRate, n),
		Height:    p.Value,
	}

	if line.FWHM, err = Linewidth(magnitude, sampleRate, p.Bin); err != nil {
		return line, err
	}
	// Half-height width of a magnitude-mode Lorentzian is sqrt(3)/(pi*T2).
	line.T2Star = math.Sqrt(3) / (math.Pi * line.FWHM)

	quarter := max(n/4, 1)
	lo, hi := n-quarter, n
	if p.Bin >= lo {
		lo, hi = 1, 1+quarter
	}
	if line.Noise, err = NoiseRMS(magnitude, lo, hi); err != nil {
		return line, err
	}
	if line.Noise == 0 {
		line.SNR = math.Inf(1)
	} else {
		line.SNR = line.Height / line.Noise
	}
	line.SNR_dB = 20 * math.Log10(line.SNR)
	return line, nil
}

// Linewidth returns the full width at half maximum in Hz of the line
// peaking at peakBin. Crossings are interpolated linearly between bins.
func Linewidth(magnitude []float64, sampleRate float64, peakBin int) (float64, error) {
	n := len(magnitude)
	if peakBin < 0 || peakBin >= n {
		return 0, fmt.Errorf("peak bin %d out of range [0, %d)", peakBin, n)
	}
	half := magnitude[peakBin] / 2
	if !(half > 0) {
		return 0, fmt.Errorf("%w: peak magnitude %v", ErrUnresolvedLine, magnitude[peakBin])
	}

	lower, upper := math.NaN(), math.NaN()
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= half && magnitude[i] > half {
			lower = interpBin(i-1, i, magnitude[i-1], magnitude[i], half)
			break
		}
	}
	for i := peakBin; i < n-1; i++ {
		if magnitude[i+1] <= half && magnitude[i] > half {
			upper = interpBin(i, i+1, magnitude[i], magnitude[i+1], half)
			break
		}
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return 0, fmt.Errorf("%w: no half-height crossing around bin %d", ErrUnresolvedLine, peakBin)
	}
	return binFreq(upper-lower, sampleRate, n), nil
}

// interpBin linearly interpolates the fractional bin where the magnitude
// crosses threshold between two adjacent bins.
func interpBin(binLow, binHigh int, magLow, magHigh, threshold float64) float64 {
	denom := magHigh - magLow
	if denom == 0 {
		return float64(binLow+binHigh) / 2
	}
	t := (threshold - magLow) / denom
	return float64(binLow) + t*float64(binHigh-binLow)
}

// NoiseRMS returns the RMS of magnitude[lo:hi].
func NoiseRMS(magnitude []float64, lo, hi int) (float64, error) {
	if lo < 0 || hi > len(magnitude) || lo >= hi {
		return 0, fmt.Errorf("noise range [%d, %d) invalid for %d bins", lo, hi, len(magnitude))
	}
	sum := 0.0
	for _, v := range magnitude[lo:hi] {
		sum += v * v
	}
	return math.Sqrt(sum / float64(hi-lo)), nil
}
