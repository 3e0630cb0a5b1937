package spectrum

import (
	"fmt"
	"math"
)

// Peak is the largest value in a range of bins, refined by fitting a
// parabola through it and its two neighbours.
type Peak struct {
	// Bin is the index of the largest value.
	Bin int
	// Offset is the interpolated position relative to Bin, in [-0.5, 0.5].
	Offset float64
	// Value is the interpolated height.
	Value float64
}

// Position returns Bin+Offset.
func (p Peak) Position() float64 { return float64(p.Bin) + p.Offset }

// PeakBin finds the maximum of values[lo:hi]. Neighbours outside [lo, hi)
// are still used for interpolation when they exist. The offset is zero at
// the slice edges and when the maximum is not a local maximum of values.
func PeakBin(values []float64, lo, hi int) (Peak, error) {
	if lo < 0 || hi > len(values) || lo >= hi {
		return Peak{}, fmt.Errorf("peak search range [%d, %d) invalid for %d values", lo, hi, len(values))
	}

	best := lo
	for i := lo + 1; i < hi; i++ {
		if values[i] > values[best] {
			best = i
		}
	}

	p := Peak{Bin: best, Value: values[best]}
	if best == 0 || best == len(values)-1 {
		return p, nil
	}

	a, b, c := values[best-1], values[best], values[best+1]
	den := a - 2*b + c
	if !(den < 0) || a > b || c > b {
		return p, nil
	}
	p.Offset = 0.5 * (a - c) / den
	p.Value = b - 0.25*(a-c)*p.Offset
	return p, nil
}

// PeakFrequency returns the interpolated frequency in Hz of the strongest
// non-DC bin below Nyquist. bins must hold a full NFFT-bin spectrum.
func PeakFrequency(bins ComplexBins, sampleRate float64) (float64, error) {
	if bins == nil || bins.Len() < 2 {
		return 0, fmt.Errorf("peak frequency requires at least 2 bins")
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("peak frequency sampleRate must be finite and > 0: %v", sampleRate)
	}

	n := bins.Len()
	p, err := PeakBin(Magnitude(bins), 1, n/2+1)
	if err != nil {
		return 0, err
	}
	return p.Position() * sampleRate / float64(n), nil
}
