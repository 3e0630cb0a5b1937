package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// ComplexBins is a read-only source of complex spectrum bins.
type ComplexBins interface {
	Len() int
	At(i int) complex128
}

// SliceBins adapts a []complex128 as [ComplexBins].
type SliceBins []complex128

// Len returns the bin count.
func (s SliceBins) Len() int { return len(s) }

// At returns bin i.
func (s SliceBins) At(i int) complex128 { return s[i] }

// unpack splits in into pooled re/im slices. The caller must return buf to
// scratchPool.
func unpack(in ComplexBins) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(in.Len())
	for i := range re {
		c := in.At(i)
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// Magnitude returns |X[k]| for every bin. Scratch buffers are pooled, so in
// steady state only the output slice is allocated.
func Magnitude(in ComplexBins) []float64 {
	if in == nil || in.Len() == 0 {
		return nil
	}
	out := make([]float64, in.Len())
	re, im, buf := unpack(in)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Power returns |X[k]|^2 for every bin.
func Power(in ComplexBins) []float64 {
	if in == nil || in.Len() == 0 {
		return nil
	}
	out := make([]float64, in.Len())
	re, im, buf := unpack(in)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Phase returns arg(X[k]) in radians for every bin.
func Phase(in ComplexBins) []float64 {
	if in == nil || in.Len() == 0 {
		return nil
	}
	out := make([]float64, in.Len())
	for i := range out {
		out[i] = cmplx.Phase(in.At(i))
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// Frequencies returns the centre frequency in Hz of the first count bins of
// an nfft-point transform sampled at sampleRate.
func Frequencies(nfft int, sampleRate float64, count int) ([]float64, error) {
	if nfft <= 0 {
		return nil, fmt.Errorf("frequencies nfft must be > 0: %d", nfft)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("frequencies sampleRate must be finite and > 0: %v", sampleRate)
	}
	if count < 0 || count > nfft {
		return nil, fmt.Errorf("frequencies count out of range [0, %d]: %d", nfft, count)
	}
	step := sampleRate / float64(nfft)
	out := make([]float64, count)
	for k := range out {
		out[k] = float64(k) * step
	}
	return out, nil
}
