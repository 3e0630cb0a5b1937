package fourier

// Spectrum is an interleaved frequency-domain buffer of length 2*NFFT+2.
// Slot 0 and the last slot are reserved and always zero; bin k is stored
// as (s[2k+1], s[2k+2]).
type Spectrum []float64

// NewSpectrum returns a zeroed spectrum for an nfft-point transform.
func NewSpectrum(nfft int) Spectrum {
	return make(Spectrum, SpectrumLen(nfft))
}

// NFFT returns the number of bins.
func (s Spectrum) NFFT() int {
	if len(s) < 2 {
		return 0
	}
	return (len(s) - 2) / 2
}

// Active returns the 2*NFFT interleaved values without the reserved slots.
func (s Spectrum) Active() []float64 {
	if len(s) < 2 {
		return nil
	}
	return s[1 : len(s)-1]
}

// Bin returns bin k as a complex number.
func (s Spectrum) Bin(k int) complex128 {
	return complex(s[2*k+1], s[2*k+2])
}

// Bins copies all NFFT bins into a new slice.
func (s Spectrum) Bins() []complex128 {
	out := make([]complex128, s.NFFT())
	for k := range out {
		out[k] = s.Bin(k)
	}
	return out
}

// Len returns the bin count. Together with At it lets a Spectrum be used
// wherever a read-only complex bin source is expected.
func (s Spectrum) Len() int { return s.NFFT() }

// At returns bin k.
func (s Spectrum) At(k int) complex128 { return s.Bin(k) }
