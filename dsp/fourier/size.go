package fourier

import "math/bits"

// NextPowerOfTwo returns the smallest power of two >= n.
// It returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// SpectrumLen returns the length of the interleaved spectral buffer for an
// nfft-point transform: 2*nfft values plus the two reserved slots.
func SpectrumLen(nfft int) int {
	return 2*nfft + 2
}
