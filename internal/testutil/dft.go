package testutil

import (
	"math"
	"math/cmplx"
)

// NaiveDFT computes X[k] = sum_j in[j] * exp(sign*2*pi*i*j*k/N) directly in
// O(N^2). It is the unnormalized reference the FFT kernels are checked
// against.
func NaiveDFT(in []complex128, sign int) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range in {
			angle := float64(sign) * 2 * math.Pi * float64(j*k%n) / float64(n)
			sum += v * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

// Interleave packs complex values into (re, im) pairs.
func Interleave(in []complex128) []float64 {
	out := make([]float64, 2*len(in))
	for i, v := range in {
		out[2*i] = real(v)
		out[2*i+1] = imag(v)
	}
	return out
}

// Deinterleave unpacks (re, im) pairs into complex values.
func Deinterleave(in []float64) []complex128 {
	out := make([]complex128, len(in)/2)
	for i := range out {
		out[i] = complex(in[2*i], in[2*i+1])
	}
	return out
}
