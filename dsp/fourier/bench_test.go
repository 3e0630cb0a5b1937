package fourier

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-nmr/internal/testutil"
)

var benchSizes = []int{256, 4096, 65536}

func BenchmarkRadix2(b *testing.B) {
	for _, n := range benchSizes {
		data := testutil.Interleave(randomComplex(1, n))
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))
			for b.Loop() {
				FFT(data, SignForward)
			}
		})
	}
}

func BenchmarkPlannedKernel(b *testing.B) {
	for _, n := range benchSizes {
		data := testutil.Interleave(randomComplex(1, n))
		k := NewPlannedKernel()
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))
			for b.Loop() {
				if err := k.Apply(data, SignForward); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkForwardInto(b *testing.B) {
	tr := New(WithSampleFrequency(10e6), WithZeroPaddingTime(1e-4))
	samples := testutil.FreeInductionDecay(1.2e6, 10e6, 1, 2e-4, 3000)
	nfft, err := tr.FFTSize(len(samples))
	if err != nil {
		b.Fatal(err)
	}
	dst := NewSpectrum(nfft)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := tr.ForwardInto(dst, samples); err != nil {
			b.Fatal(err)
		}
	}
}
