package spectrum

import "testing"

var benchSizes = []struct {
	name string
	size int
}{
	{"256", 256},
	{"4K", 4096},
	{"64K", 65536},
}

func benchBins(n int) SliceBins {
	in := make(SliceBins, n)
	for i := range in {
		in[i] = complex(float64(i)/10.0, float64(n-i)/10.0)
	}
	return in
}

func BenchmarkMagnitude(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := benchBins(tc.size)
			b.SetBytes(int64(tc.size * 16))
			b.ReportAllocs()
			for b.Loop() {
				_ = Magnitude(in)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := benchBins(tc.size)
			b.SetBytes(int64(tc.size * 16))
			b.ReportAllocs()
			for b.Loop() {
				_ = Power(in)
			}
		})
	}
}

func BenchmarkPeakFrequency(b *testing.B) {
	in := benchBins(4096)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := PeakFrequency(in, 10e6); err != nil {
			b.Fatal(err)
		}
	}
}
