package frequency_test

import (
	"fmt"

	"github.com/cwbudde/algo-nmr/stats/frequency"
)

func ExampleLinewidth() {
	mag := []float64{0, 0, 2, 4, 2, 0, 0}
	fwhm, _ := frequency.Linewidth(mag, 1200, 3)
	fmt.Printf("fwhm=%.0f Hz\n", fwhm)

	// Output:
	// fwhm=200 Hz
}

func ExampleAnalyze() {
	mag := []float64{0, 0.1, 1, 4, 1, 0.1, 0.1, 0.1, 0.1}
	line, _ := frequency.Analyze(mag, 1600)
	fmt.Printf("f=%.0f Hz fwhm=%.0f Hz snr=%.0f\n", line.Frequency, line.FWHM, line.SNR)

	// Output:
	// f=300 Hz fwhm=133 Hz snr=40
}
