// Command nmrfft computes zero-padded spectra of NMR magnetometer waveforms
// and inverts them back to time series.
//
// Usage:
//
//	nmrfft [flags] size N...
//	nmrfft [flags] forward [-o out] [--format csv|json|msgpack] FILE...
//	nmrfft [flags] inverse [-o out.{txt,wav}] [-n N] SPECTRUM
//
// Settings come from nmrfft.yaml (or --config), then NMRFFT_* environment
// variables, then flags.
//
// Examples:
//
//	nmrfft --sample-rate 10e6 --padding 1e-3 size 3000
//	nmrfft --padding 1e-3 forward -o fid.csv fid.wav
//	nmrfft forward --format msgpack -o spectra/ run1.txt run2.txt
//	nmrfft inverse -o fid.txt fid.msgpack
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "nmrfft:", err)
		os.Exit(1)
	}
}
