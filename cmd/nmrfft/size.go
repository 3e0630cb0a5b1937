package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nmr/dsp/fourier"
)

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size N...",
		Short: "Print the FFT size for N samples",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr := fourier.New(a.cfg.TransformOptions()...)
			pad, err := tr.PaddingSamples()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "samples\tpadding\tnfft\tresolution_hz\t")
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("sample count %q: %w", arg, err)
				}
				nfft, err := tr.FFTSize(n)
				if err != nil {
					return err
				}
				res := "-"
				if fs := tr.SampleFrequency(); fs > 0 {
					res = strconv.FormatFloat(fs/float64(nfft), 'g', 6, 64)
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t\n", n, pad, nfft, res)
			}
			return tw.Flush()
		},
	}
}
