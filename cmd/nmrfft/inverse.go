package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nmr/dsp/fourier"
	"github.com/cwbudde/algo-nmr/internal/waveio"
)

func newInverseCmd(a *app) *cobra.Command {
	var output string
	var samples int
	cmd := &cobra.Command{
		Use:   "inverse SPECTRUM",
		Short: "Transform a JSON or msgpack spectrum back into samples",
		Long: `inverse reads a spectrum written by forward and recovers the waveform.

The sample count, sample rate and padding stored in the file are used unless
overridden by -n, --sample-rate or --padding. A spectrum whose length does
not match those settings is rejected. Output ending in .wav is written as
16-bit PCM; anything else as text, one sample per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := readSpectrumFile(args[0])
			if err != nil {
				return err
			}

			n := sf.Samples
			if cmd.Flags().Changed("samples") {
				n = samples
			}
			fs, tpad := sf.SampleFrequency, sf.ZeroPaddingTime
			if cmd.Flags().Changed("sample-rate") {
				fs = a.cfg.SampleFrequency
			}
			if cmd.Flags().Changed("padding") {
				tpad = a.cfg.ZeroPaddingTime
			}

			opts := append(a.cfg.TransformOptions(),
				fourier.WithSampleFrequency(fs),
				fourier.WithZeroPaddingTime(tpad),
				fourier.WithLogger(a.logger),
			)
			out, err := fourier.New(opts...).Inverse(n, sf.Data)
			if err != nil {
				return err
			}

			if strings.EqualFold(filepath.Ext(output), ".wav") {
				rate := int(math.Round(fs))
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := waveio.WriteWAV(f, out, rate); err != nil {
					f.Close()
					return fmt.Errorf("%s: %w", output, err)
				}
				return f.Close()
			}
			return writeTo(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return waveio.WriteText(w, out)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.txt or .wav, default: stdout)")
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of samples to recover")
	return cmd
}

func readSpectrumFile(path string) (*waveio.SpectrumFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sf, err := waveio.ReadSpectrum(f, waveio.FormatFromPath(path, waveio.FormatJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}
