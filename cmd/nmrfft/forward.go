package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nmr/dsp/fourier"
	"github.com/cwbudde/algo-nmr/dsp/spectrum"
	"github.com/cwbudde/algo-nmr/dsp/window"
	"github.com/cwbudde/algo-nmr/internal/waveio"
	"github.com/cwbudde/algo-nmr/stats/frequency"
)

func newForwardCmd(a *app) *cobra.Command {
	var output, format, win string
	var broadening float64
	cmd := &cobra.Command{
		Use:   "forward FILE...",
		Short: "Transform waveforms (.txt or .wav) into spectra",
		Long: `forward reads each waveform, zero-pads it and writes its spectrum.

With one input the spectrum goes to --output, or stdout. With several
inputs --output names a directory (default: next to each input) and each
spectrum is written as <name>.spectrum.<format>. A WAV file's sample rate
is used when no sample rate is configured.

--window multiplies each waveform by an apodization window before the
transform; the stored spectrum is that of the windowed waveform.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = waveio.FormatFromPath(output, a.cfg.Output.Format)
			}
			switch format {
			case waveio.FormatCSV, waveio.FormatJSON, waveio.FormatMsgpack:
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if cmd.Flags().Changed("window") {
				a.cfg.Apodization.Window = win
			}
			if cmd.Flags().Changed("broadening") {
				a.cfg.Apodization.Broadening = broadening
			}
			wt, wopts, err := a.cfg.Window()
			if err != nil {
				return err
			}

			waves := make([][]float64, len(args))
			rates := make([]float64, len(args))
			for i, path := range args {
				wf, err := waveio.ReadWaveform(path)
				if err != nil {
					return err
				}
				waves[i] = wf.Samples
				rates[i] = wf.SampleRate
			}
			fs, err := resolveSampleFrequency(a.cfg.SampleFrequency, args, rates)
			if err != nil {
				return err
			}
			wopts = append(wopts, window.WithSampleRate(fs))
			for i := range waves {
				if err := window.Apply(wt, waves[i], wopts...); err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
			}
			if wt != window.TypeNone {
				a.logger.Debug("apodization applied", "window", wt, "broadening_hz", a.cfg.Apodization.Broadening)
			}

			opts := append(a.cfg.TransformOptions(),
				fourier.WithSampleFrequency(fs),
				fourier.WithLogger(a.logger),
			)
			results := fourier.NewBatch(a.cfg.Workers, opts...).Run(cmd.Context(), waves)

			failed := 0
			for i, res := range results {
				if res.Err != nil {
					a.logger.Error("transform failed", "input", args[i], "error", res.Err)
					failed++
					continue
				}
				f := &waveio.SpectrumFile{
					Samples:         len(waves[i]),
					NFFT:            res.NFFT,
					SampleFrequency: fs,
					ZeroPaddingTime: a.cfg.ZeroPaddingTime,
					Data:            res.Spectrum,
				}
				dest, err := spectrumPath(args[i], output, format, len(args))
				if err != nil {
					return err
				}
				if err := writeTo(cmd.OutOrStdout(), dest, func(w io.Writer) error {
					return waveio.WriteSpectrum(w, format, f)
				}); err != nil {
					return err
				}
				a.logSpectrum(args[i], dest, f)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d waveforms failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or directory for several inputs")
	cmd.Flags().StringVar(&format, "format", "", "spectrum format: csv, json or msgpack (default from output extension or config)")
	cmd.Flags().StringVar(&win, "window", "", "apodization window: none, exponential, gaussian or hann")
	cmd.Flags().Float64Var(&broadening, "broadening", 0, "line broadening in Hz for exponential and gaussian windows")
	return cmd
}

// resolveSampleFrequency returns the configured frequency, or the common
// sample rate of the WAV inputs when none is configured.
func resolveSampleFrequency(configured float64, paths []string, rates []float64) (float64, error) {
	if configured > 0 {
		return configured, nil
	}
	fs := 0.0
	for i, r := range rates {
		if r <= 0 {
			continue
		}
		if fs > 0 && r != fs {
			return 0, fmt.Errorf("%s: sample rate %v differs from %v; set --sample-rate", paths[i], r, fs)
		}
		fs = r
	}
	return fs, nil
}

// spectrumPath returns where the spectrum for input goes. An empty result
// means stdout.
func spectrumPath(input, output, format string, inputs int) (string, error) {
	if inputs == 1 {
		return output, nil
	}
	dir := output
	if dir == "" {
		dir = filepath.Dir(input)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+".spectrum."+format), nil
}

// writeTo runs write against path, or against stdout when path is empty.
func writeTo(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func (a *app) logSpectrum(input, output string, f *waveio.SpectrumFile) {
	if output == "" {
		output = "stdout"
	}
	attrs := []any{"input", input, "output", output, "samples", f.Samples, "nfft", f.NFFT}
	if f.SampleFrequency > 0 {
		if peak, err := spectrum.PeakFrequency(f.Data, f.SampleFrequency); err == nil {
			attrs = append(attrs, "peak_hz", peak)
		}
		line, err := frequency.Analyze(frequency.OneSided(spectrum.Magnitude(f.Data)), f.SampleFrequency)
		if err == nil {
			attrs = append(attrs, "fwhm_hz", line.FWHM, "t2star_s", line.T2Star, "snr_db", line.SNR_dB)
		} else {
			a.logger.Debug("line not measured", "input", input, "error", err)
		}
	}
	a.logger.Info("spectrum written", attrs...)
}
