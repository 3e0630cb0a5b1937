package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nmr/internal/config"
)

// app holds the global flags and the configuration resolved from them.
type app struct {
	cfgFile    string
	sampleRate float64
	padding    float64
	kernel     string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "nmrfft",
		Short: "Zero-padded FFT of NMR waveforms",
		Long: `nmrfft transforms NMR magnetometer waveforms into zero-padded spectra
and spectra back into waveforms.

The FFT size for N samples is the next power of two above
N + floor(sample_rate * padding). Forward spectra are scaled by 1/NFFT, so
an inverse of a forward spectrum returns the original samples.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.DefaultPath+" if present)")
	pf.Float64Var(&a.sampleRate, "sample-rate", 0, "sample frequency in Hz")
	pf.Float64Var(&a.padding, "padding", 0, "zero-padding time in seconds")
	pf.StringVar(&a.kernel, "kernel", "", "FFT kernel: radix2 or planned")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newSizeCmd(a), newForwardCmd(a), newInverseCmd(a))
	return cmd
}

// load resolves the configuration. Flags set on the command line override
// the file and environment.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sample-rate") {
		cfg.SampleFrequency = a.sampleRate
	}
	if flags.Changed("padding") {
		cfg.ZeroPaddingTime = a.padding
	}
	if flags.Changed("kernel") {
		cfg.Kernel = strings.ToLower(a.kernel)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}
