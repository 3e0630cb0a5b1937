// Package config loads nmrfft settings from a YAML file, NMRFFT_*
// environment variables and built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-nmr/dsp/fourier"
	"github.com/cwbudde/algo-nmr/dsp/window"
	"github.com/cwbudde/algo-nmr/internal/waveio"
)

// DefaultPath is the config file looked up in the working directory when no
// path is given.
const DefaultPath = "nmrfft.yaml"

// Kernel names accepted in the kernel setting.
const (
	KernelRadix2  = "radix2"
	KernelPlanned = "planned"
)

// Config is the nmrfft configuration.
type Config struct {
	SampleFrequency   float64      `yaml:"sample_frequency"`   // Hz
	ZeroPaddingTime   float64      `yaml:"zero_padding_time"`  // seconds
	Kernel            string       `yaml:"kernel"`             // radix2 or planned
	MaxSize           int          `yaml:"max_size"`           // FFT size ceiling
	ParsevalThreshold float64      `yaml:"parseval_threshold"` // percent, 0 disables
	Workers           int          `yaml:"workers"`            // 0 uses GOMAXPROCS
	Apodization       Apodization  `yaml:"apodization"`
	Output            OutputConfig `yaml:"output"`
	Log               LogConfig    `yaml:"log"`
}

// Apodization selects the window applied to each waveform before the
// forward transform.
type Apodization struct {
	Window     string  `yaml:"window"`     // none, exponential, gaussian or hann
	Broadening float64 `yaml:"broadening"` // Hz, for exponential and gaussian
}

// OutputConfig controls how spectra are written.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LogConfig controls the slog handler built by [NewLogger].
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Kernel:      KernelRadix2,
		MaxSize:     fourier.DefaultMaxSize,
		Apodization: Apodization{Window: "none"},
		Output:      OutputConfig{Format: waveio.FormatCSV},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads the YAML file at path on top of [Default]. An empty path
// uses DefaultPath if it exists and the defaults otherwise. Environment
// overrides are applied after the file, then the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !finiteNonNegative(c.SampleFrequency) {
		return fmt.Errorf("sample_frequency must be finite and >= 0: %v", c.SampleFrequency)
	}
	if !finiteNonNegative(c.ZeroPaddingTime) {
		return fmt.Errorf("zero_padding_time must be finite and >= 0: %v", c.ZeroPaddingTime)
	}
	switch c.Kernel {
	case KernelRadix2, KernelPlanned:
	default:
		return fmt.Errorf("kernel must be %q or %q: %q", KernelRadix2, KernelPlanned, c.Kernel)
	}
	if c.MaxSize <= 0 {
		return fmt.Errorf("max_size must be > 0: %d", c.MaxSize)
	}
	if !finiteNonNegative(c.ParsevalThreshold) {
		return fmt.Errorf("parseval_threshold must be finite and >= 0: %v", c.ParsevalThreshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0: %d", c.Workers)
	}
	if _, err := window.ParseType(c.Apodization.Window); err != nil {
		return fmt.Errorf("apodization.window: %w", err)
	}
	if !finiteNonNegative(c.Apodization.Broadening) {
		return fmt.Errorf("apodization.broadening must be finite and >= 0: %v", c.Apodization.Broadening)
	}
	switch c.Output.Format {
	case waveio.FormatCSV, waveio.FormatJSON, waveio.FormatMsgpack:
	default:
		return fmt.Errorf("output.format must be csv, json or msgpack: %q", c.Output.Format)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json: %q", c.Log.Format)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// applyEnvOverrides applies NMRFFT_* variables. Unparseable values are an
// error rather than silently ignored.
func (c *Config) applyEnvOverrides() error {
	floats := []struct {
		env string
		dst *float64
	}{
		{"NMRFFT_SAMPLE_FREQUENCY", &c.SampleFrequency},
		{"NMRFFT_ZERO_PADDING_TIME", &c.ZeroPaddingTime},
		{"NMRFFT_PARSEVAL_THRESHOLD", &c.ParsevalThreshold},
		{"NMRFFT_BROADENING", &c.Apodization.Broadening},
	}
	for _, f := range floats {
		if val, ok := os.LookupEnv(f.env); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return fmt.Errorf("%s: %w", f.env, err)
			}
			*f.dst = v
		}
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"NMRFFT_MAX_SIZE", &c.MaxSize},
		{"NMRFFT_WORKERS", &c.Workers},
	}
	for _, i := range ints {
		if val, ok := os.LookupEnv(i.env); ok {
			v, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return fmt.Errorf("%s: %w", i.env, err)
			}
			*i.dst = v
		}
	}

	strs := []struct {
		env string
		dst *string
	}{
		{"NMRFFT_KERNEL", &c.Kernel},
		{"NMRFFT_WINDOW", &c.Apodization.Window},
		{"NMRFFT_OUTPUT_FORMAT", &c.Output.Format},
		{"NMRFFT_LOG_LEVEL", &c.Log.Level},
		{"NMRFFT_LOG_FORMAT", &c.Log.Format},
	}
	for _, s := range strs {
		if val, ok := os.LookupEnv(s.env); ok {
			*s.dst = strings.ToLower(strings.TrimSpace(val))
		}
	}
	return nil
}

// TransformOptions converts the transform settings into fourier options.
func (c *Config) TransformOptions() []fourier.Option {
	opts := []fourier.Option{
		fourier.WithSampleFrequency(c.SampleFrequency),
		fourier.WithZeroPaddingTime(c.ZeroPaddingTime),
		fourier.WithMaxSize(c.MaxSize),
		fourier.WithParsevalCheck(c.ParsevalThreshold),
	}
	if c.Kernel == KernelPlanned {
		opts = append(opts, fourier.WithPlannedKernel())
	}
	return opts
}

// Window returns the configured apodization window and its options.
func (c *Config) Window() (window.Type, []window.Option, error) {
	t, err := window.ParseType(c.Apodization.Window)
	if err != nil {
		return window.TypeNone, nil, err
	}
	return t, []window.Option{
		window.WithSampleRate(c.SampleFrequency),
		window.WithBroadening(c.Apodization.Broadening),
	}, nil
}
