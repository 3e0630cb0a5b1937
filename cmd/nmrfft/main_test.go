package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-nmr/internal/testutil"
	"github.com/cwbudde/algo-nmr/internal/waveio"
)

// run executes nmrfft with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSamples(t *testing.T, dir, name string, samples []float64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var buf bytes.Buffer
	if err := waveio.WriteText(&buf, samples); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readSpectrum(t *testing.T, path string) *waveio.SpectrumFile {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	sf, err := waveio.ReadSpectrum(f, waveio.FormatFromPath(path, waveio.FormatJSON))
	if err != nil {
		t.Fatalf("ReadSpectrum(%s) error: %v", path, err)
	}
	return sf
}

func TestSizeCommand(t *testing.T) {
	out, _, err := run(t, "--sample-rate", "1000", "--padding", "0.01", "size", "20", "100")
	if err != nil {
		t.Fatalf("size error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if f := strings.Fields(lines[1]); len(f) != 4 || f[0] != "20" || f[1] != "10" || f[2] != "32" || f[3] != "31.25" {
		t.Fatalf("unexpected row for 20 samples: %q", lines[1])
	}
	if f := strings.Fields(lines[2]); f[2] != "128" {
		t.Fatalf("unexpected row for 100 samples: %q", lines[2])
	}
}

func TestSizeCommandErrors(t *testing.T) {
	if _, _, err := run(t, "size", "abc"); err == nil {
		t.Fatal("expected error for non-numeric count")
	}
	if _, _, err := run(t, "size", "0"); err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Fatalf("expected invalid configuration for empty input, got %v", err)
	}
	if _, _, err := run(t, "--kernel", "fftw", "size", "8"); err == nil {
		t.Fatal("expected error for unknown kernel")
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	dir := t.TempDir()
	samples := testutil.FreeInductionDecay(120, 1000, 1, 0.05, 100)
	in := writeSamples(t, dir, "fid.txt", samples)
	spec := filepath.Join(dir, "fid.json")
	back := filepath.Join(dir, "back.txt")

	_, stderr, err := run(t, "--sample-rate", "1000", "--padding", "0.05", "--kernel", "planned",
		"forward", "-o", spec, in)
	if err != nil {
		t.Fatalf("forward error: %v\n%s", err, stderr)
	}
	if !strings.Contains(stderr, "spectrum written") || !strings.Contains(stderr, "peak_hz") {
		t.Fatalf("missing summary log:\n%s", stderr)
	}

	sf := readSpectrum(t, spec)
	if sf.NFFT != 256 || sf.Samples != 100 || sf.SampleFrequency != 1000 || sf.ZeroPaddingTime != 0.05 {
		t.Fatalf("unexpected spectrum header: %+v", sf)
	}

	if _, stderr, err := run(t, "inverse", "-o", back, spec); err != nil {
		t.Fatalf("inverse error: %v\n%s", err, stderr)
	}
	data, err := os.ReadFile(back)
	if err != nil {
		t.Fatalf("read %s: %v", back, err)
	}
	got, err := waveio.ReadText(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, samples, 1e-9)
}

func TestForwardToStdoutCSV(t *testing.T) {
	in := writeSamples(t, t.TempDir(), "dc.txt", testutil.DC(1, 8))
	out, _, err := run(t, "forward", in)
	if err != nil {
		t.Fatalf("forward error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 || lines[0] != "bin,frequency,re,im,magnitude,phase" {
		t.Fatalf("unexpected csv output:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "0,0,1,0,1,") {
		t.Fatalf("unexpected DC row: %q", lines[1])
	}
}

func TestForwardSeveralInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeSamples(t, dir, "a.txt", testutil.DeterministicNoise(1, 1, 30))
	b := writeSamples(t, dir, "b.txt", testutil.DeterministicNoise(2, 1, 70))
	outDir := filepath.Join(dir, "spectra")

	if _, stderr, err := run(t, "forward", "--format", "msgpack", "-o", outDir, a, b); err != nil {
		t.Fatalf("forward error: %v\n%s", err, stderr)
	}
	if sf := readSpectrum(t, filepath.Join(outDir, "a.spectrum.msgpack")); sf.NFFT != 32 {
		t.Fatalf("a nfft = %d, want 32", sf.NFFT)
	}
	if sf := readSpectrum(t, filepath.Join(outDir, "b.spectrum.msgpack")); sf.NFFT != 128 {
		t.Fatalf("b nfft = %d, want 128", sf.NFFT)
	}
}

func TestForwardReportsFailedWaveforms(t *testing.T) {
	dir := t.TempDir()
	good := writeSamples(t, dir, "good.txt", testutil.DC(1, 4))
	empty := writeSamples(t, dir, "empty.txt", nil)

	_, stderr, err := run(t, "forward", good, empty)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 waveforms failed") {
		t.Fatalf("expected partial failure, got %v", err)
	}
	if !strings.Contains(stderr, "transform failed") {
		t.Fatalf("missing failure log:\n%s", stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "good.spectrum.csv")); err != nil {
		t.Fatalf("good waveform not written: %v", err)
	}
}

func TestForwardUsesWAVSampleRate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fid.wav")
	f, err := os.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	samples := testutil.DeterministicSine(1000, 8000, 10000, 64)
	if err := waveio.WriteWAV(f, samples, 8000); err != nil {
		t.Fatalf("WriteWAV error: %v", err)
	}
	f.Close()

	spec := filepath.Join(dir, "fid.json")
	if _, stderr, err := run(t, "forward", "-o", spec, in); err != nil {
		t.Fatalf("forward error: %v\n%s", err, stderr)
	}
	if sf := readSpectrum(t, spec); sf.SampleFrequency != 8000 || sf.NFFT != 64 {
		t.Fatalf("unexpected spectrum header: %+v", sf)
	}
}

func TestInverseRejectsWrongSampleCount(t *testing.T) {
	dir := t.TempDir()
	in := writeSamples(t, dir, "x.txt", testutil.DeterministicNoise(5, 1, 20))
	spec := filepath.Join(dir, "x.msgpack")
	if _, _, err := run(t, "forward", "-o", spec, in); err != nil {
		t.Fatalf("forward error: %v", err)
	}

	_, _, err := run(t, "inverse", "-n", "40", spec)
	if err == nil || !strings.Contains(err.Error(), "shape mismatch") {
		t.Fatalf("expected shape mismatch, got %v", err)
	}

	out, _, err := run(t, "inverse", "-n", "17", spec)
	if err != nil {
		t.Fatalf("inverse -n 17 error: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 17 {
		t.Fatalf("got %d samples, want 17", len(lines))
	}
}

func TestInverseToWAV(t *testing.T) {
	dir := t.TempDir()
	samples := testutil.DeterministicSine(500, 8000, 1000, 40)
	in := writeSamples(t, dir, "s.txt", samples)
	spec := filepath.Join(dir, "s.json")
	wav := filepath.Join(dir, "s.wav")

	if _, _, err := run(t, "--sample-rate", "8000", "forward", "-o", spec, in); err != nil {
		t.Fatalf("forward error: %v", err)
	}
	if _, _, err := run(t, "inverse", "-o", wav, spec); err != nil {
		t.Fatalf("inverse error: %v", err)
	}
	wf, err := waveio.ReadWaveform(wav)
	if err != nil {
		t.Fatalf("ReadWaveform error: %v", err)
	}
	if wf.SampleRate != 8000 || len(wf.Samples) != len(samples) {
		t.Fatalf("unexpected waveform: rate=%v len=%d", wf.SampleRate, len(wf.Samples))
	}
	testutil.RequireSliceNearlyEqual(t, wf.Samples, roundAll(samples), 0)
}

func roundAll(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = math.Round(v)
	}
	return out
}

func TestResolveSampleFrequency(t *testing.T) {
	paths := []string{"a.wav", "b.txt", "c.wav"}
	if fs, err := resolveSampleFrequency(500, paths, []float64{8000, 0, 8000}); err != nil || fs != 500 {
		t.Fatalf("configured rate = %v, %v", fs, err)
	}
	if fs, err := resolveSampleFrequency(0, paths, []float64{8000, 0, 8000}); err != nil || fs != 8000 {
		t.Fatalf("wav rate = %v, %v", fs, err)
	}
	if _, err := resolveSampleFrequency(0, paths, []float64{8000, 0, 44100}); err == nil {
		t.Fatal("expected error for mixed rates")
	}
}

func TestForwardApodization(t *testing.T) {
	dir := t.TempDir()
	samples := testutil.FreeInductionDecay(120, 1000, 1, 0.05, 100)
	in := writeSamples(t, dir, "fid.txt", samples)
	plain := filepath.Join(dir, "plain.json")
	broad := filepath.Join(dir, "broad.json")

	if _, _, err := run(t, "--sample-rate", "1000", "forward", "-o", plain, in); err != nil {
		t.Fatalf("forward error: %v", err)
	}
	_, stderr, err := run(t, "--sample-rate", "1000", "--log-level", "debug",
		"forward", "--window", "exponential", "--broadening", "5", "-o", broad, in)
	if err != nil {
		t.Fatalf("forward error: %v\n%s", err, stderr)
	}
	if !strings.Contains(stderr, "apodization applied") || !strings.Contains(stderr, "window=exponential") {
		t.Fatalf("missing apodization log:\n%s", stderr)
	}
	if !strings.Contains(stderr, "fwhm_hz") {
		t.Fatalf("missing line measurement:\n%s", stderr)
	}

	// The DC bin holds the mean, which the decaying window lowers.
	p, b := readSpectrum(t, plain), readSpectrum(t, broad)
	if real(b.Data.Bin(0)) == real(p.Data.Bin(0)) {
		t.Fatal("window did not change the spectrum")
	}

	if _, _, err := run(t, "forward", "--window", "gaussian", "--broadening", "5", in); err == nil {
		t.Fatal("expected error for gaussian window without a sample rate")
	}
	if _, _, err := run(t, "forward", "--window", "kaiser", in); err == nil {
		t.Fatal("expected error for unknown window")
	}
}
