package waveio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-nmr/internal/testutil"
)

func TestReadText(t *testing.T) {
	in := "# fid capture\n1\n-2.5\n\n3e2, 4\t5\n"
	got, err := ReadText(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, -2.5, 300, 4, 5}, 0)
}

func TestReadTextError(t *testing.T) {
	_, err := ReadText(strings.NewReader("1\n2\nx\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line 3 error, got %v", err)
	}
}

func TestWriteTextRoundTrip(t *testing.T) {
	samples := testutil.DeterministicNoise(3, 100, 50)
	var buf bytes.Buffer
	if err := WriteText(&buf, samples); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	got, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, samples, 0)
}

func TestWAVRoundTrip(t *testing.T) {
	samples := []float64{0, 1, -1, 1000.4, -32768, 32767, 40000, -40000}
	path := filepath.Join(t.TempDir(), "fid.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := WriteWAV(f, samples, 48000); err != nil {
		t.Fatalf("WriteWAV error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	wf, err := ReadWaveform(path)
	if err != nil {
		t.Fatalf("ReadWaveform error: %v", err)
	}
	if wf.SampleRate != 48000 {
		t.Fatalf("SampleRate = %v, want 48000", wf.SampleRate)
	}
	want := []float64{0, 1, -1, 1000, -32768, 32767, 32767, -32768}
	testutil.RequireSliceNearlyEqual(t, wf.Samples, want, 0)
}

func TestWriteWAVRejectsBadRate(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := WriteWAV(f, []float64{1}, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestReadWAVInvalid(t *testing.T) {
	if _, err := ReadWAV(bytes.NewReader([]byte("not a wav file at all"))); err == nil {
		t.Fatal("expected error for invalid wav data")
	}
}

func TestReadWaveformText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fid.txt")
	if err := os.WriteFile(path, []byte("1\n2\n3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wf, err := ReadWaveform(path)
	if err != nil {
		t.Fatalf("ReadWaveform error: %v", err)
	}
	if wf.SampleRate != 0 || len(wf.Samples) != 3 {
		t.Fatalf("unexpected waveform: %+v", wf)
	}

	if _, err := ReadWaveform(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
