package waveio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Waveform is a decoded time series. SampleRate is zero when the source does
// not carry one.
type Waveform struct {
	Samples    []float64
	SampleRate float64
}

// ReadWaveform reads a .wav file with ReadWAV and anything else with
// ReadText.
func ReadWaveform(path string) (Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Waveform{}, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return ReadWAV(f)
	}
	samples, err := ReadText(f)
	if err != nil {
		return Waveform{}, fmt.Errorf("%s: %w", path, err)
	}
	return Waveform{Samples: samples}, nil
}

// ReadText parses whitespace or comma separated numbers. Blank lines and
// lines starting with '#' are skipped.
func ReadText(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteText writes one sample per line.
func WriteText(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range samples {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadWAV decodes a PCM WAV stream. Samples keep their integer ADC values;
// only the first channel of a multi-channel file is returned.
func ReadWAV(r io.ReadSeeker) (Waveform, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return Waveform{}, fmt.Errorf("invalid wav file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return Waveform{}, fmt.Errorf("decode wav: %w", err)
	}

	chans := int(d.NumChans)
	if chans < 1 {
		chans = 1
	}
	out := make([]float64, len(buf.Data)/chans)
	for i := range out {
		out[i] = float64(buf.Data[i*chans])
	}
	return Waveform{Samples: out, SampleRate: float64(d.SampleRate)}, nil
}

// WriteWAV encodes samples as mono 16-bit PCM. Values are rounded and
// clamped to the int16 range.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav sample rate must be > 0: %d", sampleRate)
	}
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, v := range samples {
		buf.Data[i] = int(math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(v))))
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return enc.Close()
}
