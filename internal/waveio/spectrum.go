package waveio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cwbudde/algo-nmr/dsp/fourier"
	"github.com/cwbudde/algo-nmr/dsp/spectrum"
)

// Spectrum file formats.
const (
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// SpectrumFile is a forward transform result together with the settings
// needed to invert it.
type SpectrumFile struct {
	Samples         int              `json:"samples" msgpack:"samples"`
	NFFT            int              `json:"nfft" msgpack:"nfft"`
	SampleFrequency float64          `json:"sample_frequency" msgpack:"sample_frequency"`
	ZeroPaddingTime float64          `json:"zero_padding_time" msgpack:"zero_padding_time"`
	Data            fourier.Spectrum `json:"data" msgpack:"data"`
}

// Check reports whether Data has the length implied by NFFT.
func (f *SpectrumFile) Check() error {
	if f.NFFT <= 0 || !fourier.IsPowerOfTwo(f.NFFT) {
		return fmt.Errorf("spectrum nfft must be a power of two: %d", f.NFFT)
	}
	if len(f.Data) != fourier.SpectrumLen(f.NFFT) {
		return fmt.Errorf("spectrum data length %d, want %d for nfft %d", len(f.Data), fourier.SpectrumLen(f.NFFT), f.NFFT)
	}
	if f.Samples < 0 {
		return fmt.Errorf("spectrum sample count must be >= 0: %d", f.Samples)
	}
	return nil
}

// FormatFromPath guesses a format from the file extension, falling back to
// def.
func FormatFromPath(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".msgpack", ".mp":
		return FormatMsgpack
	}
	return def
}

// WriteSpectrum encodes f in the given format.
func WriteSpectrum(w io.Writer, format string, f *SpectrumFile) error {
	if err := f.Check(); err != nil {
		return err
	}
	switch format {
	case FormatCSV:
		return writeCSV(w, f)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(f)
	}
	return fmt.Errorf("unknown spectrum format %q", format)
}

// ReadSpectrum decodes a JSON or msgpack spectrum file. CSV is write-only.
func ReadSpectrum(r io.Reader, format string) (*SpectrumFile, error) {
	var f SpectrumFile
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&f)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&f)
	default:
		return nil, fmt.Errorf("cannot read spectrum format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s spectrum: %w", format, err)
	}
	if err := f.Check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// writeCSV writes one row per bin. Without a sample frequency the frequency
// column is in cycles per sample.
func writeCSV(w io.Writer, f *SpectrumFile) error {
	fs := f.SampleFrequency
	if fs <= 0 {
		fs = 1
	}
	freqs, err := spectrum.Frequencies(f.NFFT, fs, f.NFFT)
	if err != nil {
		return err
	}
	mag := spectrum.Magnitude(f.Data)
	phase := spectrum.Phase(f.Data)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"bin", "frequency", "re", "im", "magnitude", "phase"}); err != nil {
		return err
	}
	row := make([]string, 6)
	for k := range f.NFFT {
		c := f.Data.Bin(k)
		row[0] = strconv.Itoa(k)
		row[1] = formatFloat(freqs[k])
		row[2] = formatFloat(real(c))
		row[3] = formatFloat(imag(c))
		row[4] = formatFloat(mag[k])
		row[5] = formatFloat(phase[k])
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
