// Package waveio reads NMR waveforms and reads and writes spectrum files for
// the nmrfft command.
//
// Waveforms come from plain text (one sample per line) or PCM WAV files.
// Spectra are written as CSV tables for inspection, or as JSON or msgpack
// documents that can be read back for an inverse transform.
package waveio
