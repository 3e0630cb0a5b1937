// Package buffer provides the interleaved complex scratch buffer used by the
// spectral transform, plus a pool for reusing those buffers across
// goroutines.
//
// A [Complex] buffer stores NFFT complex values as (re, im) pairs and keeps
// one reserved slot on either side of the active window, so its backing slice
// always has length 2*NFFT+2. Slot 0 and slot 2*NFFT+1 are never written by
// the transform.
package buffer
