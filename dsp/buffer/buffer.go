package buffer

// Complex is an interleaved (re, im) scratch buffer sized for an NFFT-point
// transform. The zero value is an empty buffer; call Reset before use.
type Complex struct {
	data []float64
	nfft int
}

// NewComplex returns a zero-filled buffer for nfft complex values.
func NewComplex(nfft int) *Complex {
	c := &Complex{}
	c.Reset(nfft)
	return c
}

// Reset resizes the buffer to 2*nfft+2 slots and zeroes all of them,
// reusing the backing array when its capacity allows.
func (c *Complex) Reset(nfft int) {
	if nfft < 0 {
		nfft = 0
	}
	n := 2*nfft + 2
	if n <= cap(c.data) {
		c.data = c.data[:n]
	} else {
		c.data = make([]float64, n)
	}
	clear(c.data)
	c.nfft = nfft
}

// NFFT returns the number of complex values the buffer holds.
func (c *Complex) NFFT() int {
	return c.nfft
}

// Len returns the length of the backing slice, 2*NFFT+2.
func (c *Complex) Len() int {
	return len(c.data)
}

// Cap returns the capacity of the backing slice.
func (c *Complex) Cap() int {
	return cap(c.data)
}

// Data returns the full backing slice including the reserved slots.
func (c *Complex) Data() []float64 {
	return c.data
}

// Active returns the 2*NFFT interleaved values between the reserved slots.
// The returned slice shares memory with the buffer.
func (c *Complex) Active() []float64 {
	if len(c.data) < 2 {
		return nil
	}
	return c.data[1 : len(c.data)-1]
}

// Set stores re + i*im at complex index k.
func (c *Complex) Set(k int, re, im float64) {
	c.data[2*k+1] = re
	c.data[2*k+2] = im
}

// At returns the complex value at index k.
func (c *Complex) At(k int) complex128 {
	return complex(c.data[2*k+1], c.data[2*k+2])
}

// Real returns the real part of the complex value at index k.
func (c *Complex) Real(k int) float64 {
	return c.data[2*k+1]
}
