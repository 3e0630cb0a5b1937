package fourier

import (
	"fmt"
	"math"
)

// Sign selects the direction of the kernel's exponent.
type Sign int

const (
	// SignForward computes X[k] = sum_j x[j] * exp(+2*pi*i*j*k/N).
	SignForward Sign = 1
	// SignInverse computes x[j] = sum_k X[k] * exp(-2*pi*i*j*k/N), unnormalized.
	SignInverse Sign = -1
)

// String returns "forward" or "inverse".
func (s Sign) String() string {
	switch s {
	case SignForward:
		return "forward"
	case SignInverse:
		return "inverse"
	default:
		return fmt.Sprintf("Sign(%d)", int(s))
	}
}

// Kernel computes an in-place complex FFT over an interleaved (re, im)
// buffer of 2*N values, N a power of two. Implementations are not required
// to be safe for concurrent use.
type Kernel interface {
	Apply(data []float64, sign Sign) error
}

// Radix2 is the in-place radix-2 Cooley-Tukey kernel implemented by [FFT].
type Radix2 struct{}

// Apply validates the buffer shape and runs [FFT].
func (Radix2) Apply(data []float64, sign Sign) error {
	if err := checkKernelArgs(data, sign); err != nil {
		return err
	}
	FFT(data, sign)
	return nil
}

func checkKernelArgs(data []float64, sign Sign) error {
	if sign != SignForward && sign != SignInverse {
		return fmt.Errorf("%w: invalid sign %d", ErrKernel, int(sign))
	}
	if len(data)%2 != 0 || !IsPowerOfTwo(len(data)/2) {
		return fmt.Errorf("%w: kernel buffer length %d is not 2*2^k", ErrShapeMismatch, len(data))
	}
	return nil
}

// FFT transforms data in place. data holds len(data)/2 complex values as
// interleaved (re, im) pairs; that count must be a power of two. The
// transform is unnormalized in both directions, so FFT(+1) followed by
// FFT(-1) scales the input by len(data)/2.
//
// FFT panics if the length is not 2*2^k or sign is not ±1.
func FFT(data []float64, sign Sign) {
	if err := checkKernelArgs(data, sign); err != nil {
		panic(err)
	}
	bitReverse(data)
	butterflies(data, sign)
}

// bitReverse reorders the complex pairs of data into bit-reversed index
// order. i walks the pairs in natural order while j tracks the bit-reversed
// position, both in units of float64 slots.
func bitReverse(data []float64) {
	n := len(data)
	j := 0
	for i := 0; i < n; i += 2 {
		if j > i {
			data[i], data[j] = data[j], data[i]
			data[i+1], data[j+1] = data[j+1], data[i+1]
		}
		m := n >> 1
		for m >= 2 && j >= m {
			j -= m
			m >>= 1
		}
		j += m
	}
}

// butterflies runs the Danielson-Lanczos stages on bit-reversed data.
// mmax is the current half-span in float64 slots (2, 4, 8, ...). The twiddle
// factor w advances by exp(i*theta) through the half-angle recurrence
// instead of evaluating sin/cos per step.
func butterflies(data []float64, sign Sign) {
	n := len(data)
	for mmax := 2; n > mmax; mmax <<= 1 {
		istep := mmax << 1
		theta := 2 * math.Pi / float64(int(sign)*mmax)
		wtemp := math.Sin(0.5 * theta)
		wpr := -2 * wtemp * wtemp
		wpi := math.Sin(theta)
		wr, wi := 1.0, 0.0
		for m := 0; m < mmax; m += 2 {
			for i := m; i < n; i += istep {
				j := i + mmax
				tempr := wr*data[j] - wi*data[j+1]
				tempi := wr*data[j+1] + wi*data[j]
				data[j] = data[i] - tempr
				data[j+1] = data[i+1] - tempi
				data[i] += tempr
				data[i+1] += tempi
			}
			wtemp = wr
			wr = wr*wpr - wi*wpi + wr
			wi = wi*wpr + wtemp*wpi + wi
		}
	}
}
