package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// PlannedKernel computes the same transform as [Radix2] using algo-fft
// plans, cached per size. It is not safe for concurrent use.
//
// algo-fft's forward plan uses the exp(-i) convention and its inverse plan
// applies 1/N, so SignForward maps to N*Inverse and SignInverse to Forward.
type PlannedKernel struct {
	plans map[int]*algofft.Plan[complex128]
	in    []complex128
	out   []complex128
}

// NewPlannedKernel returns an empty kernel; plans are created on first use.
func NewPlannedKernel() *PlannedKernel {
	return &PlannedKernel{plans: make(map[int]*algofft.Plan[complex128])}
}

// Apply transforms data in place.
func (k *PlannedKernel) Apply(data []float64, sign Sign) error {
	if err := checkKernelArgs(data, sign); err != nil {
		return err
	}

	n := len(data) / 2
	if n == 1 {
		return nil
	}

	plan, err := k.plan(n)
	if err != nil {
		return err
	}

	k.in = resizeComplex(k.in, n)
	k.out = resizeComplex(k.out, n)
	for i := range k.in {
		k.in[i] = complex(data[2*i], data[2*i+1])
	}

	scale := 1.0
	if sign == SignForward {
		err = plan.Inverse(k.out, k.in)
		scale = float64(n)
	} else {
		err = plan.Forward(k.out, k.in)
	}
	if err != nil {
		return fmt.Errorf("%w: %s fft of size %d: %w", ErrKernel, sign, n, err)
	}

	for i, v := range k.out {
		data[2*i] = real(v) * scale
		data[2*i+1] = imag(v) * scale
	}
	return nil
}

func (k *PlannedKernel) plan(n int) (*algofft.Plan[complex128], error) {
	if k.plans == nil {
		k.plans = make(map[int]*algofft.Plan[complex128])
	}
	if p, ok := k.plans[n]; ok {
		return p, nil
	}
	p, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: create plan of size %d: %w", ErrKernel, n, err)
	}
	k.plans[n] = p
	return p, nil
}

func resizeComplex(buf []complex128, n int) []complex128 {
	if cap(buf) < n {
		return make([]complex128, n)
	}
	return buf[:n]
}
