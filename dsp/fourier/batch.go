package fourier

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Result is the outcome of one waveform in a [Batch] run.
type Result struct {
	Index    int
	NFFT     int
	Spectrum Spectrum
	Err      error
}

// Batch runs forward transforms over many waveforms on a fixed number of
// workers, each owning its own Transform. A failing waveform records its
// error in its Result and the remaining waveforms are still processed.
type Batch struct {
	workers int
	opts    []Option
}

// NewBatch returns a Batch with the given worker count; workers <= 0 uses
// GOMAXPROCS. opts configure every worker's Transform.
func NewBatch(workers int, opts ...Option) *Batch {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Batch{workers: workers, opts: opts}
}

// Workers returns the worker count.
func (b *Batch) Workers() int { return b.workers }

// Run transforms every waveform and returns one Result per input, in input
// order. Waveforms not started before ctx is cancelled get ctx.Err().
func (b *Batch) Run(ctx context.Context, waveforms [][]float64) []Result {
	results := make([]Result, len(waveforms))
	if len(waveforms) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(b.workers, len(waveforms)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t := New(b.opts...)
			for idx := range jobs {
				results[idx] = runOne(ctx, t, idx, waveforms[idx])
			}
		}()
	}

feed:
	for i := range waveforms {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(waveforms); j++ {
				results[j] = Result{Index: j, Err: ctx.Err()}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

func runOne(ctx context.Context, t *Transform, idx int, samples []float64) (res Result) {
	res.Index = idx
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Index: idx, Err: fmt.Errorf("%w: waveform %d: recovered panic: %v", ErrKernel, idx, r)}
			t.logger.Error("transform panicked", "waveform", idx, "panic", r)
		}
	}()

	nfft, spec, err := t.Forward(samples)
	if err != nil {
		t.logger.Warn("skipping waveform", "waveform", idx, "error", err)
		res.Err = err
		return res
	}
	res.NFFT = nfft
	res.Spectrum = spec
	return res
}
