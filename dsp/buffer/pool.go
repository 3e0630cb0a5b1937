package buffer

import "sync"

// Pool provides sync.Pool-based reuse of Complex buffers. It is safe for
// concurrent use; each buffer it hands out is owned by one caller until Put.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Complex{}
			},
		},
	}
}

// Get returns a zeroed buffer sized for nfft complex values.
// Callers must return it via Put when done.
func (p *Pool) Get(nfft int) *Complex {
	c := p.pool.Get().(*Complex)
	c.Reset(nfft)
	return c
}

// Put returns a buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(c *Complex) {
	if c == nil {
		return
	}
	p.pool.Put(c)
}
