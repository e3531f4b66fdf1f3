package buffer

import "sync"

// Pool recycles plane-sized buffers between filter calls.
type Pool struct {
	p sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// Get returns an aligned buffer of n zeroed samples. Return it with Put.
func (p *Pool) Get(n int) *Buffer {
	b, _ := p.p.Get().(*Buffer)
	if b == nil || !b.IsAligned() {
		b = &Buffer{}
	}
	b.reset(n)
	return b
}

// Put hands b back to the pool. b must not be used afterwards.
func (p *Pool) Put(b *Buffer) {
	if b != nil {
		p.p.Put(b)
	}
}
