package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse so repeated scans do not
// allocate fresh scratch space each call.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a zeroed, aligned Buffer of the requested length.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	b.Zero()
	if !b.Aligned() {
		b.data = alignedMake[T](length)
	}
	return b
}

// Put returns a Buffer to the pool. The caller must not use it afterwards.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
