package buffer

// Buffer wraps an aligned slice with reuse-friendly semantics.
// Scan functions accept raw slices; use Data() to bridge.
type Buffer[T any] struct {
	data []T
}

// New returns a zero-filled, aligned Buffer of the given length.
func New[T any](length int) *Buffer[T] {
	return &Buffer[T]{data: alignedMake[T](length)}
}

// FromSlice wraps an existing slice without copying.
// The slice keeps whatever alignment it already had.
func FromSlice[T any](s []T) *Buffer[T] {
	return &Buffer[T]{data: s}
}

// Data returns the underlying slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Aligned reports whether the data starts on an Alignment boundary.
func (b *Buffer[T]) Aligned() bool {
	return isAligned(b.data)
}

// Resize sets the length to n, reusing capacity when possible. Growing past
// the capacity allocates a fresh aligned slice and keeps the existing prefix.
// Newly exposed elements are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.data)
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		s := alignedMake[T](n)
		copy(s, b.data)
		b.data = s
	}
	if n > oldLen {
		clear(b.data[oldLen:])
	}
}

// Zero sets every element to its zero value.
func (b *Buffer[T]) Zero() {
	clear(b.data)
}

// Clone returns an aligned deep copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := New[T](len(b.data))
	copy(c.data, b.data)
	return c
}
