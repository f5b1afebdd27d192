package buffer

import "unsafe"

// Alignment is the byte boundary every buffer allocated by this package
// starts on.
const Alignment = 64

// alignedMake returns a zeroed slice of length n whose first element sits on
// an Alignment boundary. The backing array is over-allocated by up to one
// line; capacity is clipped to n so appends reallocate instead of running into
// the padding.
func alignedMake[T any](n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if n <= 0 || size == 0 {
		return make([]T, max(n, 0))
	}

	pad := (Alignment + size - 1) / size
	raw := make([]T, n+pad)
	off := 0
	if r := int(uintptr(unsafe.Pointer(&raw[0])) % Alignment); r != 0 {
		gap := Alignment - r
		if gap%size != 0 {
			return raw[:n:n]
		}
		off = gap / size
	}
	return raw[off : off+n : off+n]
}

// isAligned reports whether s starts on an Alignment boundary.
// Empty slices count as aligned.
func isAligned[T any](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0
}
