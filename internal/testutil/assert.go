package testutil

import (
	"fmt"
	"testing"
)

// RequireSliceEqual fails t if got and want differ in length or any element.
func RequireSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// FirstDiff returns the first index at which a and b differ, or -1.
// Returns an error if the slices differ in length.
func FirstDiff[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return i, nil
		}
	}
	return -1, nil
}
