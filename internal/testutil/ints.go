package testutil

import "math/rand"

// DeterministicInts returns length values in [0, limit) from a fixed seed.
func DeterministicInts(seed int64, limit int32, length int) []int32 {
	out := make([]int32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int31n(limit)
	}
	return out
}

// SignedInts returns length values in [-limit, limit) from a fixed seed.
func SignedInts(seed int64, limit int64, length int) []int64 {
	out := make([]int64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int63n(2*limit) - limit
	}
	return out
}

// Const returns a slice of length n filled with v.
func Const(v int32, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Ones returns a slice of length n filled with 1.
func Ones(n int) []int32 {
	return Const(1, n)
}

// Ramp returns 1, 2, ..., n.
func Ramp(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i + 1)
	}
	return out
}

// Lengths returns the lengths worth testing a scan at: tiny, powers of two,
// and the values around them.
func Lengths() []int {
	return []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 33, 64, 100, 127, 128, 129, 1000, 1024, 4097}
}
