package scan

import "github.com/cwbudde/algo-scan/internal/parallel"

// HillisSteele returns the inclusive prefix sum of src using the
// Hillis-Steele scan: ceil(log2 n) rounds, each adding to every element the
// value stride positions to its left, with stride doubling per round.
//
// The scan does n*ceil(log2 n) addition steps and is work-inefficient
// compared to Serial; its depth is O(log n).
func HillisSteele[T Integer](src []T, opts ...Option) []T {
	dst := make([]T, len(src))
	hillisSteele(dst, src, applyOptions[T](opts))
	return dst
}

// HillisSteeleInto writes the inclusive prefix sum of src into dst.
func HillisSteeleInto[T Integer](dst, src []T, opts ...Option) error {
	if err := checkLengths(len(dst), len(src)); err != nil {
		return err
	}
	hillisSteele(dst, src, applyOptions[T](opts))
	return nil
}

func hillisSteele[T Integer](dst, src []T, cfg config) {
	n := len(src)
	if n == 0 {
		return
	}

	scratch := getScratch[T](n)
	defer putScratch(scratch)

	// src is read only here, so dst may alias it.
	cur, next := scratch.Data(), dst
	parallel.Copy(cur, src, cfg.par)

	for stride := 1; stride < n; stride *= 2 {
		parallel.For(n, cfg.par, func(low, high int) {
			hillisSteeleRound(next, cur, stride, low, high)
			cfg.counter.add(high - low)
		})
		cur, next = next, cur
	}

	if &cur[0] != &dst[0] {
		parallel.Copy(dst, cur, cfg.par)
	}
}

// hillisSteeleRound computes one round for indices [low, high). Elements
// left of stride have no partner and pass through unchanged.
func hillisSteeleRound[T Integer](next, cur []T, stride, low, high int) {
	i := low
	for ; i < high && i < stride; i++ {
		next[i] = cur[i]
	}
	for ; i < high; i++ {
		next[i] = cur[i] + cur[i-stride]
	}
}
