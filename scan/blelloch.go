package scan

import (
	"math/bits"

	"github.com/cwbudde/algo-scan/internal/parallel"
)

// Blelloch returns the inclusive prefix sum of src using the work-efficient
// Blelloch scan: an upsweep that reduces the input up an implicit balanced
// binary tree, a downsweep that pushes prefixes back down to the leaves, and
// a shift that turns the resulting exclusive scan into an inclusive one.
//
// For a power-of-two length n the scan performs exactly 2*(n-1) additions.
// Other lengths are padded with zeros to the next power of two m, costing
// 2*(m-1) additions; the padding never reaches the output.
func Blelloch[T Integer](src []T, opts ...Option) []T {
	dst := make([]T, len(src))
	blelloch(dst, src, applyOptions[T](opts), true)
	return dst
}

// BlellochInto writes the inclusive prefix sum of src into dst.
func BlellochInto[T Integer](dst, src []T, opts ...Option) error {
	if err := checkLengths(len(dst), len(src)); err != nil {
		return err
	}
	blelloch(dst, src, applyOptions[T](opts), true)
	return nil
}

// BlellochExclusive returns the exclusive prefix sum of src, the form the
// downsweep produces before the inclusive shift.
func BlellochExclusive[T Integer](src []T, opts ...Option) []T {
	dst := make([]T, len(src))
	blelloch(dst, src, applyOptions[T](opts), false)
	return dst
}

// treeSize returns the smallest power of two >= n. n must be > 0.
func treeSize(n int) int {
	return 1 << bits.Len(uint(n-1))
}

func blelloch[T Integer](dst, src []T, cfg config, inclusive bool) {
	n := len(src)
	if n == 0 {
		return
	}
	m := treeSize(n)

	treeBuf := getScratch[T](m)
	defer putScratch(treeBuf)
	shadowBuf := getScratch[T](m)
	defer putScratch(shadowBuf)
	tree, shadow := treeBuf.Data(), shadowBuf.Data()

	// Pooled buffers come back zeroed, so tree[n:m] already holds the
	// additive identity.
	parallel.Copy(tree[:n], src, cfg.par)

	upsweep(tree, cfg)

	total := tree[m-1]
	tree[m-1] = 0
	parallel.Copy(shadow, tree, cfg.par)

	cur := downsweep(tree, shadow, cfg)

	if !inclusive {
		parallel.Copy(dst, cur[:n], cfg.par)
		return
	}
	parallel.For(n-1, cfg.par, func(low, high int) {
		copy(dst[low:high], cur[low+1:high+1])
	})
	dst[n-1] = total
}

// upsweep reduces tree in place. After it returns tree[len-1] holds the total.
//
// Updating in place is safe: a round writes only indices congruent to
// 2*stride-1 and reads only those plus indices congruent to stride-1, which
// the round never writes.
func upsweep[T Integer](tree []T, cfg config) {
	m := len(tree)
	for stride := 1; stride < m; stride *= 2 {
		span := 2 * stride
		parallel.For(m/span, cfg.par, func(low, high int) {
			for k := low; k < high; k++ {
				i := k*span + span - 1
				tree[i] += tree[i-stride]
			}
			cfg.counter.add(high - low)
		})
	}
}

// downsweep distributes prefixes from the root to the leaves and returns the
// buffer holding the exclusive scan. a and b must hold identical contents on
// entry.
//
// Each round reads only from cur and writes only to next. The set of indices
// a round writes contains every index the previous round wrote, so once the
// roles swap nothing stale remains in cur.
func downsweep[T Integer](a, b []T, cfg config) []T {
	m := len(a)
	cur, next := a, b
	for stride := m / 2; stride >= 1; stride /= 2 {
		span := 2 * stride
		parallel.For(m/span, cfg.par, func(low, high int) {
			for k := low; k < high; k++ {
				i := k*span + span - 1
				left := i - stride
				next[i] = cur[i] + cur[left]
				next[left] = cur[i]
			}
			cfg.counter.add(high - low)
		})
		cur, next = next, cur
	}
	return cur
}
