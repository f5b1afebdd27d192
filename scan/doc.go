// Package scan computes inclusive prefix sums of integer slices.
//
// Three algorithms are provided:
//
//   - Serial: one pass, n-1 additions, the reference result.
//   - HillisSteele: log2(n) rounds of n additions each, O(log n) depth.
//   - Blelloch: an upsweep/downsweep over an implicit balanced tree,
//     2(n-1) additions, O(log n) depth.
//
// The parallel variants run each round as a fork/join region; no round reads
// values of the next until every worker of the current round has finished.
// Reads and writes within a round go to two distinct buffers whose roles swap
// between rounds.
//
// Blelloch requires a power-of-two tree. Other lengths are padded with zeros
// up to the next power of two and the padding is dropped from the output.
//
// Every function returns an empty slice for empty input. The *Into variants
// write into a caller-owned destination of the same length as the source;
// dst and src may be the same slice.
//
// Verify compares a candidate against a reference and reports the number of
// differing positions and the first of them.
//
// Addition wraps on overflow. Because wrapping addition is still associative,
// all three algorithms agree element for element even when sums overflow.
package scan
