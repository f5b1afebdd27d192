// Package buffer provides cache-line-aligned integer buffers and a pool for
// reusing them. The scan functions accept raw slices; Buffer is the storage
// they draw transient scratch space from, and callers may use it to keep
// input and output arrays off the allocator in repeated runs.
package buffer
