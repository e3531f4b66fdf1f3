// Package buffer provides cache-line aligned float64 storage for kernel
// weights and image planes, and a pool that recycles it.
//
// The hot loops hand these slices to vectorized dot products; starting every
// buffer on an [Alignment]-byte boundary keeps the first load from splitting
// a cache line. Callers work with plain []float64 through [Buffer.Samples].
package buffer
