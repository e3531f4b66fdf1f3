// Package conv provides 2D correlation primitives over row-major float64 planes.
//
// A plane of width×height samples is stored row-major in a []float64 with a
// stride equal to its width. Kernels are stored the same way.
//
// [DotWindow] evaluates a single output with a scalar loop. [CorrelateSpan]
// evaluates a run of adjacent outputs that share one kernel, one tap at a
// time over the whole run through vecmath, so the SIMD path sees long
// vectors. Prefer it whenever the run is more than a handful of samples.
//
// # Usage
//
// Evaluate a kernel anchored with its top-left cell at (x, y):
//
//	v := conv.DotWindow(plane, width, x, y, kernel, kw, kh)
//
// Evaluate n adjacent outputs starting at (x, y):
//
//	conv.CorrelateSpan(out[:n], scratch, plane, width, x, y, kernel, kw, kh)
//
// Correlate a whole plane (valid mode, output is (width-kw+1)×(height-kh+1)):
//
//	err := conv.Correlate2D(dst, plane, width, height, kernel, kw, kh)
package conv
