package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by correlation functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrKernelTooLarge = errors.New("conv: kernel larger than input")
)

// DotWindow returns the weighted sum of the kw×kh window of src whose
// top-left sample is (x, y), using kernel as row-major weights.
// The window must lie inside src; this is not checked.
//
// Kernel rows are only a few taps wide, so the sum is a plain loop. Use
// CorrelateSpan when many neighbouring outputs share the same kernel.
func DotWindow(src []float64, stride, x, y int, kernel []float64, kw, kh int) float64 {
	var sum float64
	row := y*stride + x
	for ky := 0; ky < kh; ky++ {
		s := src[row : row+kw]
		k := kernel[ky*kw : ky*kw+kw]
		for i, w := range k {
			sum += w * s[i]
		}
		row += stride
	}
	return sum
}

// CorrelateSpan sets dst[i] to the weighted sum of the kw×kh window of src
// whose top-left sample is (x+i, y), for every i in [0, len(dst)). scratch
// must hold at least len(dst) samples. All windows must lie inside src.
//
// Each kernel tap is applied to the whole span at once, so vecmath works on
// len(dst)-long vectors instead of kw-long rows.
func CorrelateSpan(dst, scratch, src []float64, stride, x, y int, kernel []float64, kw, kh int) {
	n := len(dst)
	tmp := scratch[:n]
	clear(dst)
	for ky := 0; ky < kh; ky++ {
		row := src[(y+ky)*stride+x:]
		for kx, w := range kernel[ky*kw : ky*kw+kw] {
			vecmath.ScaleBlock(tmp, row[kx:kx+n], w)
			vecmath.AddBlockInPlace(dst, tmp)
		}
	}
}

// Correlate2D computes the valid-mode 2D correlation of src (width×height)
// with kernel (kw×kh). dst must hold (width-kw+1)*(height-kh+1) values.
func Correlate2D(dst, src []float64, width, height int, kernel []float64, kw, kh int) error {
	if width <= 0 || height <= 0 || len(src) == 0 {
		return ErrEmptyInput
	}
	if kw <= 0 || kh <= 0 || len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(src) != width*height {
		return fmt.Errorf("%w: src has %d samples, want %d", ErrLengthMismatch, len(src), width*height)
	}
	if len(kernel) != kw*kh {
		return fmt.Errorf("%w: kernel has %d weights, want %d", ErrLengthMismatch, len(kernel), kw*kh)
	}
	if kw > width || kh > height {
		return fmt.Errorf("%w: %dx%d kernel, %dx%d input", ErrKernelTooLarge, kw, kh, width, height)
	}

	outW := width - kw + 1
	outH := height - kh + 1
	if len(dst) != outW*outH {
		return fmt.Errorf("%w: dst has %d samples, want %d", ErrLengthMismatch, len(dst), outW*outH)
	}

	scratch := make([]float64, outW)
	for y := 0; y < outH; y++ {
		CorrelateSpan(dst[y*outW:(y+1)*outW], scratch, src, width, 0, y, kernel, kw, kh)
	}
	return nil
}
