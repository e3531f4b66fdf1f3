package core

import (
	"image"
	"math"
)

// GrayToPlane copies the pixels of src into dst as row-major samples and
// returns dst resliced to Dx·Dy. dst is reallocated only when its capacity
// is short.
func GrayToPlane(dst []float64, src *image.Gray) []float64 {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if cap(dst) < w*h {
		dst = make([]float64, w*h)
	}
	dst = dst[:w*h]

	for y := 0; y < h; y++ {
		pix := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		row := dst[y*w : (y+1)*w]
		for x := range row {
			row[x] = float64(pix[x])
		}
	}
	return dst
}

// PlaneToGray writes the row-major samples of src into dst, rounding and
// clamping each one with ClampByte. src must hold Dx·Dy of dst's bounds.
func PlaneToGray(dst *image.Gray, src []float64) {
	b := dst.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		pix := dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y+y):]
		for x, v := range src[y*w : (y+1)*w] {
			pix[x] = ClampByte(v)
		}
	}
}

// ClampByte rounds v half away from zero and saturates it to [0, 255].
// NaN maps to 0.
func ClampByte(v float64) uint8 {
	switch r := math.Round(v); {
	case r >= 255:
		return 255
	case r > 0:
		return uint8(r)
	default:
		return 0
	}
}
