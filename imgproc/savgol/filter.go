package savgol

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/cwbudde/algo-scan/imgproc/buffer"
	"github.com/cwbudde/algo-scan/imgproc/conv"
	"github.com/cwbudde/algo-scan/imgproc/core"
)

const filterComponent = "savgol_filter"

var planes = buffer.NewPool()

// span is the half-open range of output coordinates that share one kernel
// origin coordinate along an axis.
type span struct {
	lo, hi int
}

// originSpans returns, for every origin coordinate o in [0, window), the
// output coordinates whose window has origin o. Coordinates in the leading
// band keep the window pinned at 0, the trailing band pins it at
// length-window, and everything between uses the centered origin.
func originSpans(length, window int) []span {
	center := window / 2
	trailing := window - center - 1

	spans := make([]span, window)
	for o := 0; o < window; o++ {
		switch {
		case o < center:
			spans[o] = span{o, o + 1}
		case o == center:
			spans[o] = span{center, length - trailing}
		default:
			c := length - window + o
			spans[o] = span{c, c + 1}
		}
	}
	return spans
}

// FilterPlane smooths the width×height row-major plane src into dst with a
// window.X×window.Y Savitzky-Golay kernel of the given degrees. dst and src
// must not overlap.
func FilterPlane(dst, src []float64, width, height int, window image.Point,
	horDegree, vertDegree int, opts ...core.ProcessorOption,
) error {
	if width <= 0 || height <= 0 || len(src) != width*height || len(dst) != len(src) {
		return fmt.Errorf("%w: %dx%d plane with src=%d dst=%d samples",
			ErrPlaneSize, width, height, len(src), len(dst))
	}
	if window.X > width || window.Y > height {
		return fmt.Errorf("%w: %dx%d window, %dx%d image",
			ErrWindowTooLarge, window.X, window.Y, width, height)
	}

	base, err := NewKernel(window, image.Pt(window.X/2, window.Y/2), horDegree, vertDegree)
	if err != nil {
		return err
	}

	cfg := core.ApplyProcessorOptions(opts...)
	workers := min(cfg.Workers, height)
	rowsPerWorker := (height + workers - 1) / workers

	cfg.Logger.Debug().
		Str("component", filterComponent).
		Int("width", width).
		Int("height", height).
		Int("window_w", window.X).
		Int("window_h", window.Y).
		Int("hor_degree", horDegree).
		Int("vert_degree", vertDegree).
		Int("workers", workers).
		Msg("filtering plane")

	xs := originSpans(width, window.X)
	ys := originSpans(height, window.Y)

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rowsPerWorker {
		y1 := min(y0+rowsPerWorker, height)
		k := base
		if y1 < height {
			k = base.Clone()
		}
		wg.Add(1)
		go func(k *Kernel, y0, y1 int) {
			defer wg.Done()
			filterRows(dst, src, width, k, xs, ys, y0, y1)
		}(k, y0, y1)
	}
	wg.Wait()
	return nil
}

// minSpan is the shortest run of same-origin outputs that goes through
// conv.CorrelateSpan. Shorter runs, the border columns, use conv.DotWindow.
const minSpan = 16

// filterRows computes output rows [y0, y1). Each kernel origin is
// recalculated once and applied to every pixel it serves in the band.
func filterRows(dst, src []float64, width int, k *Kernel, xs, ys []span, y0, y1 int) {
	size := k.Size()
	weights := k.Values()
	scratch := planes.Get(width)
	defer planes.Put(scratch)

	for oy, sy := range ys {
		lo, hi := max(sy.lo, y0), min(sy.hi, y1)
		if lo >= hi {
			continue
		}
		for ox, sx := range xs {
			k.RecalcForOrigin(image.Pt(ox, oy))
			for y := lo; y < hi; y++ {
				wy := y - oy
				out := dst[y*width : (y+1)*width]
				if sx.hi-sx.lo >= minSpan {
					conv.CorrelateSpan(out[sx.lo:sx.hi], scratch.Samples(), src, width,
						sx.lo-ox, wy, weights, size.X, size.Y)
					continue
				}
				for x := sx.lo; x < sx.hi; x++ {
					out[x] = conv.DotWindow(src, width, x-ox, wy, weights, size.X, size.Y)
				}
			}
		}
	}
}

// FilterGray smooths a grayscale image. Results are rounded and clamped to
// [0, 255]; the output has the same bounds as src.
func FilterGray(src *image.Gray, window image.Point, horDegree, vertDegree int,
	opts ...core.ProcessorOption,
) (*image.Gray, error) {
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	if window.X > width || window.Y > height {
		return nil, fmt.Errorf("%w: %dx%d window, %dx%d image",
			ErrWindowTooLarge, window.X, window.Y, width, height)
	}

	in := planes.Get(width * height)
	defer planes.Put(in)
	out := planes.Get(width * height)
	defer planes.Put(out)

	plane := core.GrayToPlane(in.Samples(), src)
	if err := FilterPlane(out.Samples(), plane, width, height, window, horDegree, vertDegree, opts...); err != nil {
		return nil, err
	}

	dst := image.NewGray(b)
	core.PlaneToGray(dst, out.Samples())
	return dst, nil
}

// FilterImage converts src to grayscale and smooths it with FilterGray.
// The result has the same bounds as src.
func FilterImage(src image.Image, window image.Point, horDegree, vertDegree int,
	opts ...core.ProcessorOption,
) (*image.Gray, error) {
	gray, ok := src.(*image.Gray)
	if !ok {
		gray = toGray(src)
	}
	return FilterGray(gray, window, horDegree, vertDegree, opts...)
}

// toGray converts src to luminance with the same bounds as src.
// imaging.Grayscale leaves R = G = B and returns an image anchored at (0, 0).
func toGray(src image.Image) *image.Gray {
	nrgba := imaging.Grayscale(src)
	b := nrgba.Bounds()
	gray := image.NewGray(src.Bounds())
	for y := 0; y < b.Dy(); y++ {
		in := nrgba.Pix[y*nrgba.Stride:]
		out := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			out[x] = in[4*x]
		}
	}
	return gray
}
