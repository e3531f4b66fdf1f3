package savgol

// terms enumerates the monomials x^j·y^i of a 2D polynomial with
// i in [0, vert] and j in [0, hor]. The vertical exponent is the outer loop
// and the horizontal one the inner loop; term k therefore has
// i = k / (hor+1) and j = k % (hor+1). Design-matrix rows, polynomial
// evaluation and derivative evaluation all go through eval.
type terms struct {
	hor, vert int
}

func (t terms) count() int {
	return (t.hor + 1) * (t.vert + 1)
}

// eval writes ∂^dx/∂x^dx ∂^dy/∂y^dy of every term at (x, y) into dst, which
// must have count() elements. ys is scratch of length vert+1.
// eval(dst, ys, x, y, 0, 0) yields the monomials themselves.
func (t terms) eval(dst, ys []float64, x, y float64, dx, dy int) {
	stride := t.hor + 1
	powerFactors(dst[:stride], x, dx)
	powerFactors(ys, y, dy)

	// Row 0 of dst holds the x factors until the very last pass.
	for i := t.vert; i >= 0; i-- {
		fy := ys[i]
		row := dst[i*stride : (i+1)*stride]
		for j := range row {
			row[j] = fy * dst[j]
		}
	}
}

// powerFactors sets dst[n] to the order-th derivative of v^n.
func powerFactors(dst []float64, v float64, order int) {
	pw := 1.0
	for n := range dst {
		if n < order {
			dst[n] = 0
			continue
		}
		c := 1.0
		for m := 0; m < order; m++ {
			c *= float64(n - m)
		}
		dst[n] = c * pw
		pw *= v
	}
}
