package savgol

import "image"

// RecalcDerivative recomputes the weights so that their dot product with a
// neighborhood yields ∂^(dx+dy)f/∂x^dx∂y^dy at origin, where f is the fitted
// polynomial. Derivatives are per pixel step. With dx = dy = 0 the result
// matches RecalcForOrigin up to rounding; orders above the fitted degree
// yield all-zero weights.
//
// origin must lie inside the grid and dx, dy must be non-negative. Like the
// origin bound in RecalcForOrigin, this is only checked in builds with the
// savgoldebug tag; a negative order is otherwise treated as order 0.
//
// The weights are Q·R⁻ᵀ·∇φ(origin): a forward substitution against Rᵀ
// followed by the transposed rotation log replayed backwards.
func (k *Kernel) RecalcDerivative(origin image.Point, dx, dy int) {
	f := k.f
	if debugAssertions {
		assertf(origin.In(image.Rectangle{Max: image.Pt(f.width, f.height)}),
			"origin %v outside %dx%d grid", origin, f.width, f.height)
		assertf(dx >= 0 && dy >= 0, "negative derivative order (%d, %d)", dx, dy)
	}
	k.origin = origin

	n := f.numTerms
	g := k.coeffs
	f.terms.eval(g, k.ys, float64(origin.X+1), float64(origin.Y+1), dx, dy)

	// Rᵀ·z = g, column i of R read top to bottom.
	dp := k.dataPoints
	for i := 0; i < n; i++ {
		sum := g[i]
		for r := 0; r < i; r++ {
			sum -= f.equations[r*n+i] * dp[r]
		}
		if debugAssertions {
			assertf(f.equations[i*n+i] != 0, "zero pivot in row %d", i)
		}
		dp[i] = sum / f.equations[i*n+i]
	}
	for i := n; i < len(dp); i++ {
		dp[i] = 0
	}

	k.unrotateDataPoints()
	copy(k.weights.Samples(), dp)

	// Leave coeffs as the polynomial whose value at each cell is the weight,
	// matching what RecalcForOrigin stores.
	k.solveCoefficients()
}

// unrotateDataPoints applies the transposed rotations in reverse order,
// turning the data vector into Q·d.
func (k *Kernel) unrotateDataPoints() {
	f := k.f
	dp := k.dataPoints
	rots := f.rotations

	r := len(rots) - 1
	for j := f.numTerms - 1; j >= 0; j-- {
		dj := dp[j]
		for i := f.numDataPoints - 1; i > j; i-- {
			rot := rots[r]
			r--
			di := dp[i]
			dp[i] = rot.sin*dj + rot.cos*di
			dj = rot.cos*dj - rot.sin*di
		}
		dp[j] = dj
	}
}

// solveCoefficients refits coeffs to the current weights, leaving
// dataPoints in rotated form.
func (k *Kernel) solveCoefficients() {
	copy(k.dataPoints, k.weights.Samples())
	k.rotateDataPoints()
	k.backSubstitute()
}

// Coefficients returns the polynomial coefficients behind the current
// weights, in term order: x^j·y^i at index i·(HorDegree()+1)+j, with x and y
// the 1-based grid coordinates.
func (k *Kernel) Coefficients() []float64 {
	c := make([]float64, len(k.coeffs))
	copy(c, k.coeffs)
	return c
}
