package savgol

import (
	"fmt"
	"image"

	"github.com/cwbudde/algo-scan/imgproc/buffer"
)

// factorization is the origin-independent part of a kernel. It is never
// written after NewKernel returns, so clones share it.
type factorization struct {
	width, height int
	terms         terms
	numTerms      int
	numDataPoints int

	// basis holds the monomials of every grid cell, numDataPoints rows of
	// numTerms values, cells in row-major order with 1-based coordinates.
	basis []float64

	// equations starts as a copy of basis and is triangularized in place.
	// Only its upper numTerms×numTerms triangle (R) is meaningful afterwards.
	equations []float64

	// rotations logs every rotation applied by factorize, identity
	// rotations included, in (column outer, row inner) order.
	rotations []rotation
}

// Kernel is a 2D Savitzky-Golay kernel: the weights that evaluate, at an
// origin cell, the least-squares polynomial fitted to a width×height grid.
//
// A Kernel is not safe for concurrent use. Use Clone to obtain independent
// instances that share the factorization.
type Kernel struct {
	f *factorization

	origin     image.Point
	dataPoints []float64
	coeffs     []float64
	ys         []float64
	weights    *buffer.Buffer
}

// NewKernel builds the design matrix for a size.X×size.Y grid and polynomial
// degrees horDegree (x) and vertDegree (y), factorizes it, and computes the
// weights for origin.
//
// It fails with ErrInvalidConfiguration if the grid is empty, a degree is
// negative, origin lies outside the grid, or the polynomial has more terms
// than the grid has cells.
func NewKernel(size, origin image.Point, horDegree, vertDegree int) (*Kernel, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: empty %dx%d grid", ErrInvalidConfiguration, size.X, size.Y)
	}
	if horDegree < 0 || vertDegree < 0 {
		return nil, fmt.Errorf("%w: negative degree (%d, %d)", ErrInvalidConfiguration, horDegree, vertDegree)
	}
	if !origin.In(image.Rectangle{Max: size}) {
		return nil, fmt.Errorf("%w: origin %v outside %dx%d grid", ErrInvalidConfiguration, origin, size.X, size.Y)
	}

	t := terms{hor: horDegree, vert: vertDegree}
	numTerms := t.count()
	numDataPoints := size.X * size.Y
	if numTerms > numDataPoints {
		return nil, fmt.Errorf("%w: %d terms exceed %d data points",
			ErrInvalidConfiguration, numTerms, numDataPoints)
	}

	f := &factorization{
		width:         size.X,
		height:        size.Y,
		terms:         t,
		numTerms:      numTerms,
		numDataPoints: numDataPoints,
	}
	f.buildBasis()
	f.factorize()

	k := newKernel(f)
	k.RecalcForOrigin(origin)
	return k, nil
}

func newKernel(f *factorization) *Kernel {
	return &Kernel{
		f:          f,
		dataPoints: make([]float64, f.numDataPoints),
		coeffs:     make([]float64, f.numTerms),
		ys:         make([]float64, f.terms.vert+1),
		weights:    buffer.New(f.numDataPoints),
	}
}

func (f *factorization) buildBasis() {
	ys := make([]float64, f.terms.vert+1)
	f.basis = make([]float64, f.numDataPoints*f.numTerms)

	row := 0
	for y := 1; y <= f.height; y++ {
		for x := 1; x <= f.width; x++ {
			f.terms.eval(f.basis[row:row+f.numTerms], ys, float64(x), float64(y), 0, 0)
			row += f.numTerms
		}
	}

	f.equations = make([]float64, len(f.basis))
	copy(f.equations, f.basis)
}

// factorize reduces equations to upper-triangular form with Givens
// rotations, zeroing column j below the diagonal one row at a time.
func (f *factorization) factorize() {
	n, m := f.numTerms, f.numDataPoints
	f.rotations = make([]rotation, 0, n*(n-1)/2+(m-n)*n)

	for j := 0; j < n; j++ {
		rowJ := f.equations[j*n : (j+1)*n]
		for i := j + 1; i < m; i++ {
			rowI := f.equations[i*n : (i+1)*n]

			b := rowI[j]
			if b == 0 {
				// Still logged: replay walks the same (j, i) pattern.
				f.rotations = append(f.rotations, identity)
				continue
			}

			rot, r := givens(rowJ[j], b)
			rowJ[j] = r
			rowI[j] = 0
			for k := j + 1; k < n; k++ {
				aj, ai := rowJ[k], rowI[k]
				rowJ[k] = rot.cos*aj + rot.sin*ai
				rowI[k] = rot.cos*ai - rot.sin*aj
			}
			f.rotations = append(f.rotations, rot)
		}
	}
}

// RecalcForOrigin recomputes the weights for a new origin without
// refactorizing. origin must lie inside the grid; this is only checked in
// builds with the savgoldebug tag.
func (k *Kernel) RecalcForOrigin(origin image.Point) {
	f := k.f
	if debugAssertions {
		assertf(origin.In(image.Rectangle{Max: image.Pt(f.width, f.height)}),
			"origin %v outside %dx%d grid", origin, f.width, f.height)
	}
	k.origin = origin

	dp := k.dataPoints
	for i := range dp {
		dp[i] = 0
	}
	dp[origin.Y*f.width+origin.X] = 1

	k.rotateDataPoints()
	k.backSubstitute()

	weights := k.weights.Samples()
	n := f.numTerms
	for i := range weights {
		weights[i] = dot(f.basis[i*n:(i+1)*n], k.coeffs)
	}
}

// dot is the inner product of two term vectors of at most numTerms values.
func dot(a, b []float64) float64 {
	var sum float64
	for i, v := range a[:len(b)] {
		sum += v * b[i]
	}
	return sum
}

// rotateDataPoints applies the logged rotations to the data vector in the
// order factorize produced them, turning it into Qᵀ·d.
func (k *Kernel) rotateDataPoints() {
	f := k.f
	dp := k.dataPoints
	rots := f.rotations

	r := 0
	for j := 0; j < f.numTerms; j++ {
		dj := dp[j]
		for i := j + 1; i < f.numDataPoints; i++ {
			rot := rots[r]
			r++
			di := dp[i]
			dp[i] = rot.cos*di - rot.sin*dj
			dj = rot.cos*dj + rot.sin*di
		}
		dp[j] = dj
	}
}

// backSubstitute solves R·coeffs = dp[:numTerms].
func (k *Kernel) backSubstitute() {
	f := k.f
	n := f.numTerms
	for i := n - 1; i >= 0; i-- {
		row := f.equations[i*n : (i+1)*n]
		sum := k.dataPoints[i] - dot(row[i+1:], k.coeffs[i+1:])
		if debugAssertions {
			assertf(row[i] != 0, "zero pivot in row %d", i)
		}
		k.coeffs[i] = sum / row[i]
	}
}

// Clone returns an independent kernel with the same weights. The clone
// shares the read-only factorization and owns its working buffers.
func (k *Kernel) Clone() *Kernel {
	c := newKernel(k.f)
	c.origin = k.origin
	copy(c.dataPoints, k.dataPoints)
	copy(c.coeffs, k.coeffs)
	copy(c.weights.Samples(), k.weights.Samples())
	return c
}

// Values returns the weights in row-major grid order. The slice starts on a
// buffer.Alignment boundary and is overwritten by the next recalculation;
// callers must not modify it.
func (k *Kernel) Values() []float64 {
	return k.weights.Samples()
}

// At returns the weight at linear index i.
func (k *Kernel) At(i int) float64 {
	return k.weights.Samples()[i]
}

// AtXY returns the weight of grid cell (x, y).
func (k *Kernel) AtXY(x, y int) float64 {
	return k.weights.Samples()[y*k.f.width+x]
}

// Size returns the grid dimensions.
func (k *Kernel) Size() image.Point {
	return image.Pt(k.f.width, k.f.height)
}

// Origin returns the origin of the current weights.
func (k *Kernel) Origin() image.Point {
	return k.origin
}

// HorDegree returns the polynomial degree in x.
func (k *Kernel) HorDegree() int {
	return k.f.terms.hor
}

// VertDegree returns the polynomial degree in y.
func (k *Kernel) VertDegree() int {
	return k.f.terms.vert
}

// NumTerms returns (HorDegree()+1)·(VertDegree()+1).
func (k *Kernel) NumTerms() int {
	return k.f.numTerms
}

// NumDataPoints returns the number of grid cells.
func (k *Kernel) NumDataPoints() int {
	return k.f.numDataPoints
}

// NumRotations returns the length of the rotation log.
func (k *Kernel) NumRotations() int {
	return len(k.f.rotations)
}
