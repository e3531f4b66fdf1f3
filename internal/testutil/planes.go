package testutil

import "math/rand"

// PolynomialPlane returns a width×height row-major plane sampled from f(x, y).
func PolynomialPlane(width, height int, f func(x, y float64) float64) []float64 {
	out := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out[y*width+x] = f(float64(x), float64(y))
		}
	}
	return out
}

// DeterministicNoisePlane returns a width×height plane of uniform noise in
// [offset-amplitude, offset+amplitude] generated from a fixed seed.
func DeterministicNoisePlane(seed int64, offset, amplitude float64, width, height int) []float64 {
	out := make([]float64, width*height)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = offset + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// Impulse2D returns a width×height plane that is 1 at (x, y) and 0 elsewhere.
func Impulse2D(width, height, x, y int) []float64 {
	out := make([]float64, width*height)
	if x >= 0 && x < width && y >= 0 && y < height {
		out[y*width+x] = 1
	}
	return out
}

// Rotate180 returns a copy of a row-major grid rotated by 180°.
func Rotate180(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, v := range grid {
		out[len(grid)-1-i] = v
	}
	return out
}
