package savgol

import "math"

// rotation is a plane rotation acting on rows (j, i):
//
//	row_j' =  cos·row_j + sin·row_i
//	row_i' = -sin·row_j + cos·row_i
type rotation struct {
	sin, cos float64
}

var identity = rotation{sin: 0, cos: 1}

// givens returns the rotation that maps (a, b) to (r, 0).
// r = ±hypot(a, b) and takes the sign of whichever of a and b is larger in
// magnitude. The ratio form never squares a or b, so it cannot overflow.
func givens(a, b float64) (rotation, float64) {
	if b == 0 {
		return identity, a
	}
	if math.Abs(a) > math.Abs(b) {
		t := b / a
		u := math.Sqrt(1 + t*t)
		return rotation{sin: t / u, cos: 1 / u}, a * u
	}
	t := a / b
	u := math.Sqrt(1 + t*t)
	return rotation{sin: 1 / u, cos: t / u}, b * u
}
