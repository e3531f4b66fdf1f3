package testutil

import "testing"

func TestPolynomialPlane(t *testing.T) {
	p := PolynomialPlane(3, 2, func(x, y float64) float64 { return x + 10*y })
	want := []float64{0, 1, 2, 10, 11, 12}
	RequireSliceNearlyEqual(t, p, want, 0)
}

func TestDeterministicNoisePlane(t *testing.T) {
	a := DeterministicNoisePlane(7, 100, 5, 4, 3)
	b := DeterministicNoisePlane(7, 100, 5, 4, 3)
	if len(a) != 12 {
		t.Fatalf("len = %d, want 12", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < 95 || a[i] > 105 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestImpulse2D(t *testing.T) {
	p := Impulse2D(3, 3, 2, 1)
	for i, v := range p {
		want := 0.0
		if i == 5 {
			want = 1
		}
		if v != want {
			t.Fatalf("p[%d] = %v, want %v", i, v, want)
		}
	}

	if p := Impulse2D(2, 2, 5, 0); p[0]+p[1]+p[2]+p[3] != 0 {
		t.Fatal("out-of-range impulse should produce an all-zero plane")
	}
}

func TestRotate180(t *testing.T) {
	got := Rotate180([]float64{1, 2, 3, 4, 5, 6})
	RequireSliceNearlyEqual(t, got, []float64{6, 5, 4, 3, 2, 1}, 0)
}
