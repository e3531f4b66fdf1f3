package savgol

import (
	"fmt"
	"image"
	"testing"

	"github.com/cwbudde/algo-scan/internal/testutil"
)

func BenchmarkNewKernel(b *testing.B) {
	for _, n := range []int{5, 9, 15} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = NewKernel(image.Pt(n, n), image.Pt(n/2, n/2), 2, 2)
			}
		})
	}
}

func BenchmarkRecalcForOrigin(b *testing.B) {
	for _, n := range []int{5, 9, 15} {
		k, err := NewKernel(image.Pt(n, n), image.Pt(n/2, n/2), 2, 2)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			i := 0
			for b.Loop() {
				k.RecalcForOrigin(image.Pt(i%n, (i/n)%n))
				i++
			}
		})
	}
}

func BenchmarkFilterPlane(b *testing.B) {
	const width, height = 512, 512
	src := testutil.DeterministicNoisePlane(3, 128, 30, width, height)
	dst := make([]float64, len(src))

	b.ReportAllocs()
	for b.Loop() {
		if err := FilterPlane(dst, src, width, height, image.Pt(7, 7), 2, 2); err != nil {
			b.Fatal(err)
		}
	}
}
