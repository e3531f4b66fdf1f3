package savgol

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds numerically computed properties of a kernel.
type Analysis struct {
	// DCGain is sum(w), the response to a constant image.
	DCGain float64
	// NoiseGain is sum(w²), the variance factor applied to white noise.
	NoiseGain float64
	// PeakGain is the largest magnitude over the 2D frequency response.
	PeakGain float64
	// Bandwidth3dBX is the horizontal frequency in cycles/pixel at which the
	// response along the x axis first falls below DCGain/√2. It is 0.5 if the
	// response never falls that far and 0 when DCGain is 0.
	Bandwidth3dBX float64
	// Bandwidth3dBY is Bandwidth3dBX for the y axis.
	Bandwidth3dBY float64
}

// Bounds for the FFT grid side. minAnalysisBins keeps narrow kernels finely
// resolved; beyond maxAnalysisBins the padding factor drops to 2.
const (
	minAnalysisBins = 64
	maxAnalysisBins = 1024
)

// analysisBins returns the power-of-two FFT size for a kernel whose larger
// side is m: 16·m zero padding up to maxAnalysisBins, never less than 2·m.
func analysisBins(m int) int {
	n := minAnalysisBins
	for n < 16*m && n < maxAnalysisBins {
		n *= 2
	}
	for n < 2*m {
		n *= 2
	}
	return n
}

// Analyze evaluates the frequency response of k's current weights on a
// zero-padded power-of-two grid.
func Analyze(k *Kernel) (Analysis, error) {
	w := k.Values()
	size := k.Size()
	n := analysisBins(max(size.X, size.Y))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Analysis{}, fmt.Errorf("savgol: fft plan: %w", err)
	}

	// Row transforms of the weight rows. Padding rows are zero and stay zero.
	rows := make([]complex128, size.Y*n)
	in := make([]complex128, n)
	for y := 0; y < size.Y; y++ {
		clear(in)
		for x := 0; x < size.X; x++ {
			in[x] = complex(w[y*size.X+x], 0)
		}
		if err := plan.Forward(rows[y*n:(y+1)*n], in); err != nil {
			return Analysis{}, fmt.Errorf("savgol: fft: %w", err)
		}
	}

	a := Analysis{
		DCGain:    vecmath.Sum(w),
		NoiseGain: vecmath.DotProduct(w, w),
	}

	// Column transforms one at a time. Row 0 of the spectrum is the x axis,
	// column 0 the y axis.
	axisX := make([]float64, n/2+1)
	axisY := make([]float64, n/2+1)
	out := make([]complex128, n)
	mag := make([]float64, n)
	for u := 0; u < n; u++ {
		clear(in)
		for v := 0; v < size.Y; v++ {
			in[v] = rows[v*n+u]
		}
		if err := plan.Forward(out, in); err != nil {
			return Analysis{}, fmt.Errorf("savgol: fft: %w", err)
		}
		for v, h := range out {
			mag[v] = cmplx.Abs(h)
		}
		a.PeakGain = max(a.PeakGain, vecmath.MaxAbs(mag))
		if u < len(axisX) {
			axisX[u] = mag[0]
		}
		if u == 0 {
			copy(axisY, mag)
		}
	}

	a.Bandwidth3dBX = halfPowerFrequency(axisX, a.DCGain, n)
	a.Bandwidth3dBY = halfPowerFrequency(axisY, a.DCGain, n)

	return a, nil
}

// halfPowerFrequency returns the first frequency at which the magnitude
// response drops below |dc|/√2, interpolating linearly between bins.
func halfPowerFrequency(resp []float64, dc float64, n int) float64 {
	if dc == 0 {
		return 0
	}
	target := math.Abs(dc) / math.Sqrt2
	for f := 1; f < len(resp); f++ {
		if resp[f] < target {
			prev := resp[f-1]
			frac := (prev - target) / (prev - resp[f])
			return (float64(f-1) + frac) / float64(n)
		}
	}
	return 0.5
}
