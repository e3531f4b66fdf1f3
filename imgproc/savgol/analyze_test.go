package savgol

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBoxKernel(t *testing.T) {
	k := mustKernel(t, image.Pt(3, 3), image.Pt(1, 1), 0, 0)
	a, err := Analyze(k)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, a.DCGain, 1e-12)
	assert.InDelta(t, 1.0/9, a.NoiseGain, 1e-12)
	assert.InDelta(t, 1.0, a.PeakGain, 1e-12)

	// |1 + 2cos(2πf)|/3 = 1/√2
	want := math.Acos((3/math.Sqrt2-1)/2) / (2 * math.Pi)
	assert.InDelta(t, want, a.Bandwidth3dBX, 5e-3)
	assert.InDelta(t, want, a.Bandwidth3dBY, 5e-3)
}

func TestAnalyzeHigherDegreeWidensPassband(t *testing.T) {
	box := mustKernel(t, image.Pt(7, 7), image.Pt(3, 3), 0, 0)
	quad := mustKernel(t, image.Pt(7, 7), image.Pt(3, 3), 2, 2)

	ab, err := Analyze(box)
	require.NoError(t, err)
	aq, err := Analyze(quad)
	require.NoError(t, err)

	assert.Greater(t, aq.Bandwidth3dBX, ab.Bandwidth3dBX)
	assert.Greater(t, aq.NoiseGain, ab.NoiseGain)
	assert.InDelta(t, 1.0, aq.DCGain, 1e-9)
}

func TestAnalyzeAnisotropicDegrees(t *testing.T) {
	k := mustKernel(t, image.Pt(7, 7), image.Pt(3, 3), 4, 0)
	a, err := Analyze(k)
	require.NoError(t, err)
	assert.Greater(t, a.Bandwidth3dBX, a.Bandwidth3dBY)
}

func TestAnalyzeDerivativeKernel(t *testing.T) {
	k := mustKernel(t, image.Pt(5, 5), image.Pt(2, 2), 2, 2)
	k.RecalcDerivative(image.Pt(2, 2), 1, 0)

	a, err := Analyze(k)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, a.DCGain, 1e-12)
	assert.InDelta(t, 0.0, a.NoiseGain-sum(sq(k.Values())), 1e-12)
	assert.Greater(t, a.PeakGain, 0.0)
}

func TestHalfPowerFrequency(t *testing.T) {
	assert.Zero(t, halfPowerFrequency([]float64{0, 0, 0}, 0, 4))
	assert.Equal(t, 0.5, halfPowerFrequency([]float64{1, 1, 1}, 1, 4))
	// Crosses 1/√2 halfway between bins 1 and 2 of an 8-point grid.
	target := 1 / math.Sqrt2
	resp := []float64{1, target + 0.1, target - 0.1, 0, 0}
	assert.InDelta(t, 1.5/8, halfPowerFrequency(resp, 1, 8), 1e-12)
}

func sq(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * v
	}
	return out
}

func TestAnalyzeIdentityKernelIsAllPass(t *testing.T) {
	k := mustKernel(t, image.Pt(3, 3), image.Pt(1, 1), 2, 2)
	a, err := Analyze(k)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, a.PeakGain, 1e-9)
	assert.Equal(t, 0.5, a.Bandwidth3dBX)
	assert.Equal(t, 0.5, a.Bandwidth3dBY)
}

func TestAnalysisBins(t *testing.T) {
	tests := []struct {
		side, want int
	}{
		{1, 64},
		{3, 64},
		{5, 128},
		{33, 1024},
		{257, 1024},
		{600, 2048},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analysisBins(tt.side), "side %d", tt.side)
	}
}

func TestAnalyzeLargeBoxKernel(t *testing.T) {
	const side = 65
	k := mustKernel(t, image.Pt(side, side), image.Pt(side/2, side/2), 0, 0)
	a, err := Analyze(k)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, a.DCGain, 1e-9)
	assert.InDelta(t, 1.0/(side*side), a.NoiseGain, 1e-12)
	assert.InDelta(t, 1.0, a.PeakGain, 1e-9)

	// sin(x)/x = 1/√2 at x ≈ 1.39156, x = π·f·side.
	want := 1.39156 / (math.Pi * side)
	assert.InDelta(t, want, a.Bandwidth3dBX, 1e-3)
	assert.InDelta(t, want, a.Bandwidth3dBY, 1e-3)
}
