package main

import (
	"bytes"
	"image"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		in      string
		sep     string
		want    image.Point
		wantErr bool
	}{
		{"5x5", "x", image.Pt(5, 5), false},
		{" 7X3 ", "x", image.Pt(7, 3), false},
		{"0,4", ",", image.Pt(0, 4), false},
		{"5", "x", image.Point{}, true},
		{"ax5", "x", image.Point{}, true},
		{"5x", "x", image.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePair(tt.in, tt.sep)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunPrintsKernel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-size", "5x1", "-hdeg", "2", "-vdeg", "0"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "5x1 kernel, degree (2, 0), origin (2,0)", lines[0])
	assert.Equal(t, []string{"-0.0857", "0.3429", "0.4857", "0.3429", "-0.0857"}, strings.Fields(lines[1]))
}

func TestRunDerivative(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-size", "5x1", "-hdeg", "2", "-vdeg", "0", "-dx", "1", "-precision", "6"},
		&stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "derivative (1, 0)")
	want := []float64{-0.2, -0.1, 0, 0.1, 0.2}
	fields := strings.Fields(lines[1])
	require.Len(t, fields, len(want))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		assert.InDelta(t, want[i], v, 1e-9, "weight %d", i)
	}
}

func TestRunAnalyze(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-size", "3x3", "-hdeg", "0", "-vdeg", "0", "-analyze"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "DC gain")
	assert.Contains(t, stdout.String(), "1.000000")
	assert.Contains(t, stdout.String(), "0.111111")
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-size", "3x3", "-hdeg", "3", "-vdeg", "3"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid configuration")
	assert.Empty(t, stdout.String())
}

func TestRunRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-size", "five"},
		{"-origin", "1"},
		{"-dx", "-1"},
		{"-precision", "-2"},
		{"extra"},
	} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(args, &stdout, &stderr), "args %q", args)
	}
}
