package linreg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMean verifies the slice convenience wrapper.
func TestMean(t *testing.T) {
	mean, ok := Mean[float64]([]int{5, 8, 12, 17})
	require.True(t, ok)
	require.Equal(t, 10.5, mean)

	_, ok = Mean[float64]([]int{})
	require.False(t, ok)
}

// TestLinearRegression verifies the two-slice wrapper on the canonical dataset.
func TestLinearRegression(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 5, 4, 5}

	slope, intercept, ok := LinearRegression[float64](xs, ys)
	require.True(t, ok)
	require.InDelta(t, 0.6, slope, 1e-12)
	require.InDelta(t, 2.2, intercept, 1e-12)
}

// TestLinearRegressionOfPoints verifies the paired wrapper with integer
// elements.
func TestLinearRegressionOfPoints(t *testing.T) {
	points := []Point[uint8, uint8]{
		{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 5},
	}

	slope, intercept, ok := LinearRegressionOfPoints[float64](points)
	require.True(t, ok)
	require.InDelta(t, 0.6, slope, 1e-12)
	require.InDelta(t, 2.2, intercept, 1e-12)
}

// TestLinearRegressionNoValue verifies degenerate inputs through the wrappers.
func TestLinearRegressionNoValue(t *testing.T) {
	_, _, ok := LinearRegression[float64]([]int{1, 2}, []int{1})
	require.False(t, ok)

	_, _, ok = LinearRegression[float64]([]int{7, 7, 7}, []int{1, 2, 3})
	require.False(t, ok)
}

// TestFitLine verifies the Line convenience wrapper.
func TestFitLine(t *testing.T) {
	line, ok := FitLine[float64]([]float64{0, 1, 2}, []float64{3, 5, 7})
	require.True(t, ok)
	require.Equal(t, Line[float64]{Slope: 2, Intercept: 3}, line)
	require.Equal(t, 13.0, line.At(5))
}
