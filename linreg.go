// Package linreg computes ordinary least-squares linear regressions over
// paired two-dimensional samples.
//
// The library fits a line y = slope*x + intercept to a set of (x, y)
// observations, accepting input either as two parallel slices or as a slice
// of pairs, generically over any numeric element type and over the working
// floating-point precision (float32 or float64).
//
// # Core Features
//
//   - Two input shapes: parallel slices and paired samples
//   - Generic element types (any int/uint/float) converted per call
//   - Caller-selectable working precision via the type parameter F
//   - Single collapsed "no value" outcome for every degenerate input
//   - Pure functions, safe for concurrent use over immutable input
//
// # Basic Usage
//
// Fitting from two slices:
//
//	import "github.com/fitkit/linreg"
//
//	xs := []float64{1, 2, 3, 4, 5}
//	ys := []float64{2, 4, 5, 4, 5}
//
//	slope, intercept, ok := linreg.LinearRegression[float64](xs, ys)
//	// slope == 0.6, intercept == 2.2, ok == true
//
// Fitting from paired samples:
//
//	points := []linreg.Point[uint8, uint8]{
//	    {X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 5},
//	}
//	slope, intercept, ok := linreg.LinearRegressionOfPoints[float64](points)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression
// and stats packages, covering the common cases. For the lower-level kernel
// and lazy-sequence entry points, use those packages directly.
package linreg

import (
	"slices"

	"github.com/fitkit/linreg/numeric"
	"github.com/fitkit/linreg/regression"
	"github.com/fitkit/linreg/stats"
)

// Point represents a single paired sample (x, y).
type Point[X, Y numeric.Value] = regression.Point[X, Y]

// Line represents a fitted regression line.
type Line[F numeric.Float] = regression.Line[F]

// Mean computes the arithmetic mean of a slice of numeric values in the
// working float type F.
//
// Returns the mean and true, or (0, false) if the slice is empty or its
// length is not exactly representable in F. For lazy sequences, use
// stats.Mean directly.
//
// Example:
//
//	mean, ok := linreg.Mean[float64]([]int{5, 8, 12, 17})
//	// mean == 10.5, ok == true
func Mean[F numeric.Float, T numeric.Value](values []T) (F, bool) {
	return stats.Mean[F](slices.Values(values))
}

// LinearRegression fits a least-squares line from two parallel slices,
// paired positionally.
//
// Returns (0, 0, false) if the lengths differ, the input is empty, the
// sample count is not exactly representable in F, or the slope is not a
// finite number (zero x-variance, a single point, or a line too steep to
// represent).
func LinearRegression[F numeric.Float, X, Y numeric.Value](xs []X, ys []Y) (slope, intercept F, ok bool) {
	return regression.Linear[F](xs, ys)
}

// LinearRegressionOfPoints fits a least-squares line from a slice of paired
// samples, accumulating both coordinate means in a single fused pass.
//
// The failure conditions match LinearRegression, minus the length-mismatch
// case that paired input cannot express.
func LinearRegressionOfPoints[F numeric.Float, X, Y numeric.Value](points []Point[X, Y]) (slope, intercept F, ok bool) {
	return regression.LinearOfPoints[F](points)
}

// FitLine fits a least-squares line from two parallel slices and returns the
// result as a Line ready for evaluation.
func FitLine[F numeric.Float, X, Y numeric.Value](xs []X, ys []Y) (Line[F], bool) {
	return regression.LinearLine[F](xs, ys)
}
