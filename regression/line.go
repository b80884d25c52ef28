package regression

import (
	"fmt"

	"github.com/fitkit/linreg/numeric"
)

// Line represents a fitted regression line y = Slope*x + Intercept.
//
// It packages the two coefficients as a value that can evaluate the line at
// arbitrary x, which is the usual next step after a fit (prediction,
// residual inspection, regenerating a dataset).
type Line[F numeric.Float] struct {
	// Slope is the rate of change of y per unit x.
	Slope F
	// Intercept is the value of y at x = 0.
	Intercept F
}

// At evaluates the line at x.
func (l Line[F]) At(x F) F {
	return l.Slope*x + l.Intercept
}

// String returns a human-readable formula for the line.
func (l Line[F]) String() string {
	return fmt.Sprintf("y = %v*x + %v", l.Slope, l.Intercept)
}

// LinearLine fits a least-squares line from two parallel slices and returns
// the result as a Line.
//
// This is Linear with the coefficients packaged for evaluation; the failure
// conditions are identical.
func LinearLine[F numeric.Float, X, Y numeric.Value](xs []X, ys []Y) (Line[F], bool) {
	slope, intercept, ok := Linear[F](xs, ys)
	if !ok {
		return Line[F]{}, false
	}

	return Line[F]{Slope: slope, Intercept: intercept}, true
}
