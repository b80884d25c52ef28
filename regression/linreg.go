package regression

import (
	"iter"
	"math"
	"slices"

	"github.com/fitkit/linreg/numeric"
	"github.com/fitkit/linreg/stats"
)

// Fit runs the least-squares kernel over already-paired, already-converted
// samples with precomputed means.
//
// This is the lower-level entry point shared by both adapters. It assumes
// the means came from the same data, which implies the sequence is non-empty.
// One pass accumulates the squared x-deviations and the x/y cross-deviations:
//
//	xxm2  = Σ (x - xMean)²
//	xmym2 = Σ (x - xMean)(y - yMean)
//
// and the line follows as slope = xmym2/xxm2, intercept = yMean - slope*xMean.
//
// The division is performed first and the result checked after: a slope that
// comes out NaN or ±Inf means the x-variance was zero (a single point, or all
// x-values identical) or the line is too steep to represent, and both
// conditions collapse into the same ok=false outcome. This is the only
// degenerate-input guard at this layer.
//
// Parameters:
//   - points: Paired samples, both coordinates already in the working type.
//   - xMean: Precomputed mean of the x coordinates.
//   - yMean: Precomputed mean of the y coordinates.
//
// Returns:
//   - slope, intercept: Coefficients of y = slope*x + intercept.
//   - ok: false if the slope is not a finite number.
func Fit[F numeric.Float](points iter.Seq2[F, F], xMean, yMean F) (slope, intercept F, ok bool) {
	var xxm2, xmym2 F
	for x, y := range points {
		dx := x - xMean
		xxm2 += dx * dx
		xmym2 += dx * (y - yMean)
	}

	slope = xmym2 / xxm2

	// Divide-by-zero is checked after the fact.
	if f := float64(slope); math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, 0, false
	}

	intercept = yMean - slope*xMean

	return slope, intercept, true
}

// Linear fits a least-squares line from two parallel slices, one of x- and
// one of y-values, paired positionally.
//
// Each mean is computed in its own pass over its own slice, then the slices
// are zipped into the kernel. Emptiness is detected through the mean: an
// empty slice has no mean, so the fit reports ok=false without a separate
// length check.
//
// Parameters:
//   - xs: Independent values.
//   - ys: Dependent values, same length as xs.
//
// Returns:
//   - slope, intercept: Coefficients of y = slope*x + intercept in the
//     working type F.
//   - ok: false if the lengths differ, the input is empty, the sample count
//     is not exactly representable in F, or the slope is not finite.
//
// Example:
//
//	slope, intercept, ok := regression.Linear[float64](
//	    []float64{1, 2, 3, 4, 5},
//	    []float64{2, 4, 5, 4, 5},
//	)
//	// slope == 0.6, intercept == 2.2, ok == true
func Linear[F numeric.Float, X, Y numeric.Value](xs []X, ys []Y) (slope, intercept F, ok bool) {
	if len(xs) != len(ys) {
		return 0, 0, false
	}

	xMean, ok := stats.Mean[F](slices.Values(xs))
	if !ok {
		return 0, 0, false
	}

	yMean, ok := stats.Mean[F](slices.Values(ys))
	if !ok {
		return 0, 0, false
	}

	return Fit(zip[F](xs, ys), xMean, yMean)
}

// LinearOfPoints fits a least-squares line from a single slice of paired
// samples.
//
// Both coordinate sums are accumulated in one fused pass over the points
// rather than one pass per coordinate; iterating the pairs twice to reuse
// the generic mean would touch every sample's memory twice. The fused pass
// and the two-pass path in Linear are intentionally separate code paths.
//
// Parameters:
//   - points: Paired samples.
//
// Returns:
//   - slope, intercept: Coefficients of y = slope*x + intercept in the
//     working type F.
//   - ok: false if the input is empty, the sample count is not exactly
//     representable in F, or the slope is not finite.
//
// Example:
//
//	points := []regression.Point[float64, float64]{
//	    {X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 5},
//	}
//	slope, intercept, ok := regression.LinearOfPoints[float64](points)
//	// slope == 0.6, intercept == 2.2, ok == true
func LinearOfPoints[F numeric.Float, X, Y numeric.Value](points []Point[X, Y]) (slope, intercept F, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}

	n, ok := numeric.Count[F](len(points))
	if !ok {
		return 0, 0, false
	}

	var xSum, ySum F
	for _, p := range points {
		xSum += F(p.X)
		ySum += F(p.Y)
	}

	return Fit(project[F](points), xSum/n, ySum/n)
}
