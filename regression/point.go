package regression

import (
	"iter"

	"github.com/fitkit/linreg/numeric"
)

// Point represents a single paired sample (x, y) with independently-typed
// coordinates.
type Point[X, Y numeric.Value] struct {
	// X is the independent coordinate.
	X X
	// Y is the dependent coordinate.
	Y Y
}

// zip pairs two equal-length slices positionally, converting both coordinates
// to the working float type. Callers validate lengths before zipping.
func zip[F numeric.Float, X, Y numeric.Value](xs []X, ys []Y) iter.Seq2[F, F] {
	return func(yield func(F, F) bool) {
		for i := range xs {
			if !yield(F(xs[i]), F(ys[i])) {
				return
			}
		}
	}
}

// project converts a slice of points into a sequence of working-float pairs.
func project[F numeric.Float, X, Y numeric.Value](points []Point[X, Y]) iter.Seq2[F, F] {
	return func(yield func(F, F) bool) {
		for _, p := range points {
			if !yield(F(p.X), F(p.Y)) {
				return
			}
		}
	}
}
