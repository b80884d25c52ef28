package stats

import (
	"iter"

	"github.com/fitkit/linreg/numeric"
)

// Sum accumulates a sequence of values into the working float type F.
//
// The sequence is consumed exactly once, left to right, converting each
// element to F before adding. An empty sequence sums to zero.
func Sum[F numeric.Float, T numeric.Value](values iter.Seq[T]) F {
	var total F
	for v := range values {
		total += F(v)
	}

	return total
}

// Mean computes the arithmetic mean of a sequence of values in the working
// float type F.
//
// The sequence is consumed lazily in a single pass; it is never materialized,
// so producers backed by projections or generators work the same as slices.
// The element count is converted to F exactly via numeric.Count — a count
// that cannot be represented in F would silently skew the result, so it is
// rejected instead.
//
// Parameters:
//   - values: Any finite producer of values convertible to F.
//
// Returns:
//   - F: The arithmetic mean.
//   - bool: false if the sequence is empty or its length is not exactly
//     representable in F.
//
// Example:
//
//	mean, ok := stats.Mean[float64](slices.Values([]int{5, 8, 12, 17}))
//	// mean == 10.5, ok == true
func Mean[F numeric.Float, T numeric.Value](values iter.Seq[T]) (F, bool) {
	var sum F
	count := 0
	for v := range values {
		sum += F(v)
		count++
	}

	if count == 0 {
		return 0, false
	}

	n, ok := numeric.Count[F](count)
	if !ok {
		return 0, false
	}

	return sum / n, true
}
