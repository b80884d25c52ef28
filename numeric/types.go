// Package numeric provides the shared generic constraints and conversions used
// by the stats and regression packages.
//
// The two constraints split the type surface the way the library uses it:
// Float is the caller-selectable working precision for accumulation and
// results, while Value covers every element type a sample sequence may carry.
package numeric

// Float constrains the working floating-point type used for accumulation and
// results. Callers select the precision per call by instantiating with
// float32 or float64.
type Float interface {
	~float32 | ~float64
}

// Value constrains the element types a sample sequence may carry. Every type
// in the set converts to a Float working type with ordinary Go conversion
// semantics; integer values wider than the working type's mantissa convert
// with rounding, which callers accept by choosing a narrow working type.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Count converts a sample count to the working float type F, requiring the
// conversion to be exact.
//
// A count that exceeds the mantissa of F (2^24 for float32, 2^53 for float64)
// would silently skew any mean computed with it, so inexact counts are
// rejected rather than rounded. Negative counts are rejected as well.
//
// Returns:
//   - F: The count as a working float value.
//   - bool: false if n is negative or not exactly representable in F.
func Count[F Float](n int) (F, bool) {
	if n < 0 {
		return 0, false
	}

	f := F(n)
	// Guard the int conversion: F(n) can round up to 2^63, which does not
	// fit back into an int.
	if f >= 1<<63 || int(f) != n {
		return 0, false
	}

	return f, true
}
