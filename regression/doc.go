// Package regression fits ordinary least-squares lines to paired
// two-dimensional samples.
//
// The package computes the slope and intercept of y = slope*x + intercept
// for a set of (x, y) observations, generic over both the element types of
// the input and the working floating-point precision.
//
// # Core Features
//
//   - Single-pass deviation-sum kernel shared by both input shapes
//   - Two-slice input (parallel x and y sequences, positionally paired)
//   - Paired input (one sequence of Point values, fused mean pass)
//   - Generic element types: any integer or float convertible to the
//     working precision
//   - Caller-selectable working precision (float32 or float64)
//
// # Basic Usage
//
// Fitting from two parallel slices:
//
//	xs := []float64{1, 2, 3, 4, 5}
//	ys := []float64{2, 4, 5, 4, 5}
//
//	slope, intercept, ok := regression.Linear[float64](xs, ys)
//	if !ok {
//	    // degenerate input: mismatched lengths, empty data, or zero x-variance
//	}
//	// slope == 0.6, intercept == 2.2
//
// Fitting from paired samples, with integer elements:
//
//	points := []regression.Point[uint8, uint8]{
//	    {X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 5},
//	}
//	slope, intercept, ok := regression.LinearOfPoints[float64](points)
//
// # Undefined Results
//
// Every failure collapses into the single ok=false outcome: mismatched input
// lengths, empty input, a sample count not exactly representable in the
// working precision, and a non-finite slope (zero x-variance, a single
// point, or a line too steep to represent). Callers must treat ok=false as a
// first-class result; no operation panics or returns an error value.
//
// # Numeric Semantics
//
// Accumulation is plain left-to-right floating-point addition in the working
// precision; no compensated summation is performed. The two input shapes take
// deliberately different paths to the means (two independent passes for the
// slice form, one fused pass for the paired form) and agree within ordinary
// floating-point tolerance.
//
// # Concurrency
//
// Every operation is a pure function over read-only input. Concurrent calls
// need no synchronization as long as the input slices are not mutated during
// the call.
package regression
