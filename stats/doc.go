// Package stats provides the sequence statistics the regression package is
// built on: single-pass summation and arithmetic means over lazy sequences.
//
// # Design
//
// Both operations consume iter.Seq producers rather than slices, so the same
// code path serves owned slices (via slices.Values), projections of paired
// samples, and generated sequences without materializing intermediate
// collections. Accumulation happens in the caller-selected working float type
// F, strictly left to right; no compensated summation is performed.
//
// # Basic Usage
//
//	values := []int{5, 8, 12, 17}
//	mean, ok := stats.Mean[float64](slices.Values(values))
//	if !ok {
//	    // empty input
//	}
//	fmt.Println(mean) // 10.5
//
// An empty sequence has no mean; Mean reports that as ok=false rather than
// returning a zero that could be mistaken for data.
package stats
