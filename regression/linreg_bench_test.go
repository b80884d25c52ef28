package regression

import (
	"fmt"
	"testing"
)

func generateBenchmarkData(size int) ([]float64, []float64) {
	xs := make([]float64, size)
	ys := make([]float64, size)
	for i := range size {
		x := float64(i + 1)
		xs[i] = x
		ys[i] = 1.5*x + 4.0 + float64(i%7)*0.25
	}

	return xs, ys
}

// BenchmarkLinear benchmarks the two-slice adapter.
func BenchmarkLinear(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			xs, ys := generateBenchmarkData(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Linear[float64](xs, ys)
			}
		})
	}
}

// BenchmarkLinearOfPoints benchmarks the paired adapter and its fused mean pass.
func BenchmarkLinearOfPoints(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			xs, ys := generateBenchmarkData(size)
			points := make([]Point[float64, float64], size)
			for i := range size {
				points[i] = Point[float64, float64]{X: xs[i], Y: ys[i]}
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				LinearOfPoints[float64](points)
			}
		})
	}
}

// BenchmarkFit benchmarks the kernel alone with precomputed means.
func BenchmarkFit(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			xs, ys := generateBenchmarkData(size)
			points := make([]Point[float64, float64], size)
			var xSum, ySum float64
			for i := range size {
				points[i] = Point[float64, float64]{X: xs[i], Y: ys[i]}
				xSum += xs[i]
				ySum += ys[i]
			}
			xMean := xSum / float64(size)
			yMean := ySum / float64(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Fit(project[float64](points), xMean, yMean)
			}
		})
	}
}
