package linear

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// createBenchmarkData generates reproducible regression data with a known
// linear relationship plus a little noise.
func createBenchmarkData(rows, cols int) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewPCG(42, 42))

	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, rng.Float64()*2.0-1.0)
		}
	}

	trueWeights := make([]float64, cols)
	for j := 0; j < cols; j++ {
		trueWeights[j] = float64(j+1) * 0.5
	}

	y := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		sum := 1.0
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * trueWeights[j]
		}
		sum += (rng.Float64() - 0.5) * 0.1
		y.Set(i, 0, sum)
	}

	return X, y
}

func BenchmarkLinearRegressionFit(b *testing.B) {
	sizes := []struct {
		name string
		rows int
		cols int
	}{
		{"Small_100x10", 100, 10},
		{"Medium_1000x10", 1000, 10}, // parallel threshold
		{"Medium_2000x10", 2000, 10},
		{"Large_5000x20", 5000, 20},
		{"Large_10000x20", 10000, 20},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			X, y := createBenchmarkData(size.rows, size.cols)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				lr := NewLinearRegression()
				if err := lr.Fit(X, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLinearRegressionFitGradientDescent(b *testing.B) {
	sizes := []struct {
		name  string
		rows  int
		iters int
	}{
		{"Small_100x5x100", 100, 100},
		{"Medium_1000x5x100", 1000, 100},
		{"Long_100x5x1000", 100, 1000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			X, y := createBenchmarkData(size.rows, 5)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				lr := NewLinearRegression(
					WithFitMethod(GradientDescent),
					WithIterations(size.iters),
					WithRandomState(42),
				)
				if err := lr.Fit(X, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLinearRegressionPredict(b *testing.B) {
	sizes := []struct {
		name string
		rows int
		cols int
	}{
		{"Small_100x10", 100, 10},
		{"Medium_2000x10", 2000, 10},
		{"Large_10000x20", 10000, 20},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			X, y := createBenchmarkData(size.rows, size.cols)
			lr := NewLinearRegression()
			if err := lr.Fit(X, y); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := lr.Predict(X); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
