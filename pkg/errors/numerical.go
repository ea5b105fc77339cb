package errors

import (
	"math"
)

func unstable(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// CheckScalar checks a single value for NaN or Inf and returns a
// NumericalInstabilityError if found.
func CheckScalar(operation string, value float64, iteration int) error {
	if unstable(value) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// CheckNumericalStability checks a slice of values for NaN or Inf and returns
// a NumericalInstabilityError carrying the full slice if any value is unstable.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if unstable(v) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// CheckMatrix scans a matrix for NaN or Inf. The offending values are
// collected into the returned error, capped so the message stays readable.
func CheckMatrix(operation string, matrix interface{ At(int, int) float64 }, rows, cols, iteration int) error {
	const maxReported = 10

	var bad []float64
	for i := 0; i < rows && len(bad) < maxReported; i++ {
		for j := 0; j < cols && len(bad) < maxReported; j++ {
			if v := matrix.At(i, j); unstable(v) {
				bad = append(bad, v)
			}
		}
	}
	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad, iteration)
	}
	return nil
}
