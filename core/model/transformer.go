package model

import "gonum.org/v1/gonum/mat"

// Transformer is the interface for categorical feature transformations.
type Transformer interface {
	// Fit learns the parameters needed for the transformation.
	Fit(X [][]string) error

	// Transform applies the learned transformation.
	Transform(X [][]string) (mat.Matrix, error)

	// FitTransform runs Fit and Transform in one call.
	FitTransform(X [][]string) (mat.Matrix, error)
}
