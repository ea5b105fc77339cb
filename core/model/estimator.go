package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on the given data.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that produce predictions.
type Predictor interface {
	// Predict returns predictions for the input data.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the base interface shared by all learners.
type Estimator interface {
	Fitter

	// IsFitted reports whether the model has been trained.
	IsFitted() bool

	// Reset returns the model to its untrained state.
	Reset()
}

// LinearModel is the interface for fitted linear models.
type LinearModel interface {
	// GetCoefficients returns the learned feature coefficients.
	GetCoefficients() []float64
	// GetIntercept returns the learned intercept.
	GetIntercept() float64
	// Score computes the coefficient of determination R² of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}
