// Package linear implements linear regression with two interchangeable
// fitting strategies: the closed-form normal equation and full-batch gradient
// descent on the mean squared error.
package linear

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ICAI-IMAT-ML/p2-4-202307302/core/model"
	"github.com/ICAI-IMAT-ML/p2-4-202307302/core/parallel"
	"github.com/ICAI-IMAT-ML/p2-4-202307302/metrics"
	"github.com/ICAI-IMAT-ML/p2-4-202307302/pkg/errors"
	"github.com/ICAI-IMAT-ML/p2-4-202307302/pkg/log"
)

// FitMethod selects the algorithm Fit uses to estimate the parameters.
type FitMethod int

const (
	// LeastSquares solves the normal equation in closed form.
	LeastSquares FitMethod = iota
	// GradientDescent minimizes the mean squared error iteratively.
	GradientDescent
)

// String returns the snake_case method name.
func (m FitMethod) String() string {
	switch m {
	case LeastSquares:
		return "least_squares"
	case GradientDescent:
		return "gradient_descent"
	default:
		return fmt.Sprintf("FitMethod(%d)", int(m))
	}
}

// ParseFitMethod converts a method name into a FitMethod. It accepts
// "least_squares" and "gradient_descent", case insensitively.
func ParseFitMethod(s string) (FitMethod, error) {
	switch strings.ToLower(s) {
	case "least_squares":
		return LeastSquares, nil
	case "gradient_descent":
		return GradientDescent, nil
	default:
		return 0, errors.NewValueError("linear.ParseFitMethod", fmt.Sprintf("unknown fit method %q", s))
	}
}

// LinearRegression is an ordinary least squares model y = X*w + b.
type LinearRegression struct {
	model.BaseEstimator

	Coefficients *mat.VecDense // learned feature weights
	Intercept    float64       // learned bias term
	NFeatures    int           // number of features seen during fit

	method       FitMethod
	learningRate float64
	iterations   int
	seed         uint64
	seeded       bool
}

var (
	_ model.Regressor   = (*LinearRegression)(nil)
	_ model.LinearModel = (*LinearRegression)(nil)
)

// NewLinearRegression creates a linear regression model. Without options the
// model fits with the normal equation; gradient descent uses learning rate
// 0.01 and 1000 iterations unless configured otherwise.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		method:       LeastSquares,
		learningRate: 0.01,
		iterations:   1000,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit estimates the intercept and coefficients from the training data using
// the configured method. X is n×d, y is the n×1 target column. A failed fit
// leaves any previously learned parameters untouched.
func (lr *LinearRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")

	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	switch lr.method {
	case LeastSquares, GradientDescent:
	default:
		return errors.NewValueError("LinearRegression.Fit", fmt.Sprintf("unknown fit method %s", lr.method))
	}
	if lr.learningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be positive", lr.learningRate)
	}
	if lr.iterations < 0 {
		return errors.NewValidationError("iterations", "must not be negative", lr.iterations)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	logger := log.GetLoggerWithName("linear")
	logger.Debug("training started",
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.MethodKey, lr.method.String(),
	)

	var (
		intercept float64
		coefs     *mat.VecDense
		fitErr    error
	)
	if lr.method == LeastSquares {
		intercept, coefs, fitErr = lr.fitLeastSquares(X, y, r, c)
	} else {
		intercept, coefs, fitErr = lr.fitGradientDescent(X, y, r, c)
	}
	if fitErr != nil {
		return fitErr
	}

	lr.Intercept = intercept
	lr.Coefficients = coefs
	lr.NFeatures = c
	lr.SetFitted()

	logger.Debug("training completed",
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.MethodKey, lr.method.String(),
	)
	return nil
}

// fitLeastSquares solves the normal equation beta = (X^T X)^(-1) X^T y with a
// leading column of ones for the intercept. beta[0] is the intercept, the
// rest are the coefficients.
func (lr *LinearRegression) fitLeastSquares(X, y mat.Matrix, r, c int) (float64, *mat.VecDense, error) {
	XWithIntercept := mat.NewDense(r, c+1, nil)

	const parallelThreshold = 1000
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			XWithIntercept.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				XWithIntercept.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var XT mat.Dense
	XT.CloneFrom(XWithIntercept.T())

	var XTX mat.Dense
	XTX.Mul(&XT, XWithIntercept)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return 0, nil, errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, yVec)

	beta := mat.NewVecDense(c+1, nil)
	beta.MulVec(&XTXInv, &XTy)

	if err := errors.CheckMatrix("LinearRegression.Fit", beta, c+1, 1, -1); err != nil {
		return 0, nil, err
	}

	coefs := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		coefs.SetVec(j, beta.AtVec(j+1))
	}
	return beta.AtVec(0), coefs, nil
}

// fitGradientDescent minimizes the mean squared error with full-batch
// gradient descent. Parameters start at small random values in [0, 0.01),
// every step uses all rows, and the loss is logged at debug level every 100
// iterations.
func (lr *LinearRegression) fitGradientDescent(X, y mat.Matrix, r, c int) (float64, *mat.VecDense, error) {
	rng := lr.rng()
	logger := log.GetLoggerWithName("linear")

	intercept := rng.Float64() * 0.01
	coefs := make([]float64, c)
	for j := range coefs {
		coefs[j] = rng.Float64() * 0.01
	}

	n := float64(r)
	residuals := make([]float64, r)
	grads := make([]float64, c)

	for iter := 0; iter < lr.iterations; iter++ {
		for i := 0; i < r; i++ {
			pred := intercept
			for j := 0; j < c; j++ {
				pred += coefs[j] * X.At(i, j)
			}
			residuals[i] = pred - y.At(i, 0)
		}

		if iter%100 == 0 {
			mse := 0.0
			for _, res := range residuals {
				mse += res * res
			}
			mse /= n
			if err := errors.CheckScalar("LinearRegression.Fit", mse, iter); err != nil {
				return 0, nil, err
			}
			logger.Debug("gradient descent progress",
				log.EpochKey, iter,
				log.LossKey, mse,
			)
		}

		gradIntercept := 0.0
		for i := 0; i < r; i++ {
			gradIntercept += residuals[i]
		}
		gradIntercept *= 2 / n

		for j := 0; j < c; j++ {
			grad := 0.0
			for i := 0; i < r; i++ {
				grad += residuals[i] * X.At(i, j)
			}
			grads[j] = grad * 2 / n
		}

		intercept -= lr.learningRate * gradIntercept
		for j := 0; j < c; j++ {
			coefs[j] -= lr.learningRate * grads[j]
		}
	}

	params := append([]float64{intercept}, coefs...)
	if err := errors.CheckNumericalStability("LinearRegression.Fit", params, lr.iterations); err != nil {
		return 0, nil, err
	}

	return intercept, mat.NewVecDense(c, coefs), nil
}

// rng returns the random source for parameter initialization.
func (lr *LinearRegression) rng() *rand.Rand {
	if lr.seeded {
		return rand.New(rand.NewPCG(lr.seed, lr.seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Predict returns the n×1 matrix of predictions for the n×d input X.
func (lr *LinearRegression) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "LinearRegression.Predict")

	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)

	const parallelThreshold = 1000
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := lr.Intercept
			for j := 0; j < c; j++ {
				pred += X.At(i, j) * lr.Coefficients.AtVec(j)
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// GetCoefficients returns a copy of the learned coefficients, nil before Fit.
func (lr *LinearRegression) GetCoefficients() []float64 {
	if lr.Coefficients == nil {
		return nil
	}

	coefs := make([]float64, lr.Coefficients.Len())
	for i := 0; i < lr.Coefficients.Len(); i++ {
		coefs[i] = lr.Coefficients.AtVec(i)
	}
	return coefs
}

// GetIntercept returns the learned intercept, 0 before Fit.
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score returns the coefficient of determination R² of the prediction on the
// given data.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	yTrueVec, err := columnVector(y, "LinearRegression.Score")
	if err != nil {
		return 0, err
	}
	yPredVec, err := columnVector(yPred, "LinearRegression.Score")
	if err != nil {
		return 0, err
	}

	return metrics.R2Score(yTrueVec, yPredVec)
}

// columnVector adapts an n×1 matrix into a VecDense.
func columnVector(m mat.Matrix, op string) (*mat.VecDense, error) {
	r, c := m.Dims()
	if c != 1 {
		return nil, errors.NewValueError(op, "y must be a column vector")
	}
	if v, ok := m.(*mat.VecDense); ok {
		return v, nil
	}
	vec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		vec.SetVec(i, m.At(i, 0))
	}
	return vec, nil
}

// GetParams returns the hyperparameters of the model.
func (lr *LinearRegression) GetParams() map[string]interface{} {
	params := map[string]interface{}{
		"fit_method":    lr.method.String(),
		"learning_rate": lr.learningRate,
		"iterations":    lr.iterations,
	}
	if lr.seeded {
		params["random_state"] = lr.seed
	} else {
		params["random_state"] = nil
	}
	return params
}

// SetParams updates hyperparameters from a map. Keys follow GetParams and
// unknown keys are ignored.
func (lr *LinearRegression) SetParams(params map[string]interface{}) error {
	if val, ok := params["fit_method"].(string); ok {
		method, err := ParseFitMethod(val)
		if err != nil {
			return err
		}
		lr.method = method
	}
	if val, ok := params["learning_rate"].(float64); ok {
		lr.learningRate = val
	}
	if val, ok := params["iterations"].(int); ok {
		lr.iterations = val
	}
	switch val := params["random_state"].(type) {
	case uint64:
		lr.seed = val
		lr.seeded = true
	case int:
		lr.seed = uint64(val)
		lr.seeded = true
	}
	return nil
}

// String returns a string representation of the model.
func (lr *LinearRegression) String() string {
	if !lr.IsFitted() {
		return fmt.Sprintf("LinearRegression(method=%s, fitted=false)", lr.method)
	}
	return fmt.Sprintf("LinearRegression(method=%s, fitted=true, n_features=%d)", lr.method, lr.NFeatures)
}
