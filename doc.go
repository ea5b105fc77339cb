// Package imatml provides a compact machine learning toolkit for Go built
// around linear regression, with the data preparation and evaluation pieces
// needed to use it end to end.
//
// The API follows scikit-learn conventions: estimators are constructed, fitted
// with Fit, applied with Predict or Transform, and report their quality with
// Score.
//
// # Quick Start
//
// Fitting a line through exactly linear data:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/ICAI-IMAT-ML/p2-4-202307302/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
//
//	    model := linear.NewLinearRegression()
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(mat.NewDense(2, 1, []float64{5, 6}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(pred))
//	}
//
// The model can also be trained iteratively:
//
//	model := linear.NewLinearRegression(
//	    linear.WithFitMethod(linear.GradientDescent),
//	    linear.WithLearningRate(0.01),
//	    linear.WithIterations(1000),
//	    linear.WithRandomState(42),
//	)
//
// # Packages
//
//   - linear: linear regression with normal equation and gradient descent
//   - metrics: regression metrics (MSE, RMSE, MAE, R², MAPE) and reports
//   - preprocessing: mixed-type tables and one-hot encoding
//   - core/model: estimator interfaces and shared state handling
//   - core/parallel: chunked parallel execution used by the estimators
//   - pkg/errors: error types, numerical stability checks and warnings
//   - pkg/log: structured logging facade backed by zerolog
//
// Training on datasets with more than 1000 rows parallelizes automatically
// across CPU cores.
package imatml
