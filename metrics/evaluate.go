package metrics

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// Report bundles the standard regression evaluation metrics.
type Report struct {
	R2   float64 `json:"R2"`
	RMSE float64 `json:"RMSE"`
	MAE  float64 `json:"MAE"`
}

// Map returns the report under the fixed metric names.
func (r Report) Map() map[string]float64 {
	return map[string]float64{
		"R2":   r.R2,
		"RMSE": r.RMSE,
		"MAE":  r.MAE,
	}
}

// String renders the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("R2=%.6f RMSE=%.6f MAE=%.6f", r.R2, r.RMSE, r.MAE)
}

// MarshalZerologObject adds the metric values to a zerolog event.
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("R2", r.R2).
		Float64("RMSE", r.RMSE).
		Float64("MAE", r.MAE)
}

// Evaluate computes R², RMSE and MAE for a pair of target vectors.
// Input validation is delegated to the individual metrics, so a length
// mismatch or a zero-variance yTrue surfaces as their errors.
func Evaluate(yTrue, yPred *mat.VecDense) (Report, error) {
	r2, err := R2Score(yTrue, yPred)
	if err != nil {
		return Report{}, err
	}

	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		return Report{}, err
	}

	mae, err := MAE(yTrue, yPred)
	if err != nil {
		return Report{}, err
	}

	return Report{R2: r2, RMSE: rmse, MAE: mae}, nil
}
