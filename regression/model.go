package regression

import "fmt"

// Model is a fitted calibration curve with its goodness-of-fit metrics.
//
// Fields:
//   - Type: the curve shape
//   - Coefficients: the fitted parameters, "a" first
//   - RSquared: coefficient of determination in the original y space
//   - RMSE: root mean square error, in units of y
//   - Formula: human-readable formula
//   - Estimator: evaluates the fitted curve
type Model struct {
	Type         ModelType
	Coefficients []float64
	RSquared     float64
	RMSE         float64
	Formula      string
	Estimator    Estimator
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4g, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of Analyze.
//
// BestFit is the model with the highest R². AllModels holds every model
// that could be fitted, ranked by R² (best first). Skipped lists the
// requested model types whose domain the data violates.
type Result struct {
	BestFit   *Model
	AllModels []*Model
	Skipped   []ModelType
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}", r.BestFit, len(r.AllModels))
}
