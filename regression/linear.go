package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/result"
)

// LinearFit is the least-squares line y = Slope*x + Intercept over paired samples.
type LinearFit struct {
	// Slope is the sensitivity a.
	Slope float64
	// Intercept is the offset b.
	Intercept float64
	// MaxResidual is max |y_i - (a*x_i + b)|.
	MaxResidual float64
	// RSquared is the coefficient of determination.
	RSquared float64
	// RMSE is the root mean square residual.
	RMSE float64
	// Residuals holds y_i - (a*x_i + b) in sample order.
	Residuals []float64
	// N is the number of samples.
	N int
}

// FitLinear fits y = a*x + b by least squares using the closed form of the
// normal equations (Cramer's rule):
//
//	D = N·Σx² - (Σx)²
//	a = (N·Σxy - Σx·Σy) / D
//	b = (Σx²·Σy - Σx·Σxy) / D
//
// Errors:
//   - errs.ErrLengthMismatch: len(x) != len(y)
//   - errs.ErrInsufficientData: fewer than 2 samples
//   - errs.ErrDegenerateFit: D is zero, i.e. all x values identical
func FitLinear(x, y []float64) (*LinearFit, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: linear fit needs at least 2 samples, got %d", errs.ErrInsufficientData, len(x))
	}

	a, b, err := leastSquares(x, y)
	if err != nil {
		return nil, err
	}

	fit := &LinearFit{Slope: a, Intercept: b, N: len(x), Residuals: make([]float64, len(x))}
	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = a*x[i] + b
		fit.Residuals[i] = y[i] - predicted[i]
		fit.MaxResidual = math.Max(fit.MaxResidual, math.Abs(fit.Residuals[i]))
	}
	fit.RSquared = calculateRSquared(y, predicted)
	fit.RMSE = calculateRMSE(y, predicted)

	return fit, nil
}

// leastSquares returns slope and intercept of the least-squares line.
// Inputs must have equal length; the caller checks it.
func leastSquares(x, y []float64) (slope, intercept float64, err error) {
	if slices.Min(x) == slices.Max(x) {
		return 0, 0, fmt.Errorf("%w: all %d x values equal %g", errs.ErrDegenerateFit, len(x), x[0])
	}

	n := float64(len(x))
	meanX, meanY := calculateMean(x), calculateMean(y)

	// Centered sums: D = N·Σx² - (Σx)² = N·Σ(x-x̄)², computed without the
	// cancellation that large x offsets cause.
	var sxx, sxy float64
	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	det := n * sxx
	if det == 0 {
		return 0, 0, fmt.Errorf("%w: determinant %g", errs.ErrDegenerateFit, det)
	}

	slope = n * sxy / det
	intercept = meanY - slope*meanX

	return slope, intercept, nil
}

// Estimate returns a*x + b.
func (f *LinearFit) Estimate(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Invert returns the input x that produces output y: (y - b) / a.
// This turns a sensor calibration line back into a measurand reading.
func (f *LinearFit) Invert(y float64) float64 {
	return (y - f.Intercept) / f.Slope
}

// Estimator returns the fit as a linear Estimator.
func (f *LinearFit) Estimator() Estimator {
	return NewLinearEstimator(f.Intercept, f.Slope)
}

// Result returns the fit as a structured result with the slope as primary value.
func (f *LinearFit) Result() result.Result {
	return result.New("linear-fit", result.Quantity{Name: "a", Symbol: "a", Value: f.Slope}).
		With("b", "b", f.Intercept, "").
		With("max_residual", "max|e|", f.MaxResidual, "").
		With("r_squared", "R²", f.RSquared, "").
		With("rmse", "RMSE", f.RMSE, "")
}

// String returns the line and its fit metrics.
func (f *LinearFit) String() string {
	return fmt.Sprintf("y = %.4f*x %+.4f (N=%d, max|e|=%.4f, R²=%.4f)",
		f.Slope, f.Intercept, f.N, f.MaxResidual, f.RSquared)
}
