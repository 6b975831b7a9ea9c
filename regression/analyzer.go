package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/internal/options"
)

// errOutOfDomain marks data a model cannot be fitted to, e.g. ln(x) with x <= 0.
var errOutOfDomain = errors.New("data outside model domain")

// Analyze fits every candidate calibration curve to the paired samples and
// ranks them by R².
//
// Parameters:
//   - x: stimulus values (e.g. applied pressure)
//   - y: sensor outputs (e.g. measured voltage)
//   - opts: WithModels to restrict the candidates
//
// Returns:
//   - *Result: best-fit model and all fitted candidates
//   - error: errs.ErrLengthMismatch, errs.ErrInsufficientData, or
//     errs.ErrDegenerateFit when no candidate could be fitted
//
// Models whose domain the data violates (non-positive x for logarithmic and
// power, zero x for hyperbolic, non-positive y for power and exponential) or
// whose normal equations are singular are listed in Result.Skipped instead.
//
// Example:
//
//	res, err := regression.Analyze(pressure, volts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.BestFit.Formula)
func Analyze(x, y []float64, opts ...AnalyzeOption) (*Result, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: insufficient data points for regression: %d", errs.ErrInsufficientData, len(x))
	}

	cfg, err := options.Build(defaultAnalyzeConfig(), opts...)
	if err != nil {
		return nil, err
	}

	res := &Result{AllModels: make([]*Model, 0, len(cfg.Models))}
	for _, mt := range cfg.Models {
		m, err := fitModel(mt, x, y)
		if err != nil {
			if errors.Is(err, errOutOfDomain) || errors.Is(err, errs.ErrDegenerateFit) || errors.Is(err, errs.ErrInsufficientData) {
				res.Skipped = append(res.Skipped, mt)
				continue
			}

			return nil, fmt.Errorf("failed to fit %s model: %w", mt, err)
		}
		res.AllModels = append(res.AllModels, m)
	}

	if len(res.AllModels) == 0 {
		return nil, fmt.Errorf("%w: no candidate model could be fitted", errs.ErrDegenerateFit)
	}

	// Stable sort keeps the configured order on equal R², so simpler models win ties.
	slices.SortStableFunc(res.AllModels, func(a, b *Model) int {
		switch {
		case a.RSquared > b.RSquared:
			return -1
		case a.RSquared < b.RSquared:
			return 1
		default:
			return 0
		}
	})
	res.BestFit = res.AllModels[0]

	return res, nil
}

// fitModel fits one model type. Transformed models reduce to a straight-line
// fit on (tx(x), ty(y)), as in:
//
//	hyperbolic:  y     = a + b·(1/x)
//	logarithmic: y     = a + b·ln(x)
//	power:       ln(y) = ln(a) + b·ln(x)
//	exponential: ln(y) = ln(a) + b·x
func fitModel(mt ModelType, x, y []float64) (*Model, error) {
	switch mt {
	case ModelTypeLinear:
		slope, intercept, err := leastSquares(x, y)
		if err != nil {
			return nil, err
		}

		return finishModel(NewLinearEstimator(intercept, slope), x, y), nil

	case ModelTypeHyperbolic:
		tx, err := transform(x, func(v float64) float64 { return 1 / v }, func(v float64) bool { return v != 0 })
		if err != nil {
			return nil, err
		}
		slope, intercept, err := leastSquares(tx, y)
		if err != nil {
			return nil, err
		}

		return finishModel(NewHyperbolicEstimator(intercept, slope), x, y), nil

	case ModelTypeLogarithmic:
		tx, err := transform(x, math.Log, positive)
		if err != nil {
			return nil, err
		}
		slope, intercept, err := leastSquares(tx, y)
		if err != nil {
			return nil, err
		}

		return finishModel(NewLogarithmicEstimator(intercept, slope), x, y), nil

	case ModelTypePower:
		tx, err := transform(x, math.Log, positive)
		if err != nil {
			return nil, err
		}
		ty, err := transform(y, math.Log, positive)
		if err != nil {
			return nil, err
		}
		slope, intercept, err := leastSquares(tx, ty)
		if err != nil {
			return nil, err
		}

		return finishModel(NewPowerEstimator(math.Exp(intercept), slope), x, y), nil

	case ModelTypeExponential:
		ty, err := transform(y, math.Log, positive)
		if err != nil {
			return nil, err
		}
		slope, intercept, err := leastSquares(x, ty)
		if err != nil {
			return nil, err
		}

		return finishModel(NewExponentialEstimator(math.Exp(intercept), slope), x, y), nil

	case ModelTypePolynomial:
		a, b, c, err := quadratic(x, y)
		if err != nil {
			return nil, err
		}

		return finishModel(NewPolynomialEstimator(a, b, c), x, y), nil

	default:
		return nil, fmt.Errorf("unknown model type: %d", mt)
	}
}

// quadratic fits y = a + b*x + c*x² by solving the 3x3 normal equations
//
//	[n    Σu   Σu²] [a']   [Σy  ]
//	[Σu   Σu²  Σu³] [b'] = [Σuy ]
//	[Σu²  Σu³  Σu⁴] [c']   [Σu²y]
//
// with Cramer's rule, on u = x - x̄, then shifts the coefficients back to x.
func quadratic(x, y []float64) (a, b, c float64, err error) {
	if len(x) < 3 {
		return 0, 0, 0, fmt.Errorf("%w: quadratic fit needs at least 3 samples, got %d", errs.ErrInsufficientData, len(x))
	}

	sorted := slices.Clone(x)
	slices.Sort(sorted)
	if distinct := len(slices.Compact(sorted)); distinct < 3 {
		return 0, 0, 0, fmt.Errorf("%w: quadratic fit needs 3 distinct x values, got %d", errs.ErrDegenerateFit, distinct)
	}

	meanX := calculateMean(x)
	var sumU, sumU2, sumU3, sumU4, sumY, sumUY, sumU2Y float64
	for i := range x {
		u := x[i] - meanX
		u2 := u * u
		sumU += u
		sumU2 += u2
		sumU3 += u2 * u
		sumU4 += u2 * u2
		sumY += y[i]
		sumUY += u * y[i]
		sumU2Y += u2 * y[i]
	}
	n := float64(len(x))

	m := [3][3]float64{
		{n, sumU, sumU2},
		{sumU, sumU2, sumU3},
		{sumU2, sumU3, sumU4},
	}
	rhs := [3]float64{sumY, sumUY, sumU2Y}

	det := det3(m)
	if det <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: quadratic determinant %g", errs.ErrDegenerateFit, det)
	}

	var sol [3]float64
	for col := range 3 {
		mc := m
		for row := range 3 {
			mc[row][col] = rhs[row]
		}
		sol[col] = det3(mc) / det
	}

	// y = a' + b'(x - x̄) + c'(x - x̄)²
	c = sol[2]
	b = sol[1] - 2*c*meanX
	a = sol[0] - sol[1]*meanX + c*meanX*meanX

	return a, b, c, nil
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func positive(v float64) bool { return v > 0 }

// transform applies fn to every value, failing with errOutOfDomain if any value is rejected by ok.
func transform(values []float64, fn func(float64) float64, ok func(float64) bool) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if !ok(v) {
			return nil, fmt.Errorf("%w: value %g at index %d", errOutOfDomain, v, i)
		}
		out[i] = fn(v)
	}

	return out, nil
}

// finishModel computes fit metrics in the original y space and builds the Model.
func finishModel(est Estimator, x, y []float64) *Model {
	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = est.Estimate(x[i])
	}

	return &Model{
		Type:         est.Type(),
		Coefficients: est.Coefficients(),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      formatFormula(est),
		Estimator:    est,
	}
}

func formatFormula(est Estimator) string {
	c := est.Coefficients()
	switch est.Type() {
	case ModelTypeLinear:
		return fmt.Sprintf("y = %.4g + %.4g*x", c[0], c[1])
	case ModelTypeHyperbolic:
		return fmt.Sprintf("y = %.4g + %.4g / x", c[0], c[1])
	case ModelTypeLogarithmic:
		return fmt.Sprintf("y = %.4g + %.4g * ln(x)", c[0], c[1])
	case ModelTypePower:
		return fmt.Sprintf("y = %.4g * x^%.4g", c[0], c[1])
	case ModelTypeExponential:
		return fmt.Sprintf("y = %.4g * e^(%.4g * x)", c[0], c[1])
	case ModelTypePolynomial:
		return fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x²", c[0], c[1], c[2])
	default:
		return "unknown"
	}
}

// calculateRSquared calculates the coefficient of determination.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Σ(observed - predicted)²
//   - SS_tot: Σ(observed - mean)²
//
// Returns 0 when the observations have no variance.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
