package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/instrumath/errs"
)

func sampleCurve(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	return ys
}

func TestAnalyze_SelectsHyperbolic(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := sampleCurve(x, func(v float64) float64 { return 2 + 3/v })

	res, err := Analyze(x, y)
	require.NoError(t, err)
	require.Len(t, res.AllModels, 6)
	require.Empty(t, res.Skipped)
	require.Same(t, res.AllModels[0], res.BestFit)

	require.Equal(t, ModelTypeHyperbolic, res.BestFit.Type)
	require.InDelta(t, 1.0, res.BestFit.RSquared, 1e-12)
	require.InDelta(t, 2.0, res.BestFit.Coefficients[0], 1e-9)
	require.InDelta(t, 3.0, res.BestFit.Coefficients[1], 1e-9)
	require.InDelta(t, 3.5, res.BestFit.Estimator.Estimate(2), 1e-9)

	for i := 1; i < len(res.AllModels); i++ {
		require.GreaterOrEqual(t, res.AllModels[i-1].RSquared, res.AllModels[i].RSquared,
			"models must be ranked by R²")
	}
}

func TestAnalyze_SkipsOutOfDomainModels(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := sampleCurve(x, func(v float64) float64 { return 2 * math.Exp(0.5*v) })

	res, err := Analyze(x, y)
	require.NoError(t, err)
	require.ElementsMatch(t, []ModelType{ModelTypeHyperbolic, ModelTypeLogarithmic, ModelTypePower}, res.Skipped)
	require.Len(t, res.AllModels, 3)

	require.Equal(t, ModelTypeExponential, res.BestFit.Type)
	require.InDelta(t, 2.0, res.BestFit.Coefficients[0], 1e-9)
	require.InDelta(t, 0.5, res.BestFit.Coefficients[1], 1e-9)
}

func TestAnalyze_PowerLaw(t *testing.T) {
	x := []float64{0.5, 1, 2, 4, 8, 16}
	y := sampleCurve(x, func(v float64) float64 { return 1.5 * math.Pow(v, 0.7) })

	res, err := Analyze(x, y, WithModels(ModelTypeLinear, ModelTypePower, ModelTypeLogarithmic))
	require.NoError(t, err)
	require.Equal(t, ModelTypePower, res.BestFit.Type)
	require.InDelta(t, 1.5, res.BestFit.Coefficients[0], 1e-9)
	require.InDelta(t, 0.7, res.BestFit.Coefficients[1], 1e-9)
}

func TestAnalyze_Quadratic(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 3}
	y := sampleCurve(x, func(v float64) float64 { return 1 - 2*v + 0.5*v*v })

	res, err := Analyze(x, y, WithModels(ModelTypeLinear, ModelTypePolynomial))
	require.NoError(t, err)
	require.Equal(t, ModelTypePolynomial, res.BestFit.Type)
	require.InDeltaSlice(t, []float64{1, -2, 0.5}, res.BestFit.Coefficients, 1e-9)
	require.InDelta(t, 0, res.BestFit.RMSE, 1e-9)
}

func TestQuadratic_MatchesGonumLeastSquares(t *testing.T) {
	x := []float64{0.5, 1, 1.7, 2.2, 3, 3.9, 4.4}
	y := []float64{2.1, 2.4, 3.5, 4.0, 6.2, 8.9, 10.1}

	a, b, c, err := quadratic(x, y)
	require.NoError(t, err)

	design := mat.NewDense(len(x), 3, nil)
	for i, xi := range x {
		design.Set(i, 0, 1)
		design.Set(i, 1, xi)
		design.Set(i, 2, xi*xi)
	}
	var beta mat.VecDense
	require.NoError(t, beta.SolveVec(design, mat.NewVecDense(len(y), y)))

	require.InDelta(t, beta.AtVec(0), a, 1e-9)
	require.InDelta(t, beta.AtVec(1), b, 1e-9)
	require.InDelta(t, beta.AtVec(2), c, 1e-9)
}

func TestQuadratic_LargeOffset(t *testing.T) {
	curve := func(v float64) float64 {
		u := v - 1e4
		return 3 + 2*u + 0.5*u*u
	}
	x := []float64{1e4, 1e4 + 1, 1e4 + 2, 1e4 + 3, 1e4 + 4}
	y := sampleCurve(x, curve)

	a, b, c, err := quadratic(x, y)
	require.NoError(t, err)
	require.InDelta(t, 0.5, c, 1e-9)
	for _, v := range x {
		require.InDelta(t, curve(v), a+b*v+c*v*v, 1e-3)
	}

	res, err := Analyze(x, y, WithModels(ModelTypeLinear, ModelTypePolynomial))
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Equal(t, ModelTypePolynomial, res.BestFit.Type)
	require.InDelta(t, 1.0, res.BestFit.RSquared, 1e-9)
}

func TestQuadratic_NeedsThreeDistinctX(t *testing.T) {
	_, _, _, err := quadratic([]float64{1, 1, 2, 2}, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, errs.ErrDegenerateFit)

	_, _, _, err = quadratic([]float64{5, 5, 5}, []float64{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrDegenerateFit)
}

func TestAnalyze_LinearMatchesFitLinear(t *testing.T) {
	x := []float64{0.5, 1.5, 2.5}
	y := []float64{0.35, 0.67, 1.14}

	res, err := Analyze(x, y, WithModels(ModelTypeLinear))
	require.NoError(t, err)

	fit, err := FitLinear(x, y)
	require.NoError(t, err)

	require.Equal(t, ModelTypeLinear, res.BestFit.Type)
	require.InDelta(t, fit.Intercept, res.BestFit.Coefficients[0], 1e-12)
	require.InDelta(t, fit.Slope, res.BestFit.Coefficients[1], 1e-12)
	require.InDelta(t, fit.RSquared, res.BestFit.RSquared, 1e-12)
	require.Equal(t, "y = 0.1275 + 0.395*x", res.BestFit.Formula)
}

func TestAnalyze_TwoPointsSkipsQuadratic(t *testing.T) {
	res, err := Analyze([]float64{1, 2}, []float64{3, 5})
	require.NoError(t, err)
	require.Contains(t, res.Skipped, ModelTypePolynomial)
	require.NotContains(t, res.Skipped, ModelTypeLinear)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := Analyze([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = Analyze([]float64{1}, []float64{1})
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Analyze([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrDegenerateFit)

	_, err = Analyze([]float64{1, 2}, []float64{1, 2}, WithModels())
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = Analyze([]float64{1, 2}, []float64{1, 2}, WithModels(ModelType(99)))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestResultAndModelString(t *testing.T) {
	require.Equal(t, "Result{BestFit: nil}", (&Result{}).String())

	res, err := Analyze([]float64{0, 1, 2}, []float64{1, 3, 5}, WithModels(ModelTypeLinear))
	require.NoError(t, err)
	require.Contains(t, res.String(), "TotalModels: 1")
	require.Contains(t, res.BestFit.String(), "Type: linear")
	require.Contains(t, res.BestFit.String(), "R²: 1.0000")
}
