package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the shape of a calibration curve.
type ModelType int

const (
	// ModelTypeLinear represents the straight line: y = a + b*x
	ModelTypeLinear ModelType = iota
	// ModelTypeHyperbolic represents the hyperbolic model: y = a + b / x
	ModelTypeHyperbolic
	// ModelTypeLogarithmic represents the logarithmic model: y = a + b * ln(x)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: y = a * x^b
	ModelTypePower
	// ModelTypeExponential represents the exponential model: y = a * e^(b * x)
	ModelTypeExponential
	// ModelTypePolynomial represents the quadratic model: y = a + b*x + c*x²
	ModelTypePolynomial
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypePolynomial:  "polynomial",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a given name, case-insensitive.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	name = strings.ToLower(strings.TrimSpace(name))
	for mt, n := range modelTypeNames {
		if n == name {
			return mt
		}
	}

	return ModelType(-1)
}

// coefficientCount returns how many coefficients a model type takes, or 0 if unknown.
func coefficientCount(mt ModelType) int {
	switch mt {
	case ModelTypePolynomial:
		return 3
	case ModelTypeLinear, ModelTypeHyperbolic, ModelTypeLogarithmic, ModelTypePower, ModelTypeExponential:
		return 2
	default:
		return 0
	}
}

// Estimator evaluates a fitted calibration curve.
type Estimator interface {
	// Estimate returns y for the input x. Inputs outside the model's domain
	// return NaN (log and power need x > 0) or ±Inf (hyperbolic at x = 0).
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients, "a" first.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. The count must match the
	// model: 3 for polynomial, 2 for every other type.
	SetCoefficients(coeffs []float64) error
}

// curve is the single Estimator implementation; the model type picks the formula.
type curve struct {
	mt     ModelType
	coeffs []float64
}

// NewLinearEstimator creates y = a + b*x.
func NewLinearEstimator(a, b float64) Estimator {
	return &curve{mt: ModelTypeLinear, coeffs: []float64{a, b}}
}

// NewHyperbolicEstimator creates y = a + b/x.
func NewHyperbolicEstimator(a, b float64) Estimator {
	return &curve{mt: ModelTypeHyperbolic, coeffs: []float64{a, b}}
}

// NewLogarithmicEstimator creates y = a + b*ln(x).
func NewLogarithmicEstimator(a, b float64) Estimator {
	return &curve{mt: ModelTypeLogarithmic, coeffs: []float64{a, b}}
}

// NewPowerEstimator creates y = a*x^b.
func NewPowerEstimator(a, b float64) Estimator {
	return &curve{mt: ModelTypePower, coeffs: []float64{a, b}}
}

// NewExponentialEstimator creates y = a*e^(b*x).
func NewExponentialEstimator(a, b float64) Estimator {
	return &curve{mt: ModelTypeExponential, coeffs: []float64{a, b}}
}

// NewPolynomialEstimator creates y = a + b*x + c*x².
func NewPolynomialEstimator(a, b, c float64) Estimator {
	return &curve{mt: ModelTypePolynomial, coeffs: []float64{a, b, c}}
}

func (c *curve) Estimate(x float64) float64 {
	a, b := c.coeffs[0], c.coeffs[1]
	switch c.mt {
	case ModelTypeLinear:
		return a + b*x
	case ModelTypeHyperbolic:
		return a + b/x
	case ModelTypeLogarithmic:
		if x <= 0 {
			return math.NaN()
		}
		return a + b*math.Log(x)
	case ModelTypePower:
		if x <= 0 {
			return math.NaN()
		}
		return a * math.Pow(x, b)
	case ModelTypeExponential:
		return a * math.Exp(b*x)
	case ModelTypePolynomial:
		return a + b*x + c.coeffs[2]*x*x
	default:
		return math.NaN()
	}
}

func (c *curve) Type() ModelType {
	return c.mt
}

func (c *curve) Coefficients() []float64 {
	return slices.Clone(c.coeffs)
}

func (c *curve) SetCoefficients(coeffs []float64) error {
	if want := coefficientCount(c.mt); len(coeffs) != want {
		return fmt.Errorf("%s model expects exactly %d coefficients, got %d", c.mt, want, len(coeffs))
	}
	copy(c.coeffs, coeffs)

	return nil
}

// NewEstimator creates an estimator by model name and coefficients.
//
// Parameters:
//   - name: the model name, case-insensitive: "linear", "hyperbolic",
//     "logarithmic", "power", "exponential" or "polynomial"
//   - coeffs: the model coefficients, 3 for polynomial and 2 otherwise
//
// Example:
//
//	est, err := regression.NewEstimator("linear", []float64{0.1275, 0.395})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	volts := est.Estimate(2.0)
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	mt := ModelTypeFromString(name)
	if mt == ModelType(-1) {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	est := &curve{mt: mt, coeffs: make([]float64, coefficientCount(mt))}
	if err := est.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return est, nil
}
