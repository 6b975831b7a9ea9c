package accuracy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/internal/options"
	"github.com/arloliu/instrumath/result"
)

// DefaultStep is the central-difference step used by Linearize.
const DefaultStep = 1e-5

// LinearizeConfig holds the numerical settings of Linearize.
type LinearizeConfig struct {
	Step float64
}

// LinearizeOption configures Linearize.
type LinearizeOption = options.Option[*LinearizeConfig]

// WithStep sets the finite-difference step h. It must be positive.
func WithStep(h float64) LinearizeOption {
	return options.New(func(cfg *LinearizeConfig) error {
		if h <= 0 || math.IsNaN(h) {
			return fmt.Errorf("%w: step must be positive, got %g", errs.ErrInvalidOption, h)
		}
		cfg.Step = h

		return nil
	})
}

// Sensitivity returns the central-difference derivative (f(x0+h) - f(x0-h)) / 2h.
func Sensitivity(f func(float64) float64, x0, h float64) float64 {
	return fd.Derivative(f, x0, &fd.Settings{Formula: fd.Central, Step: h})
}

// Linearize evaluates the first-order Taylor approximation of f around the
// operating point x0 at x:
//
//	y ≈ f(x0) + S·(x - x0),  S = f'(x0)
//
// S is computed numerically with a central difference.
//
// Derived quantities: "s" (sensitivity), "y0" = f(x0), "exact" = f(x) and
// "error" = |y - f(x)|.
func Linearize(f func(float64) float64, x0, x float64, opts ...LinearizeOption) (result.Result, error) {
	cfg, err := options.Build(LinearizeConfig{Step: DefaultStep}, opts...)
	if err != nil {
		return result.Zero("linearize", "y_lin", ""), err
	}

	y0 := f(x0)
	s := Sensitivity(f, x0, cfg.Step)
	yLin := y0 + s*(x-x0)
	exact := f(x)

	return result.New("linearize", result.Quantity{Name: "y_lin", Symbol: "y_lin", Value: yLin}).
		With("s", "S", s, "").
		With("y0", "f(x0)", y0, "").
		With("exact", "f(x)", exact, "").
		With("error", "|y_lin - f(x)|", math.Abs(yLin-exact), ""), nil
}
