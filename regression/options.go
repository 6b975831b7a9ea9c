package regression

import (
	"fmt"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/internal/options"
)

// AnalyzeConfig holds the candidate models for Analyze.
type AnalyzeConfig struct {
	Models []ModelType
}

// defaultAnalyzeConfig returns all six model types, simplest first.
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Models: []ModelType{
			ModelTypeLinear,
			ModelTypeHyperbolic,
			ModelTypeLogarithmic,
			ModelTypePower,
			ModelTypeExponential,
			ModelTypePolynomial,
		},
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithModels restricts Analyze to the given model types. Order sets the
// tie-break when two models reach the same R².
func WithModels(types ...ModelType) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if len(types) == 0 {
			return fmt.Errorf("%w: at least one model type is required", errs.ErrInvalidOption)
		}
		for _, mt := range types {
			if coefficientCount(mt) == 0 {
				return fmt.Errorf("%w: unknown model type %d", errs.ErrInvalidOption, mt)
			}
		}
		cfg.Models = types

		return nil
	})
}
