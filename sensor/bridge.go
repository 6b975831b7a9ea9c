package sensor

import (
	"fmt"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/format"
	"github.com/arloliu/instrumath/internal/options"
	"github.com/arloliu/instrumath/result"
)

// DefaultPoisson is the Poisson ratio of steel used for full bridges.
const DefaultPoisson = 0.3

// BridgeConfig holds the material settings of Bridge.
type BridgeConfig struct {
	// Poisson is the Poisson ratio ν of the specimen. Only full bridges use it.
	Poisson float64
}

// BridgeOption configures Bridge.
type BridgeOption = options.Option[*BridgeConfig]

// WithPoisson sets the Poisson ratio. It must lie in [-1, 0.5].
func WithPoisson(nu float64) BridgeOption {
	return options.New(func(cfg *BridgeConfig) error {
		if nu < -1 || nu > 0.5 {
			return fmt.Errorf("%w: Poisson ratio must be in [-1, 0.5], got %g", errs.ErrInvalidOption, nu)
		}
		cfg.Poisson = nu

		return nil
	})
}

// Bridge returns the small-signal output voltage Um of a strain-gauge
// Wheatstone bridge.
//
//	quarter: Um = U0/4 · K · ε
//	half:    Um = U0/2 · K · ε
//	full:    Um = U0/4 · K · ε · 2(1+ν)
//
// The full-bridge expression assumes two longitudinal and two transverse
// gauges. Some texts write the same layout as U0 · K · ε · (1+ν)/2 instead;
// the two differ by a factor of 4 and this function keeps the first form.
//
// Parameters:
//   - u0: bridge supply voltage in V
//   - k: gauge factor
//   - strain: ε = ΔL/L
//   - topology: format.BridgeQuarter, format.BridgeHalf or format.BridgeFull
//
// The derived quantity "um_mv" holds Um in millivolts. An unknown topology
// returns a zero result and errs.ErrUnknownTag.
func Bridge(u0, k, strain float64, topology format.BridgeType, opts ...BridgeOption) (result.Result, error) {
	const name = "bridge"

	cfg, err := options.Build(BridgeConfig{Poisson: DefaultPoisson}, opts...)
	if err != nil {
		return result.Zero(name, "um", "V"), err
	}

	var um float64
	switch topology {
	case format.BridgeQuarter:
		um = u0 / 4 * k * strain
	case format.BridgeHalf:
		um = u0 / 2 * k * strain
	case format.BridgeFull:
		um = u0 / 4 * k * strain * 2 * (1 + cfg.Poisson)
	default:
		return result.Zero(name, "um", "V"), fmt.Errorf("%w: bridge topology %d", errs.ErrUnknownTag, topology)
	}

	return result.New(name, result.Quantity{Name: "um", Symbol: "Um", Value: um, Unit: "V"}).
		With("um_mv", "Um", um*1000, "mV"), nil
}
