package sensor

import (
	"fmt"
	"math"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/internal/options"
	"github.com/arloliu/instrumath/result"
)

const (
	// DefaultAirDensity is the sea-level ISA air density in kg/m³.
	DefaultAirDensity = 1.225
	// Gravity converts millimetres of water column to pascals.
	Gravity = 9.81
)

// PitotConfig holds the fluid settings of Pitot.
type PitotConfig struct {
	// Density is the fluid density ρ in kg/m³.
	Density float64
}

// PitotOption configures Pitot.
type PitotOption = options.Option[*PitotConfig]

// WithDensity sets the fluid density in kg/m³. It must be positive.
func WithDensity(rho float64) PitotOption {
	return options.New(func(cfg *PitotConfig) error {
		if rho <= 0 {
			return fmt.Errorf("%w: density must be positive, got %g", errs.ErrInvalidOption, rho)
		}
		cfg.Density = rho

		return nil
	})
}

// Pitot returns the flow speed v = sqrt(2·ΔP/ρ) from the Pitot differential
// pressure ΔP = Ptotal - Pstatic in Pa. A negative ΔP yields NaN.
// The derived quantity "v_kmh" holds the speed in km/h.
func Pitot(deltaP float64, opts ...PitotOption) (result.Result, error) {
	cfg, err := options.Build(PitotConfig{Density: DefaultAirDensity}, opts...)
	if err != nil {
		return result.Zero("pitot", "v", "m/s"), err
	}

	v := math.Sqrt(2 * deltaP / cfg.Density)

	return result.New("pitot", result.Quantity{Name: "v", Symbol: "v", Value: v, Unit: "m/s"}).
		With("v_kmh", "v", v*3.6, "km/h"), nil
}

// WaterColumnPressure converts a manometer reading in mmH2O to Pa.
func WaterColumnPressure(mm float64) float64 {
	return mm * Gravity
}
