package sensor

import (
	"math"

	"github.com/arloliu/instrumath/internal/options"
	"github.com/arloliu/instrumath/result"
)

// IEC 60751 Callendar-Van Dusen coefficients for platinum, valid above 0 °C.
const (
	DefaultRTDA = 3.9083e-3
	DefaultRTDB = -5.775e-7
)

// RTDConfig holds the Callendar-Van Dusen coefficients.
type RTDConfig struct {
	A float64
	B float64
}

// RTDOption configures RTD and RTDTemperature.
type RTDOption = options.Option[*RTDConfig]

// WithCallendarVanDusen overrides the A and B coefficients.
func WithCallendarVanDusen(a, b float64) RTDOption {
	return options.NoError(func(cfg *RTDConfig) {
		cfg.A = a
		cfg.B = b
	})
}

func defaultRTD() RTDConfig {
	return RTDConfig{A: DefaultRTDA, B: DefaultRTDB}
}

// RTD returns the resistance R = R0·(1 + A·T + B·T²) of a resistance
// temperature detector at t °C. The cubic C term below 0 °C is not modeled.
// The derived quantity "ratio" holds R/R0.
func RTD(r0, t float64, opts ...RTDOption) (result.Result, error) {
	cfg, err := options.Build(defaultRTD(), opts...)
	if err != nil {
		return result.Zero("rtd", "r", "Ω"), err
	}

	ratio := 1 + cfg.A*t + cfg.B*t*t

	return result.New("rtd", result.Quantity{Name: "r", Symbol: "R(T)", Value: r0 * ratio, Unit: "Ω"}).
		With("ratio", "R/R0", ratio, ""), nil
}

// RTDTemperature inverts RTD: it solves B·T² + A·T + 1 - R/R0 = 0 for the
// root closest to 0 °C. With B = 0 the relation is linear.
// A resistance outside the quadratic's range yields NaN.
func RTDTemperature(r0, r float64, opts ...RTDOption) (result.Result, error) {
	cfg, err := options.Build(defaultRTD(), opts...)
	if err != nil {
		return result.Zero("rtd-temperature", "t", "°C"), err
	}

	ratio := r / r0

	var t float64
	if cfg.B == 0 {
		t = (ratio - 1) / cfg.A
	} else {
		disc := cfg.A*cfg.A - 4*cfg.B*(1-ratio)
		t = (-cfg.A + math.Sqrt(disc)) / (2 * cfg.B)
	}

	return result.New("rtd-temperature", result.Quantity{Name: "t", Symbol: "T", Value: t, Unit: "°C"}).
		With("ratio", "R/R0", ratio, ""), nil
}
