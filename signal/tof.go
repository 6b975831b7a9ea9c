package signal

import (
	"fmt"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/format"
	"github.com/arloliu/instrumath/internal/options"
	"github.com/arloliu/instrumath/result"
)

// DefaultSoundSpeed is the speed of sound in air used by TimeOfFlight, in m/s.
const DefaultSoundSpeed = 340.0

// TimeOfFlightConfig holds the propagation settings for TimeOfFlight.
type TimeOfFlightConfig struct {
	// SoundSpeed is the wave speed in m/s.
	SoundSpeed float64
}

// TimeOfFlightOption configures TimeOfFlight.
type TimeOfFlightOption = options.Option[*TimeOfFlightConfig]

// WithSoundSpeed sets the propagation speed in m/s. It must be positive.
func WithSoundSpeed(c float64) TimeOfFlightOption {
	return options.New(func(cfg *TimeOfFlightConfig) error {
		if c <= 0 {
			return fmt.Errorf("%w: sound speed must be positive, got %g", errs.ErrInvalidOption, c)
		}
		cfg.SoundSpeed = c

		return nil
	})
}

// TimeOfFlight converts a correlation lag into a distance.
//
// Δt = lag / fs and d = Δt · c. In echo mode the path is a round trip and the
// distance is halved.
//
// Parameters:
//   - lag: delay of the correlation peak, in samples
//   - fs: sample rate in Hz
//   - mode: format.PropagationDirect or format.PropagationEcho
//   - opts: WithSoundSpeed, default DefaultSoundSpeed
//
// Derived quantities: "delta_t" in seconds and "delta_t_ms" in milliseconds.
//
// An unknown mode returns a zero result and errs.ErrUnknownTag.
func TimeOfFlight(lag int, fs float64, mode format.Propagation, opts ...TimeOfFlightOption) (result.Result, error) {
	const name = "time-of-flight"

	cfg, err := options.Build(TimeOfFlightConfig{SoundSpeed: DefaultSoundSpeed}, opts...)
	if err != nil {
		return result.Zero(name, "d", "m"), err
	}

	dt := float64(lag) / fs
	d := dt * cfg.SoundSpeed

	switch mode {
	case format.PropagationDirect:
	case format.PropagationEcho:
		d /= 2
	default:
		return result.Zero(name, "d", "m"), fmt.Errorf("%w: propagation mode %d", errs.ErrUnknownTag, mode)
	}

	return result.New(name, result.Quantity{Name: "d", Symbol: "d", Value: d, Unit: "m"}).
		With("delta_t", "Δt", dt, "s").
		With("delta_t_ms", "Δt", dt*1000, "ms"), nil
}
