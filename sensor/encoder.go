package sensor

import (
	"fmt"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/format"
	"github.com/arloliu/instrumath/internal/options"
	"github.com/arloliu/instrumath/result"
)

// EncoderInput selects how EncoderSpeed derives the shaft speed. It is
// implemented only by SpeedLimit and MeasuredSpeed.
type EncoderInput interface {
	Mode() format.EncoderMode
	speed(lines int, edges float64) float64
}

// SpeedLimit bounds the speed by the highest signal frequency the pickup
// electronics accept: v = fmax / N.
type SpeedLimit struct {
	// MaxFrequency is the maximum output frequency in Hz.
	MaxFrequency float64
}

func (SpeedLimit) Mode() format.EncoderMode { return format.EncoderSpeedLimit }

func (s SpeedLimit) speed(lines int, _ float64) float64 {
	return s.MaxFrequency / float64(lines)
}

// MeasuredSpeed derives the speed from pulses counted over one read period:
// v = Δpulses / (N · Ts · m), m being the edge multiplier.
type MeasuredSpeed struct {
	// Pulses is the number of pulses (or edges) counted during Period.
	Pulses int
	// Period is the sampling period Ts in seconds.
	Period float64
}

func (MeasuredSpeed) Mode() format.EncoderMode { return format.EncoderMeasured }

func (m MeasuredSpeed) speed(lines int, edges float64) float64 {
	return float64(m.Pulses) / (float64(lines) * m.Period * edges)
}

// EncoderConfig holds the counter settings of EncoderSpeed.
type EncoderConfig struct {
	// EdgeMultiplier is the number of counts per line: 1, 2 or 4.
	EdgeMultiplier int
}

// EncoderOption configures EncoderSpeed.
type EncoderOption = options.Option[*EncoderConfig]

// WithQuadrature counts all four edges of the A/B channels (x4 decoding).
func WithQuadrature() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.EdgeMultiplier = 4
	})
}

// WithEdgeMultiplier sets x1, x2 or x4 decoding.
func WithEdgeMultiplier(m int) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		switch m {
		case 1, 2, 4:
			cfg.EdgeMultiplier = m
			return nil
		default:
			return fmt.Errorf("%w: edge multiplier must be 1, 2 or 4, got %d", errs.ErrInvalidOption, m)
		}
	})
}

// EncoderSpeed returns the shaft speed of an incremental encoder with the
// given number of lines per revolution, in revolutions per second.
//
// The edge multiplier only applies to MeasuredSpeed, since SpeedLimit is
// bounded by the line frequency itself. The derived quantity "rpm" holds the
// speed in revolutions per minute.
func EncoderSpeed(lines int, in EncoderInput, opts ...EncoderOption) (result.Result, error) {
	const name = "encoder-speed"

	if in == nil {
		return result.Zero(name, "v", "tr/s"), fmt.Errorf("%w: provide SpeedLimit or MeasuredSpeed", errs.ErrNoInputMode)
	}

	cfg, err := options.Build(EncoderConfig{EdgeMultiplier: 1}, opts...)
	if err != nil {
		return result.Zero(name, "v", "tr/s"), err
	}

	v := in.speed(lines, float64(cfg.EdgeMultiplier))

	return result.New(name, result.Quantity{Name: "v", Symbol: "v", Value: v, Unit: "tr/s"}).
		With("rpm", "n", v*60, "tr/min"), nil
}
