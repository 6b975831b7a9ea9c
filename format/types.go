package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/instrumath/errs"
)

type (
	BridgeType  uint8
	Propagation uint8
	GainMode    uint8
	EncoderMode uint8
)

const (
	BridgeQuarter BridgeType = 0x1 // BridgeQuarter represents one active gauge.
	BridgeHalf    BridgeType = 0x2 // BridgeHalf represents two active gauges in push-pull.
	BridgeFull    BridgeType = 0x3 // BridgeFull represents four active gauges, two of them transverse.

	PropagationDirect Propagation = 0x1 // PropagationDirect represents a one-way emitter to receiver path.
	PropagationEcho   Propagation = 0x2 // PropagationEcho represents a round trip off a reflector.

	GainPower   GainMode = 0x1 // GainPower represents 10*log10 of a power ratio.
	GainVoltage GainMode = 0x2 // GainVoltage represents 20*log10 of a voltage ratio.

	EncoderSpeedLimit EncoderMode = 0x1 // EncoderSpeedLimit represents the speed bound from the max signal frequency.
	EncoderMeasured   EncoderMode = 0x2 // EncoderMeasured represents speed from pulses counted over a period.
)

func (b BridgeType) String() string {
	switch b {
	case BridgeQuarter:
		return "Quarter"
	case BridgeHalf:
		return "Half"
	case BridgeFull:
		return "Full"
	default:
		return "Unknown"
	}
}

func (p Propagation) String() string {
	switch p {
	case PropagationDirect:
		return "Direct"
	case PropagationEcho:
		return "Echo"
	default:
		return "Unknown"
	}
}

func (g GainMode) String() string {
	switch g {
	case GainPower:
		return "Power"
	case GainVoltage:
		return "Voltage"
	default:
		return "Unknown"
	}
}

func (e EncoderMode) String() string {
	switch e {
	case EncoderSpeedLimit:
		return "SpeedLimit"
	case EncoderMeasured:
		return "Measured"
	default:
		return "Unknown"
	}
}

// ParseBridgeType accepts the English names and the French exam wording
// ("quart", "demi", "complet"), case-insensitive.
func ParseBridgeType(s string) (BridgeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quarter", "quart":
		return BridgeQuarter, nil
	case "half", "demi":
		return BridgeHalf, nil
	case "full", "complet":
		return BridgeFull, nil
	default:
		return 0, fmt.Errorf("%w: bridge type %q", errs.ErrUnknownTag, s)
	}
}

// ParsePropagation accepts "direct" and "echo", case-insensitive.
func ParsePropagation(s string) (Propagation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct":
		return PropagationDirect, nil
	case "echo":
		return PropagationEcho, nil
	default:
		return 0, fmt.Errorf("%w: propagation mode %q", errs.ErrUnknownTag, s)
	}
}

// ParseGainMode accepts "power" and "voltage" (also "tension"), case-insensitive.
func ParseGainMode(s string) (GainMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "power", "puissance":
		return GainPower, nil
	case "voltage", "tension":
		return GainVoltage, nil
	default:
		return 0, fmt.Errorf("%w: gain mode %q", errs.ErrUnknownTag, s)
	}
}

// ParseEncoderMode accepts "limit" (or "speed-limit") and "measured".
func ParseEncoderMode(s string) (EncoderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "limit", "speed-limit", "speedlimit":
		return EncoderSpeedLimit, nil
	case "measured":
		return EncoderMeasured, nil
	default:
		return 0, fmt.Errorf("%w: encoder mode %q", errs.ErrUnknownTag, s)
	}
}
