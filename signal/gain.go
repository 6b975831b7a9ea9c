package signal

import (
	"fmt"
	"math"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/format"
	"github.com/arloliu/instrumath/result"
)

// GainInput selects the decibel convention. It is implemented only by
// PowerRatio and VoltageRatio.
type GainInput interface {
	Mode() format.GainMode
	ratio() float64
	factor() float64
}

// PowerRatio computes gain as 10·log10(Out/In). Values are in watts.
type PowerRatio struct {
	Out float64
	In  float64
}

func (PowerRatio) Mode() format.GainMode { return format.GainPower }
func (p PowerRatio) ratio() float64 { return p.Out / p.In }
func (PowerRatio) factor() float64 { return 10 }

// VoltageRatio computes gain as 20·log10(Out/In). Values are in volts.
type VoltageRatio struct {
	Out float64
	In  float64
}

func (VoltageRatio) Mode() format.GainMode { return format.GainVoltage }
func (v VoltageRatio) ratio() float64 { return v.Out / v.In }
func (VoltageRatio) factor() float64 { return 20 }

// GainDB returns the gain in decibels for a power or a voltage ratio.
//
// A nil input returns a zero result and errs.ErrNoInputMode. The derived
// quantity "ratio" holds the linear Out/In ratio.
func GainDB(in GainInput) (result.Result, error) {
	if in == nil {
		return result.Zero("gain-db", "gain", "dB"), fmt.Errorf("%w: provide PowerRatio or VoltageRatio", errs.ErrNoInputMode)
	}

	ratio := in.ratio()
	g := in.factor() * math.Log10(ratio)

	return result.New("gain-db", result.Quantity{Name: "gain", Symbol: "G", Value: g, Unit: "dB"}).
		With("ratio", in.Mode().String()+" ratio", ratio, ""), nil
}
