package signal

import (
	"math"

	"github.com/arloliu/instrumath/result"
)

// Resolution returns the quantization step of an A/D converter: span / 2^bits.
//
// Parameters:
//   - span: full input range, e.g. 10 for a ±5 V converter
//   - bits: converter resolution in bits
//
// The derived quantity "levels" holds 2^bits.
func Resolution(span float64, bits int) result.Result {
	levels := math.Ldexp(1, bits)
	q := span / levels

	return result.New("adc-resolution", result.Quantity{Name: "q", Symbol: "q", Value: q, Unit: "V"}).
		With("levels", "2^n", levels, "")
}
