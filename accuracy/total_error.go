package accuracy

import (
	"fmt"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/internal/options"
	"github.com/arloliu/instrumath/result"
)

// ErrorConfig holds the digit term of an instrument accuracy rating.
type ErrorConfig struct {
	// Digits is the "± n dgt" count from the data sheet.
	Digits int
	// DigitResolution is the value of one least significant digit.
	DigitResolution float64
}

// ErrorOption configures TotalError.
type ErrorOption = options.Option[*ErrorConfig]

// WithDigits adds the digits·resolution term. Negative counts are rejected.
func WithDigits(count int, resolution float64) ErrorOption {
	return options.New(func(cfg *ErrorConfig) error {
		if count < 0 {
			return fmt.Errorf("%w: digit count must not be negative, got %d", errs.ErrInvalidOption, count)
		}
		cfg.Digits = count
		cfg.DigitResolution = resolution

		return nil
	})
}

// TotalError returns the absolute error bound of an instrument reading, as
// specified by "± (p% of reading + r% of range + n digits)".
//
// Derived quantities: "reading_term", "range_term", "digit_term" and, when the
// reading is non-zero, "relative" in percent of the reading.
func TotalError(reading, span, pctReading, pctRange float64, opts ...ErrorOption) (result.Result, error) {
	cfg, err := options.Build(ErrorConfig{}, opts...)
	if err != nil {
		return result.Zero("total-error", "e", ""), err
	}

	readingTerm := pctReading / 100 * reading
	rangeTerm := pctRange / 100 * span
	digitTerm := float64(cfg.Digits) * cfg.DigitResolution
	e := readingTerm + rangeTerm + digitTerm

	r := result.New("total-error", result.Quantity{Name: "e", Symbol: "±e", Value: e}).
		With("reading_term", "%·L", readingTerm, "").
		With("range_term", "%·E", rangeTerm, "").
		With("digit_term", "n·q", digitTerm, "")
	if reading != 0 {
		r = r.With("relative", "e/L", e/reading*100, "%")
	}

	return r, nil
}
