// Package errs defines the sentinel errors returned by instrumath formulas.
//
// Formulas wrap these with context using fmt.Errorf and %w, so callers should
// match them with errors.Is rather than comparing strings.
package errs

import "errors"

var (
	// ErrNoInputMode is returned when a formula with alternate input modes
	// receives none of them. The accompanying result carries a zero value.
	ErrNoInputMode = errors.New("no input mode supplied")
	// ErrUnknownTag is returned for a tag value outside its enumeration.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrInvalidInput is returned when an input or a computed quantity is not finite.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidOption is returned by options that reject non-physical settings.
	ErrInvalidOption = errors.New("invalid option")

	ErrLengthMismatch   = errors.New("mismatched sample lengths")
	ErrInsufficientData = errors.New("insufficient data points")
	ErrDegenerateFit    = errors.New("degenerate fit: x values have no spread")

	ErrUnknownFormula   = errors.New("unknown formula")
	ErrDuplicateFormula = errors.New("formula already registered")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidParameter = errors.New("invalid parameter value")
)
