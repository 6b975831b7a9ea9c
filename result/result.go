// Package result holds the structured outcome of a formula evaluation.
//
// A Result carries one primary Quantity and any number of derived quantities
// (intermediate values a student would otherwise read off a console trace).
// Presentation is left to the caller: String gives a compact multi-line
// rendering, and the CLI uses it as-is.
package result

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/instrumath/errs"
)

// Quantity is a named physical value.
type Quantity struct {
	// Name is the stable lookup key, e.g. "delta_f".
	Name string
	// Symbol is the textbook notation, e.g. "Δf".
	Symbol string
	// Value is the numeric value in Unit.
	Value float64
	// Unit is a display unit, empty for dimensionless values.
	Unit string
}

// String returns "Symbol = Value Unit".
func (q Quantity) String() string {
	label := q.Symbol
	if label == "" {
		label = q.Name
	}
	if q.Unit == "" {
		return fmt.Sprintf("%s = %.6g", label, q.Value)
	}

	return fmt.Sprintf("%s = %.6g %s", label, q.Value, q.Unit)
}

// Result is the outcome of one formula evaluation.
type Result struct {
	// Formula names the formula that produced the result.
	Formula string
	// Value is the primary output.
	Value Quantity
	// Derived holds secondary diagnostics in evaluation order.
	Derived []Quantity
}

// New creates a Result with the given primary quantity.
func New(formula string, value Quantity) Result {
	return Result{Formula: formula, Value: value}
}

// Zero creates the neutral Result returned alongside a mode-selection error.
func Zero(formula, name, unit string) Result {
	return Result{Formula: formula, Value: Quantity{Name: name, Value: 0, Unit: unit}}
}

// With appends a derived quantity and returns the updated Result.
func (r Result) With(name, symbol string, value float64, unit string) Result {
	r.Derived = append(slices.Clip(r.Derived), Quantity{Name: name, Symbol: symbol, Value: value, Unit: unit})
	return r
}

// Float returns the primary value.
func (r Result) Float() float64 {
	return r.Value.Value
}

// Lookup returns the quantity with the given name, searching the primary value first.
func (r Result) Lookup(name string) (Quantity, bool) {
	if r.Value.Name == name {
		return r.Value, true
	}
	for _, q := range r.Derived {
		if q.Name == name {
			return q, true
		}
	}

	return Quantity{}, false
}

// Check reports ErrInvalidInput if the primary value or any derived quantity
// is NaN or infinite. Formulas never call it themselves.
func (r Result) Check() error {
	if !finite(r.Value.Value) {
		return fmt.Errorf("%w: %s: %s is %v", errs.ErrInvalidInput, r.Formula, r.Value.Name, r.Value.Value)
	}
	for _, q := range r.Derived {
		if !finite(q.Value) {
			return fmt.Errorf("%w: %s: %s is %v", errs.ErrInvalidInput, r.Formula, q.Name, q.Value)
		}
	}

	return nil
}

// String renders the result as a header line followed by derived quantities.
func (r Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", r.Formula, r.Value)
	for _, q := range r.Derived {
		sb.WriteString("\n  ")
		sb.WriteString(q.String())
	}

	return sb.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
