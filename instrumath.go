// Package instrumath provides closed-form calculators for instrumentation and
// measurement engineering: sampling theory, decibel gain, encoder speed,
// instrument error budgets, linearization, strain-gauge bridges, piezoelectric
// accelerometers, RTD sensors, Pitot-tube airspeed, time-of-flight distance and
// least-squares calibration.
//
// Every formula is a stateless function that returns a result.Result: the
// primary value plus the intermediate quantities a textbook solution would
// show. No formula calls another, so values are chained explicitly by the
// caller.
//
// # Core Features
//
//   - Typed input modes instead of optional parameters (signal.PowerRatio vs
//     signal.VoltageRatio, sensor.SpeedLimit vs sensor.MeasuredSpeed)
//   - Functional options for physical constants with defaults (air density,
//     speed of sound, Poisson ratio, Callendar-Van Dusen coefficients)
//   - Sentinel errors in package errs, matched with errors.Is
//   - A named catalog with 64-bit xxHash IDs for text-driven evaluation
//
// # Basic Usage
//
// Calling a formula directly:
//
//	import "github.com/arloliu/instrumath/sensor"
//
//	res, err := sensor.Pitot(500, sensor.WithDensity(1.225))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Float()) // 28.57 m/s
//
// Evaluating by name:
//
//	res, err := instrumath.Eval("pitot", catalog.Args{"dp": "500"})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the catalog
// package. The formulas themselves live in the signal, accuracy, sensor and
// regression packages.
package instrumath

import (
	"sync"

	"github.com/arloliu/instrumath/catalog"
	"github.com/arloliu/instrumath/internal/hash"
	"github.com/arloliu/instrumath/result"
)

var defaultRegistry = sync.OnceValue(catalog.Default)

// Catalog returns the shared registry of built-in formulas.
//
// The registry is built on first use and never modified afterwards, so it is
// safe to share between goroutines.
func Catalog() *catalog.Registry {
	return defaultRegistry()
}

// Eval evaluates a built-in formula by name or hexadecimal ID.
//
// Parameters:
//   - formula: the formula name (e.g. "bridge") or its ID
//   - args: textual argument values keyed by parameter name
//
// Returns:
//   - result.Result: The formula output.
//   - error: errs.ErrUnknownFormula, a parameter error, or the error of the formula.
//
// Example:
//
//	res, err := instrumath.Eval("time-of-flight", catalog.Args{
//	    "lag":  "85",
//	    "fs":   "48000",
//	    "mode": "echo",
//	})
func Eval(formula string, args catalog.Args) (result.Result, error) {
	return defaultRegistry().Eval(formula, args)
}

// FormulaID returns the catalog ID of a formula name.
//
// IDs are the xxHash64 of the case-folded name and are stable across releases.
func FormulaID(name string) uint64 {
	return hash.FormulaID(name)
}
