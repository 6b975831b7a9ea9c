package sensor

import (
	"fmt"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/result"
)

// Excitation is the mechanical input of a piezoelectric sensor, either an
// Acceleration of the seismic mass or a Force applied directly.
type Excitation interface {
	force(mass float64) float64
}

// Acceleration is applied to the seismic mass, in m/s². F = m·a.
type Acceleration float64

func (a Acceleration) force(mass float64) float64 { return mass * float64(a) }

// Force is applied directly to the crystal, in N.
type Force float64

func (f Force) force(float64) float64 { return float64(f) }

// Piezo returns the open-circuit output voltage U = Q / (Ccable + Campli) of a
// piezoelectric accelerometer with charge sensitivity β.
//
// Parameters:
//   - beta: charge sensitivity in C/N
//   - mass: seismic mass in kg
//   - cCable: cable capacitance in F
//   - cAmp: amplifier input capacitance in F
//   - in: Acceleration or Force
//
// The crystal's own capacitance is assumed negligible or already counted in
// cCable. Derived quantities: "force" (N), "charge" (C), "c_total" (F) and
// "sensitivity" = β·m/Ctotal in V/(m/s²).
//
// A nil excitation returns a zero result and errs.ErrNoInputMode.
func Piezo(beta, mass, cCable, cAmp float64, in Excitation) (result.Result, error) {
	const name = "piezo"

	if in == nil {
		return result.Zero(name, "u", "V"), fmt.Errorf("%w: provide Acceleration or Force", errs.ErrNoInputMode)
	}

	cTotal := cCable + cAmp
	f := in.force(mass)
	q := beta * f
	u := q / cTotal

	return result.New(name, result.Quantity{Name: "u", Symbol: "U", Value: u, Unit: "V"}).
		With("force", "F", f, "N").
		With("charge", "Q", q, "C").
		With("c_total", "C", cTotal, "F").
		With("sensitivity", "S", beta*mass/cTotal, "V/(m/s²)"), nil
}
