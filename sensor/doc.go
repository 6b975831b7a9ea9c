// Package sensor implements transducer transfer functions: incremental
// encoders, strain-gauge Wheatstone bridges, piezoelectric accelerometers,
// platinum RTDs and Pitot tubes.
//
// Each formula returns a result.Result with the primary output and the
// intermediate quantities of the calculation. Optional physical constants
// (Poisson ratio, air density, Callendar-Van Dusen coefficients) are set with
// functional options and default to the usual textbook values.
//
// Formulas with alternate inputs take a sealed interface. A nil input yields
// a zero result together with errs.ErrNoInputMode:
//
//	v, _ := sensor.EncoderSpeed(100, sensor.SpeedLimit{MaxFrequency: 1000}) // 10 tr/s
//	u, _ := sensor.Piezo(2.26e-12, 0.001, 20e-12, 0, sensor.Acceleration(9.81))
package sensor
