// Package signal provides sampling and signal-chain formulas: A/D quantization,
// FFT bin arithmetic, decibel gain and time-of-flight ranging.
//
// Every function is a pure, single-shot calculation. Results come back as a
// result.Result so the intermediate quantities a hand calculation would show
// (Nyquist frequency, bin index, propagation delay) are available without any
// console output.
//
// # Alternate Input Modes
//
// Formulas that accept one of several input shapes take a sealed interface
// instead of optional arguments:
//
//	g, _ := signal.GainDB(signal.VoltageRatio{Out: 2, In: 1}) // 6.02 dB
//	g, _ = signal.GainDB(signal.PowerRatio{Out: 10, In: 1})   // 10 dB
//
// Passing a nil GainInput yields a zero result together with errs.ErrNoInputMode.
//
// # FFT Bins
//
// FFTBins computes the frequency resolution Δf = fs/N and answers any number
// of lookups in either direction:
//
//	r, _ := signal.FFTBins(128, 1000, signal.AtFrequency(125), signal.AtBin(3))
//	df := r.Float()                  // 7.8125 Hz
//	k, _ := r.Lookup("k")            // 16
//	f, _ := r.Lookup("f_k")          // 23.4375 Hz
//
// # Undefined Inputs
//
// Zero sample rates, zero reference levels and similar inputs are not guarded:
// they produce Inf or NaN. Call result.Result.Check to detect them.
package signal
