// Package regression fits sensor calibration curves by least squares.
//
// The package has two entry points:
//
//   - FitLinear: the straight line y = a·x + b in closed form (Cramer's rule on
//     the normal equations), with the maximum absolute residual, R² and RMSE
//   - Analyze: fits several curve shapes and picks the one with the highest R²
//
// # Linear Calibration
//
// A pressure sensor read at three known pressures:
//
//	fit, err := regression.FitLinear([]float64{0.5, 1.5, 2.5}, []float64{0.35, 0.67, 1.14})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(fit.Slope, fit.Intercept, fit.MaxResidual) // 0.395 0.1275 0.05
//
//	// Convert a later reading back to a pressure
//	bar := fit.Invert(0.9)
//
// Degenerate inputs return errors rather than NaN coefficients:
//
//   - errs.ErrLengthMismatch: x and y differ in length
//   - errs.ErrInsufficientData: fewer than 2 samples
//   - errs.ErrDegenerateFit: N·Σx² - (Σx)² is zero, e.g. all x identical
//
// # Model Types
//
//   - **Linear**: y = a + b*x
//   - **Hyperbolic**: y = a + b / x
//   - **Logarithmic**: y = a + b * ln(x)
//   - **Power**: y = a * x^b
//   - **Exponential**: y = a * e^(b * x)
//   - **Polynomial**: y = a + b*x + c*x²
//
// Transformed models are fitted as straight lines on transformed data, for
// example ln(y) = ln(a) + b·ln(x) for the power model. R² and RMSE are always
// reported in the original y space so models can be compared.
//
// # Model Selection
//
//	res, err := regression.Analyze(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range res.AllModels {
//	    fmt.Printf("%s: R²=%.4f, %s\n", m.Type, m.RSquared, m.Formula)
//	}
//
// Models the data cannot support (ln of a non-positive value, fewer than 3
// points for the quadratic) are reported in Result.Skipped.
package regression
