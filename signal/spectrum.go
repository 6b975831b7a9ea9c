package signal

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/result"
)

// BinQuery is a lookup answered by FFTBins: either frequency to bin index or
// bin index to frequency. Use AtFrequency or AtBin to create one.
type BinQuery interface {
	query(df float64) result.Quantity
}

type frequencyQuery float64

func (f frequencyQuery) query(df float64) result.Quantity {
	return result.Quantity{
		Name:   "k",
		Symbol: fmt.Sprintf("k(%g Hz)", float64(f)),
		Value:  BinIndex(float64(f), df),
	}
}

type binQuery int

func (k binQuery) query(df float64) result.Quantity {
	return result.Quantity{
		Name:   "f_k",
		Symbol: fmt.Sprintf("f(k=%d)", int(k)),
		Value:  BinFrequency(int(k), df),
		Unit:   "Hz",
	}
}

// AtFrequency asks for the (fractional) bin index of a signal frequency in Hz.
func AtFrequency(f float64) BinQuery {
	return frequencyQuery(f)
}

// AtBin asks for the frequency of FFT bin k.
func AtBin(k int) BinQuery {
	return binQuery(k)
}

// BinIndex returns k = f / Δf.
func BinIndex(f, df float64) float64 {
	return f / df
}

// BinFrequency returns f = k · Δf.
func BinFrequency(k int, df float64) float64 {
	return float64(k) * df
}

// FFTBins computes the frequency resolution Δf = fs/N of an N-point FFT.
//
// Parameters:
//   - n: number of FFT points
//   - fs: sample rate in Hz
//   - queries: optional lookups, each appended to the derived quantities in order
//
// Derived quantities:
//   - "nyquist": fs/2
//   - "k": one per AtFrequency query
//   - "f_k": one per AtBin query
func FFTBins(n int, fs float64, queries ...BinQuery) result.Result {
	df := fs / float64(n)
	r := result.New("fft-bins", result.Quantity{Name: "delta_f", Symbol: "Δf", Value: df, Unit: "Hz"}).
		With("nyquist", "f_max", fs/2, "Hz")

	for _, q := range queries {
		if q == nil {
			continue
		}
		r.Derived = append(r.Derived, q.query(df))
	}

	return r
}

// PeakFrequency locates the dominant non-DC component of a real signal.
//
// The magnitude spectrum is taken with a real FFT over all samples (no window).
// The primary value is the bin frequency k·Δf, so a tone between two bins is
// reported at the nearer bin.
//
// Derived quantities:
//   - "k": bin index of the peak
//   - "magnitude": |X[k]|
//   - "delta_f": fs/N
//
// Returns errs.ErrInsufficientData when fewer than 2 samples are given.
func PeakFrequency(samples []float64, fs float64) (result.Result, error) {
	n := len(samples)
	if n < 2 {
		return result.Zero("fft-peak", "f_peak", "Hz"), fmt.Errorf("%w: need at least 2 samples, got %d", errs.ErrInsufficientData, n)
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	peak, peakMag := 1, cmplx.Abs(coeffs[1])
	for k := 2; k < len(coeffs); k++ {
		if mag := cmplx.Abs(coeffs[k]); mag > peakMag {
			peak, peakMag = k, mag
		}
	}

	df := fs / float64(n)

	return result.New("fft-peak", result.Quantity{Name: "f_peak", Symbol: "f", Value: BinFrequency(peak, df), Unit: "Hz"}).
		With("k", "k", float64(peak), "").
		With("magnitude", "|X[k]|", peakMag, "").
		With("delta_f", "Δf", df, "Hz"), nil
}
