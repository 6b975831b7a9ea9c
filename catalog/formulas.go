package catalog

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/instrumath/accuracy"
	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/format"
	"github.com/arloliu/instrumath/regression"
	"github.com/arloliu/instrumath/result"
	"github.com/arloliu/instrumath/sensor"
	"github.com/arloliu/instrumath/signal"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Default returns a registry holding every instrumath formula.
func Default() *Registry {
	r := NewRegistry()
	for _, def := range builtin {
		if err := r.Register(def.name, def.category, def.summary, def.params, def.eval); err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
	}

	return r
}

type definition struct {
	name     string
	category Category
	summary  string
	params   []Param
	eval     EvalFunc
}

var builtin = []definition{
	{
		name:     "adc-resolution",
		category: CategorySignal,
		summary:  "Quantization step of an A/D converter: q = span / 2^bits",
		params: []Param{
			{Name: "span", Unit: "V", Summary: "full-scale input range", Required: true},
			{Name: "bits", Summary: "converter resolution", Required: true},
		},
		eval: func(a *Reader) (result.Result, error) {
			return signal.Resolution(a.Float("span"), a.Int("bits")), nil
		},
	},
	{
		name:     "fft-bins",
		category: CategorySignal,
		summary:  "FFT bin spacing fs/N and Nyquist frequency, with optional bin lookups",
		params: []Param{
			{Name: "n", Summary: "number of FFT points", Required: true},
			{Name: "fs", Unit: "Hz", Summary: "sampling frequency", Required: true},
			{Name: "f", Unit: "Hz", Summary: "frequencies to locate, comma-separated"},
			{Name: "k", Summary: "bin indices to convert, comma-separated"},
		},
		eval: func(a *Reader) (result.Result, error) {
			var queries []signal.BinQuery
			for _, f := range a.Floats("f") {
				queries = append(queries, signal.AtFrequency(f))
			}
			for _, k := range a.Ints("k") {
				queries = append(queries, signal.AtBin(k))
			}

			return signal.FFTBins(a.Int("n"), a.Float("fs"), queries...), nil
		},
	},
	{
		name:     "fft-peak",
		category: CategorySignal,
		summary:  "Dominant frequency of a sampled signal from its real FFT",
		params: []Param{
			{Name: "samples", Summary: "signal samples, comma-separated", Required: true},
			{Name: "fs", Unit: "Hz", Summary: "sampling frequency", Required: true},
		},
		eval: func(a *Reader) (result.Result, error) {
			return signal.PeakFrequency(a.Floats("samples"), a.Float("fs"))
		},
	},
	{
		name:     "gain-db",
		category: CategorySignal,
		summary:  "Gain in decibels from a power (10 log) or voltage (20 log) ratio",
		params: []Param{
			{Name: "mode", Summary: "power or voltage", Default: "voltage"},
			{Name: "out", Summary: "output power or voltage", Required: true},
			{Name: "in", Summary: "input power or voltage", Required: true},
		},
		eval: func(a *Reader) (result.Result, error) {
			out, in := a.Float("out"), a.Float("in")
			switch Tag(a, "mode", format.ParseGainMode) {
			case format.GainPower:
				return signal.GainDB(signal.PowerRatio{Out: out, In: in})
			case format.GainVoltage:
				return signal.GainDB(signal.VoltageRatio{Out: out, In: in})
			default:
				return signal.GainDB(nil)
			}
		},
	},
	{
		name:     "time-of-flight",
		category: CategorySignal,
		summary:  "Distance from a correlation lag: d = lag/fs * c, halved for an echo",
		params: []Param{
			{Name: "lag", Summary: "correlation peak lag in samples", Required: true},
			{Name: "fs", Unit: "Hz", Summary: "sampling frequency", Required: true},
			{Name: "mode", Summary: "direct or echo", Default: "direct"},
			{Name: "c", Unit: "m/s", Summary: "propagation speed", Default: num(signal.DefaultSoundSpeed)},
		},
		eval: func(a *Reader) (result.Result, error) {
			mode := Tag(a, "mode", format.ParsePropagation)
			return signal.TimeOfFlight(a.Int("lag"), a.Float("fs"), mode, signal.WithSoundSpeed(a.Float("c")))
		},
	},
	{
		name:     "total-error",
		category: CategoryAccuracy,
		summary:  "Instrument error budget: % of reading + % of range + digits",
		params: []Param{
			{Name: "reading", Summary: "measured value", Required: true},
			{Name: "span", Summary: "instrument range", Required: true},
			{Name: "pct-reading", Unit: "%", Summary: "accuracy as % of reading", Required: true},
			{Name: "pct-range", Unit: "%", Summary: "accuracy as % of range", Required: true},
			{Name: "digits", Summary: "least-significant digits of uncertainty", Default: "0"},
			{Name: "digit-res", Summary: "value of one digit", Default: "0"},
		},
		eval: func(a *Reader) (result.Result, error) {
			return accuracy.TotalError(a.Float("reading"), a.Float("span"), a.Float("pct-reading"), a.Float("pct-range"),
				accuracy.WithDigits(a.Int("digits"), a.Float("digit-res")))
		},
	},
	{
		name:     "linearize-power",
		category: CategoryAccuracy,
		summary:  "First-order Taylor linearization of f(x) = c * x^p around x0",
		params: []Param{
			{Name: "c", Summary: "coefficient", Default: "1"},
			{Name: "p", Summary: "exponent", Default: "2"},
			{Name: "x0", Summary: "operating point", Required: true},
			{Name: "x", Summary: "evaluation point", Required: true},
			{Name: "step", Summary: "finite-difference step", Default: num(accuracy.DefaultStep)},
		},
		eval: func(a *Reader) (result.Result, error) {
			c, p := a.Float("c"), a.Float("p")
			f := func(x float64) float64 { return c * math.Pow(x, p) }

			res, err := accuracy.Linearize(f, a.Float("x0"), a.Float("x"), accuracy.WithStep(a.Float("step")))
			res.Formula = "linearize-power"

			return res, err
		},
	},
	{
		name:     "encoder-speed",
		category: CategorySensor,
		summary:  "Incremental encoder speed from the max frequency or a pulse count",
		params: []Param{
			{Name: "lines", Summary: "lines per revolution", Required: true},
			{Name: "mode", Summary: "limit or measured", Default: "limit"},
			{Name: "fmax", Unit: "Hz", Summary: "max signal frequency (limit mode)"},
			{Name: "pulses", Summary: "pulses counted in one period (measured mode)"},
			{Name: "period", Unit: "s", Summary: "counting period (measured mode)"},
			{Name: "edges", Summary: "edge multiplier 1, 2 or 4 (measured mode)", Default: "1"},
		},
		eval: func(a *Reader) (result.Result, error) {
			var in sensor.EncoderInput
			switch Tag(a, "mode", format.ParseEncoderMode) {
			case format.EncoderSpeedLimit:
				if a.Has("fmax") {
					in = sensor.SpeedLimit{MaxFrequency: a.Float("fmax")}
				}
			case format.EncoderMeasured:
				if a.Has("pulses") && a.Has("period") {
					in = sensor.MeasuredSpeed{Pulses: a.Int("pulses"), Period: a.Float("period")}
				}
			}

			return sensor.EncoderSpeed(a.Int("lines"), in, sensor.WithEdgeMultiplier(a.Int("edges")))
		},
	},
	{
		name:     "bridge",
		category: CategorySensor,
		summary:  "Wheatstone bridge output for quarter, half or full strain-gauge bridges",
		params: []Param{
			{Name: "u0", Unit: "V", Summary: "excitation voltage", Required: true},
			{Name: "k", Summary: "gauge factor", Required: true},
			{Name: "strain", Summary: "strain ε", Required: true},
			{Name: "type", Summary: "quarter, half or full", Default: "quarter"},
			{Name: "poisson", Summary: "Poisson ratio (full bridge)", Default: num(sensor.DefaultPoisson)},
		},
		eval: func(a *Reader) (result.Result, error) {
			topology := Tag(a, "type", format.ParseBridgeType)
			return sensor.Bridge(a.Float("u0"), a.Float("k"), a.Float("strain"), topology,
				sensor.WithPoisson(a.Float("poisson")))
		},
	},
	{
		name:     "piezo",
		category: CategorySensor,
		summary:  "Piezoelectric accelerometer output voltage and sensitivity",
		params: []Param{
			{Name: "beta", Unit: "C/N", Summary: "charge sensitivity", Required: true},
			{Name: "mass", Unit: "kg", Summary: "seismic mass", Required: true},
			{Name: "c-cable", Unit: "F", Summary: "cable capacitance", Required: true},
			{Name: "c-amp", Unit: "F", Summary: "amplifier input capacitance", Required: true},
			{Name: "accel", Unit: "m/s²", Summary: "applied acceleration"},
			{Name: "force", Unit: "N", Summary: "applied force, used only without accel"},
		},
		eval: func(a *Reader) (result.Result, error) {
			var in sensor.Excitation
			switch {
			case a.Has("accel"):
				in = sensor.Acceleration(a.Float("accel"))
			case a.Has("force"):
				in = sensor.Force(a.Float("force"))
			}

			return sensor.Piezo(a.Float("beta"), a.Float("mass"), a.Float("c-cable"), a.Float("c-amp"), in)
		},
	},
	{
		name:     "rtd",
		category: CategorySensor,
		summary:  "RTD resistance R0 (1 + A T + B T²)",
		params: []Param{
			{Name: "r0", Unit: "Ω", Summary: "resistance at 0 °C", Default: "100"},
			{Name: "t", Unit: "°C", Summary: "temperature", Required: true},
			{Name: "a", Summary: "coefficient A", Default: num(sensor.DefaultRTDA)},
			{Name: "b", Summary: "coefficient B", Default: num(sensor.DefaultRTDB)},
		},
		eval: func(a *Reader) (result.Result, error) {
			return sensor.RTD(a.Float("r0"), a.Float("t"), sensor.WithCallendarVanDusen(a.Float("a"), a.Float("b")))
		},
	},
	{
		name:     "rtd-temperature",
		category: CategorySensor,
		summary:  "Temperature of an RTD from its measured resistance",
		params: []Param{
			{Name: "r0", Unit: "Ω", Summary: "resistance at 0 °C", Default: "100"},
			{Name: "r", Unit: "Ω", Summary: "measured resistance", Required: true},
			{Name: "a", Summary: "coefficient A", Default: num(sensor.DefaultRTDA)},
			{Name: "b", Summary: "coefficient B", Default: num(sensor.DefaultRTDB)},
		},
		eval: func(a *Reader) (result.Result, error) {
			return sensor.RTDTemperature(a.Float("r0"), a.Float("r"), sensor.WithCallendarVanDusen(a.Float("a"), a.Float("b")))
		},
	},
	{
		name:     "pitot",
		category: CategorySensor,
		summary:  "Pitot tube airspeed v = sqrt(2 ΔP / ρ)",
		params: []Param{
			{Name: "dp", Unit: "Pa", Summary: "differential pressure"},
			{Name: "mm-h2o", Unit: "mm", Summary: "differential pressure as a water column, instead of dp"},
			{Name: "rho", Unit: "kg/m³", Summary: "fluid density", Default: num(sensor.DefaultAirDensity)},
		},
		eval: func(a *Reader) (result.Result, error) {
			var dp float64
			switch {
			case a.Has("dp"):
				dp = a.Float("dp")
			case a.Has("mm-h2o"):
				dp = sensor.WaterColumnPressure(a.Float("mm-h2o"))
			default:
				return result.Zero("pitot", "v", "m/s"), fmt.Errorf("%w: pitot needs \"dp\" or \"mm-h2o\"", errs.ErrMissingParameter)
			}

			return sensor.Pitot(dp, sensor.WithDensity(a.Float("rho")))
		},
	},
	{
		name:     "linear-fit",
		category: CategoryRegression,
		summary:  "Least-squares line y = a x + b with maximum residual",
		params: []Param{
			{Name: "x", Summary: "stimulus values, comma-separated", Required: true},
			{Name: "y", Summary: "measured values, comma-separated", Required: true},
		},
		eval: func(a *Reader) (result.Result, error) {
			fit, err := regression.FitLinear(a.Floats("x"), a.Floats("y"))
			if err != nil {
				return result.Zero("linear-fit", "a", ""), err
			}

			return fit.Result(), nil
		},
	},
}
