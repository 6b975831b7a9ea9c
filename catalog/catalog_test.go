package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/internal/hash"
	"github.com/arloliu/instrumath/result"
)

func sineSamples(f, fs float64, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.FormatFloat(math.Sin(2*math.Pi*f*float64(i)/fs), 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func TestDefault_EvaluatesEveryFormula(t *testing.T) {
	tests := []struct {
		name    string
		args    Args
		primary float64
		derived map[string]float64
		delta   float64
	}{
		{
			name:    "adc-resolution",
			args:    Args{"span": "10", "bits": "8"},
			primary: 0.0390625,
			derived: map[string]float64{"levels": 256},
			delta:   1e-12,
		},
		{
			name:    "fft-bins",
			args:    Args{"n": "128", "fs": "1000", "f": "50", "k": "8"},
			primary: 7.8125,
			derived: map[string]float64{"nyquist": 500, "k": 6.4, "f_k": 62.5},
			delta:   1e-12,
		},
		{
			name:    "fft-peak",
			args:    Args{"samples": sineSamples(100, 800, 16), "fs": "800"},
			primary: 100,
			derived: map[string]float64{"k": 2, "delta_f": 50},
			delta:   1e-9,
		},
		{
			name:    "gain-db",
			args:    Args{"out": "2", "in": "1"},
			primary: 6.0206,
			delta:   1e-4,
		},
		{
			name:    "time-of-flight",
			args:    Args{"lag": "85", "fs": "48000"},
			primary: 0.602083,
			derived: map[string]float64{"delta_t_ms": 1.770833},
			delta:   1e-6,
		},
		{
			name:    "total-error",
			args:    Args{"reading": "150", "span": "200", "pct-reading": "1.5", "pct-range": "0.5"},
			primary: 3.25,
			derived: map[string]float64{"reading_term": 2.25, "range_term": 1},
			delta:   1e-12,
		},
		{
			name:    "linearize-power",
			args:    Args{"x0": "2", "x": "3"},
			primary: 8,
			derived: map[string]float64{"exact": 9, "error": 1, "s": 4},
			delta:   1e-6,
		},
		{
			name:    "encoder-speed",
			args:    Args{"lines": "100", "fmax": "1000"},
			primary: 10,
			derived: map[string]float64{"rpm": 600},
			delta:   1e-12,
		},
		{
			name:    "bridge",
			args:    Args{"u0": "10", "k": "2", "strain": "1e-3"},
			primary: 0.005,
			derived: map[string]float64{"um_mv": 5},
			delta:   1e-12,
		},
		{
			name:    "piezo",
			args:    Args{"beta": "2.26e-12", "mass": "0.05", "c-cable": "1e-9", "c-amp": "0", "accel": "9.81"},
			primary: 2.26e-12 * 0.05 * 9.81 / 1e-9,
			delta:   1e-12,
		},
		{
			name:    "rtd",
			args:    Args{"t": "100"},
			primary: 138.5055,
			delta:   1e-9,
		},
		{
			name:    "rtd-temperature",
			args:    Args{"r": "138.5055"},
			primary: 100,
			delta:   1e-6,
		},
		{
			name:    "pitot",
			args:    Args{"dp": "500"},
			primary: 28.5714,
			delta:   1e-4,
		},
		{
			name:    "linear-fit",
			args:    Args{"x": "0.5,1.5,2.5", "y": "0.35, 0.67, 1.14"},
			primary: 0.395,
			derived: map[string]float64{"b": 0.1275, "max_residual": 0.05},
			delta:   1e-12,
		},
	}

	reg := Default()
	covered := make(map[string]bool, len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			covered[tt.name] = true

			res, err := reg.Eval(tt.name, tt.args)
			require.NoError(t, err)
			require.NoError(t, res.Check())
			require.Equal(t, tt.name, res.Formula)
			require.InDelta(t, tt.primary, res.Float(), tt.delta)

			for name, want := range tt.derived {
				q, ok := res.Lookup(name)
				require.True(t, ok, "missing derived %q", name)
				require.InDelta(t, want, q.Value, tt.delta, name)
			}
		})
	}

	for _, f := range reg.Formulas() {
		require.True(t, covered[f.Name], "formula %s has no test case", f.Name)
	}
}

func TestDefault_Metadata(t *testing.T) {
	reg := Default()
	require.Equal(t, 14, reg.Len())

	for _, f := range reg.Formulas() {
		require.Equal(t, hash.FormulaID(f.Name), f.ID, f.Name)
		require.NotEmpty(t, f.Summary, f.Name)
		require.NotEqual(t, "Unknown", f.Category.String(), f.Name)
		for _, p := range f.Params {
			require.NotEmpty(t, p.Summary, "%s.%s", f.Name, p.Name)
		}
	}

	f, err := reg.Lookup("rtd")
	require.NoError(t, err)
	p, ok := f.Param("a")
	require.True(t, ok)
	require.Equal(t, "0.0039083", p.Default)

	_, ok = f.Param("zeta")
	require.False(t, ok)
}

func TestEval_Modes(t *testing.T) {
	reg := Default()

	res, err := reg.Eval("gain-db", Args{"mode": "power", "out": "2", "in": "1"})
	require.NoError(t, err)
	require.InDelta(t, 3.0103, res.Float(), 1e-4)

	res, err = reg.Eval("time-of-flight", Args{"lag": "85", "fs": "48000", "mode": "echo"})
	require.NoError(t, err)
	require.InDelta(t, 0.301042, res.Float(), 1e-6)

	res, err = reg.Eval("encoder-speed", Args{"lines": "100", "mode": "measured", "pulses": "400", "period": "0.1", "edges": "4"})
	require.NoError(t, err)
	require.InDelta(t, 10.0, res.Float(), 1e-12)

	res, err = reg.Eval("bridge", Args{"u0": "10", "k": "2", "strain": "1e-3", "type": "half"})
	require.NoError(t, err)
	require.InDelta(t, 0.01, res.Float(), 1e-12)

	res, err = reg.Eval("piezo", Args{"beta": "2e-12", "mass": "0.01", "c-cable": "1e-9", "c-amp": "1e-9", "force": "1"})
	require.NoError(t, err)
	require.InDelta(t, 1e-3, res.Float(), 1e-15)

	// Acceleration takes precedence over a directly given force.
	res, err = reg.Eval("piezo", Args{"beta": "2e-12", "mass": "0.001", "c-cable": "1e-9", "c-amp": "1e-9", "accel": "9.81", "force": "1"})
	require.NoError(t, err)
	force, ok := res.Lookup("force")
	require.True(t, ok)
	require.InDelta(t, 0.00981, force.Value, 1e-15)

	res, err = reg.Eval("pitot", Args{"mm-h2o": "50"})
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(2*490.5/1.225), res.Float(), 1e-9)

	res, err = reg.Eval("linearize-power", Args{"c": "3", "p": "1", "x0": "1", "x": "5"})
	require.NoError(t, err)
	require.InDelta(t, 15.0, res.Float(), 1e-6)
}

func TestEval_Errors(t *testing.T) {
	reg := Default()

	tests := []struct {
		name string
		key  string
		args Args
		want error
	}{
		{"unknown formula", "buoyancy", nil, errs.ErrUnknownFormula},
		{"missing required", "bridge", Args{"u0": "10", "strain": "1e-3"}, errs.ErrMissingParameter},
		{"blank counts as missing", "bridge", Args{"u0": "10", "k": " ", "strain": "1e-3"}, errs.ErrMissingParameter},
		{"undeclared parameter", "pitot", Args{"dp": "500", "temp": "20"}, errs.ErrInvalidParameter},
		{"unparsable number", "pitot", Args{"dp": "lots"}, errs.ErrInvalidParameter},
		{"unparsable integer", "adc-resolution", Args{"span": "10", "bits": "8.5"}, errs.ErrInvalidParameter},
		{"fractional bin", "fft-bins", Args{"n": "128", "fs": "1000", "k": "1.5"}, errs.ErrInvalidParameter},
		{"unknown bridge", "bridge", Args{"u0": "10", "k": "2", "strain": "1e-3", "type": "eighth"}, errs.ErrUnknownTag},
		{"unknown gain mode", "gain-db", Args{"mode": "current", "out": "2", "in": "1"}, errs.ErrUnknownTag},
		{"unknown propagation", "time-of-flight", Args{"lag": "1", "fs": "1", "mode": "sideways"}, errs.ErrUnknownTag},
		{"no encoder input", "encoder-speed", Args{"lines": "100", "mode": "measured", "pulses": "4"}, errs.ErrNoInputMode},
		{"bad edge multiplier", "encoder-speed", Args{"lines": "100", "fmax": "1", "edges": "3"}, errs.ErrInvalidOption},
		{"no excitation", "piezo", Args{"beta": "1", "mass": "1", "c-cable": "1", "c-amp": "1"}, errs.ErrNoInputMode},
		{"no pressure", "pitot", Args{}, errs.ErrMissingParameter},
		{"bad density", "pitot", Args{"dp": "500", "rho": "0"}, errs.ErrInvalidOption},
		{"degenerate fit", "linear-fit", Args{"x": "2,2,2", "y": "1,2,3"}, errs.ErrDegenerateFit},
		{"length mismatch", "linear-fit", Args{"x": "1,2,3", "y": "1,2"}, errs.ErrLengthMismatch},
		{"short signal", "fft-peak", Args{"samples": "1", "fs": "10"}, errs.ErrInsufficientData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Eval(tt.key, tt.args)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := Default()

	f, err := reg.Lookup(" PITOT ")
	require.NoError(t, err)
	require.Equal(t, "pitot", f.Name)

	byHex, err := reg.Lookup(fmt.Sprintf("%016x", f.ID))
	require.NoError(t, err)
	require.Same(t, f, byHex)

	byPrefixed, err := reg.Lookup(fmt.Sprintf("0x%X", f.ID))
	require.NoError(t, err)
	require.Same(t, f, byPrefixed)

	byID, ok := reg.LookupID(f.ID)
	require.True(t, ok)
	require.Same(t, f, byID)

	_, ok = reg.LookupID(1)
	require.False(t, ok)

	_, err = reg.Lookup("0xdeadbeef")
	require.ErrorIs(t, err, errs.ErrUnknownFormula)
}

func TestRegistry_Register(t *testing.T) {
	eval := func(*Reader) (result.Result, error) { return result.New("x", result.Quantity{Name: "x"}), nil }

	reg := NewRegistry()
	require.NoError(t, reg.Register("Custom", CategorySignal, "custom formula", []Param{{Name: "a"}}, eval))
	require.Equal(t, 1, reg.Len())

	err := reg.Register("custom", CategorySignal, "again", nil, eval)
	require.ErrorIs(t, err, errs.ErrDuplicateFormula)

	err = reg.Register("", CategorySignal, "nameless", nil, eval)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	err = reg.Register("no-eval", CategorySignal, "no evaluator", nil, nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	err = reg.Register("twice", CategorySignal, "dup param", []Param{{Name: "a"}, {Name: "a"}}, eval)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
	require.Equal(t, 1, reg.Len())

	// Mutating the returned slice leaves the registry intact.
	list := reg.Formulas()
	list[0] = nil
	require.NotNil(t, reg.Formulas()[0])
}

func TestReader(t *testing.T) {
	r := &Reader{formula: "test", args: Args{"n": "3", "xs": "1, 2,,3", "bad": "x"}}

	require.True(t, r.Has("n"))
	require.False(t, r.Has("missing"))
	require.Equal(t, 3, r.Int("n"))
	require.Equal(t, []float64{1, 2, 3}, r.Floats("xs"))
	require.Equal(t, []int{1, 2, 3}, r.Ints("xs"))
	require.Equal(t, "x", r.Text("bad"))
	require.Zero(t, r.Float("missing"))
	require.NoError(t, r.Err())

	require.Zero(t, r.Float("bad"))
	require.ErrorIs(t, r.Err(), errs.ErrInvalidParameter)
	require.Contains(t, r.Err().Error(), `bad="x"`)

	// Later reads are short-circuited once an error is recorded.
	require.Zero(t, r.Int("n"))
}

func TestCategory_String(t *testing.T) {
	require.Equal(t, "Signal", CategorySignal.String())
	require.Equal(t, "Accuracy", CategoryAccuracy.String())
	require.Equal(t, "Sensor", CategorySensor.String())
	require.Equal(t, "Regression", CategoryRegression.String())
	require.Equal(t, "Unknown", Category(0).String())
}
