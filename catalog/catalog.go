package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/instrumath/errs"
	"github.com/arloliu/instrumath/internal/collision"
	"github.com/arloliu/instrumath/internal/hash"
	"github.com/arloliu/instrumath/result"
)

// Category groups formulas by physical domain.
type Category uint8

const (
	CategorySignal     Category = 0x1 // CategorySignal covers sampling, spectra, gain and propagation.
	CategoryAccuracy   Category = 0x2 // CategoryAccuracy covers error budgets and linearization.
	CategorySensor     Category = 0x3 // CategorySensor covers transducer models.
	CategoryRegression Category = 0x4 // CategoryRegression covers calibration fits.
)

func (c Category) String() string {
	switch c {
	case CategorySignal:
		return "Signal"
	case CategoryAccuracy:
		return "Accuracy"
	case CategorySensor:
		return "Sensor"
	case CategoryRegression:
		return "Regression"
	default:
		return "Unknown"
	}
}

// Param describes one formula argument.
type Param struct {
	Name    string
	Unit    string
	Summary string
	// Default is substituted when the argument is absent. Empty means no default.
	Default string
	// Required parameters without a Default must be supplied by the caller.
	Required bool
}

// Args maps parameter names to their textual values.
type Args map[string]string

// EvalFunc evaluates a formula from arguments that have already been
// completed with defaults and checked against the parameter list.
type EvalFunc func(a *Reader) (result.Result, error)

// Formula is one registered calculator.
type Formula struct {
	Name     string
	ID       uint64
	Category Category
	Summary  string
	Params   []Param

	eval EvalFunc
}

// Param returns the descriptor of the named parameter.
func (f *Formula) Param(name string) (Param, bool) {
	for _, p := range f.Params {
		if p.Name == name {
			return p, true
		}
	}

	return Param{}, false
}

// Eval evaluates the formula.
//
// Parameters:
//   - args: textual argument values keyed by parameter name
//
// Returns:
//   - result.Result: the formula output
//   - error: errs.ErrInvalidParameter for an undeclared or unparsable
//     argument, errs.ErrMissingParameter for an absent required one, or the
//     error of the underlying formula
func (f *Formula) Eval(args Args) (result.Result, error) {
	for name := range args {
		if _, ok := f.Param(name); !ok {
			return result.Result{}, fmt.Errorf("%w: %s has no parameter %q", errs.ErrInvalidParameter, f.Name, name)
		}
	}

	values := make(Args, len(f.Params))
	for _, p := range f.Params {
		v, ok := args[p.Name]
		v = strings.TrimSpace(v)
		switch {
		case ok && v != "":
			values[p.Name] = v
		case p.Default != "":
			values[p.Name] = p.Default
		case p.Required:
			return result.Result{}, fmt.Errorf("%w: %s needs %q", errs.ErrMissingParameter, f.Name, p.Name)
		}
	}

	r := &Reader{formula: f.Name, args: values}
	res, err := f.eval(r)
	if r.err != nil {
		return result.Result{}, r.err
	}

	return res, err
}

// Registry holds formulas by name and by ID.
type Registry struct {
	formulas []*Formula
	byName   map[string]*Formula
	byID     map[uint64]*Formula
	ids      *collision.Tracker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Formula),
		byID:   make(map[uint64]*Formula),
		ids:    collision.NewTracker(),
	}
}

// Register adds a formula. The ID is derived from the name, and the name is
// normalized to lower case.
//
// Returns errs.ErrDuplicateFormula if the name is already taken or its ID
// collides with another name, and errs.ErrInvalidParameter if the formula
// is malformed.
func (r *Registry) Register(name string, category Category, summary string, params []Param, eval EvalFunc) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || eval == nil {
		return fmt.Errorf("%w: formula needs a name and an evaluator", errs.ErrInvalidParameter)
	}

	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, dup := seen[p.Name]; dup || p.Name == "" {
			return fmt.Errorf("%w: %s: bad parameter name %q", errs.ErrInvalidParameter, name, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	id := hash.FormulaID(name)
	if err := r.ids.Track(name, id); err != nil {
		return err
	}

	f := &Formula{
		Name:     name,
		ID:       id,
		Category: category,
		Summary:  summary,
		Params:   slices.Clone(params),
		eval:     eval,
	}
	r.formulas = append(r.formulas, f)
	r.byName[name] = f
	r.byID[id] = f

	return nil
}

// Lookup finds a formula by name, case-insensitive, or by its ID written in
// hexadecimal (with or without a 0x prefix).
func (r *Registry) Lookup(key string) (*Formula, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if f, ok := r.byName[key]; ok {
		return f, nil
	}

	if id, err := strconv.ParseUint(strings.TrimPrefix(key, "0x"), 16, 64); err == nil {
		if f, ok := r.byID[id]; ok {
			return f, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrUnknownFormula, key)
}

// LookupID finds a formula by ID.
func (r *Registry) LookupID(id uint64) (*Formula, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// Formulas returns the registered formulas in registration order.
func (r *Registry) Formulas() []*Formula {
	return slices.Clone(r.formulas)
}

// Len returns the number of registered formulas.
func (r *Registry) Len() int {
	return len(r.formulas)
}

// Eval looks a formula up by name or ID and evaluates it.
func (r *Registry) Eval(key string, args Args) (result.Result, error) {
	f, err := r.Lookup(key)
	if err != nil {
		return result.Result{}, err
	}

	return f.Eval(args)
}
