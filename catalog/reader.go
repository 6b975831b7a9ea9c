package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/instrumath/errs"
)

var errNotInteger = errors.New("not an integer")

// Reader decodes the textual arguments of one evaluation.
//
// The first decoding error is kept and every later call returns a zero
// value, so an evaluator can read all of its arguments before checking Err.
type Reader struct {
	formula string
	args    Args
	err     error
}

// Has reports whether the argument was supplied or has a default.
func (r *Reader) Has(name string) bool {
	_, ok := r.args[name]
	return ok
}

// Text returns the raw argument value.
func (r *Reader) Text(name string) string {
	return r.args[name]
}

// Float parses a float argument.
func (r *Reader) Float(name string) float64 {
	s, ok := r.lookup(name)
	if !ok {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.fail(name, s, err)
		return 0
	}

	return v
}

// Int parses an integer argument.
func (r *Reader) Int(name string) int {
	s, ok := r.lookup(name)
	if !ok {
		return 0
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail(name, s, err)
		return 0
	}

	return v
}

// Floats parses a comma-separated list of floats.
func (r *Reader) Floats(name string) []float64 {
	s, ok := r.lookup(name)
	if !ok {
		return nil
	}

	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			r.fail(name, field, err)
			return nil
		}
		out = append(out, v)
	}

	return out
}

// Ints parses a comma-separated list of integers.
func (r *Reader) Ints(name string) []int {
	floats := r.Floats(name)
	out := make([]int, 0, len(floats))
	for _, f := range floats {
		if f != float64(int(f)) {
			r.fail(name, strconv.FormatFloat(f, 'g', -1, 64), errNotInteger)
			return nil
		}
		out = append(out, int(f))
	}

	return out
}

// Tag parses an argument with one of the format package parsers.
func Tag[T any](r *Reader, name string, parse func(string) (T, error)) T {
	var zero T
	s, ok := r.lookup(name)
	if !ok {
		return zero
	}

	v, err := parse(s)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("%s: %s: %w", r.formula, name, err)
		}
		return zero
	}

	return v
}

// Err returns the first decoding error.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) lookup(name string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	s, ok := r.args[name]

	return s, ok
}

func (r *Reader) fail(name, value string, cause error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s: %s=%q: %v", errs.ErrInvalidParameter, r.formula, name, value, cause)
	}
}
