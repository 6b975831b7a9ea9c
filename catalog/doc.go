// Package catalog provides a named registry over the instrumath formulas.
//
// Every formula of the signal, accuracy, sensor and regression packages is
// registered under a kebab-case name such as "pitot" or "time-of-flight",
// together with a 64-bit xxHash ID, a category, a one-line summary and the
// descriptors of its parameters. Arguments are passed as strings, which lets
// a command line (or any other text front end) drive every formula through
// the same entry point.
//
// # Basic Usage
//
//	reg := catalog.Default()
//
//	res, err := reg.Eval("bridge", catalog.Args{
//	    "u0":     "10",
//	    "k":      "2",
//	    "strain": "1e-3",
//	    "type":   "quarter",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res) // bridge: Um = 0.005 V ...
//
// # Arguments
//
// Numbers are parsed with strconv.ParseFloat, so "1e-3" and "0.001" are
// equivalent. Sequences (the x and y samples of "linear-fit", the bin queries
// of "fft-bins") are comma-separated. Tags such as the bridge topology accept
// the names understood by the format package parsers.
//
// Parameters that carry a default may be omitted. A missing required
// parameter yields errs.ErrMissingParameter, while an undeclared or
// unparsable one yields errs.ErrInvalidParameter.
//
// # Identification
//
// Formula IDs are the xxHash64 of the case-folded name, the same hashing the
// rest of the module uses, so an ID printed by "instrucalc list" can be used
// in place of the name.
//
// A Registry is immutable once populated and safe for concurrent lookups.
package catalog
