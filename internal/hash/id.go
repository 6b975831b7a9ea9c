package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of data.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// FormulaID computes the catalog ID of a formula name. Names are case-folded
// and trimmed first so "Pitot" and " pitot " share an ID.
func FormulaID(name string) uint64 {
	return ID(strings.ToLower(strings.TrimSpace(name)))
}
