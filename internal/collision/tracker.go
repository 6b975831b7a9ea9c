package collision

import (
	"fmt"
	"slices"

	"github.com/arloliu/instrumath/errs"
)

// Tracker records formula names by their hash ID and rejects reuse of
// either. Names are kept in registration order.
type Tracker struct {
	names map[uint64]string // ID → name
	order []string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
		order: make([]string, 0),
	}
}

// Track records name under id.
//
// Returns an error wrapping:
//   - errs.ErrInvalidParameter if the name is empty
//   - errs.ErrDuplicateFormula if the same name is tracked twice, or if a
//     different name already hashed to id
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return fmt.Errorf("%w: empty formula name", errs.ErrInvalidParameter)
	}

	if existing, exists := t.names[id]; exists {
		if existing == name {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateFormula, name)
		}

		return fmt.Errorf("%w: hash collision between %s and %s (ID %016x)", errs.ErrDuplicateFormula, name, existing, id)
	}

	t.names[id] = name
	t.order = append(t.order, name)

	return nil
}

// Name returns the name tracked under id.
func (t *Tracker) Name(id uint64) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// Names returns a copy of the tracked names in the order Track was called.
func (t *Tracker) Names() []string {
	return slices.Clone(t.order)
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.order)
}
