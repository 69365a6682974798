package booking

import "sort"

// ExtraSelection is the set of add-on service IDs chosen alongside a base
// service. Using an explicit set keeps the self-exclusion invariant
// enforceable in one place.
type ExtraSelection map[int]struct{}

// NewExtraSelection builds a selection from a list of IDs, dropping duplicates.
func NewExtraSelection(ids ...int) ExtraSelection {
	sel := make(ExtraSelection, len(ids))
	for _, id := range ids {
		sel[id] = struct{}{}
	}
	return sel
}

// Add puts an ID into the selection.
func (s ExtraSelection) Add(id int) {
	s[id] = struct{}{}
}

// Remove drops an ID from the selection.
func (s ExtraSelection) Remove(id int) {
	delete(s, id)
}

// Contains reports whether an ID is selected.
func (s ExtraSelection) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected IDs in ascending order.
func (s ExtraSelection) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
