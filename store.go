package tableview

import "slices"

// Store holds records in insertion order together with the display
// permutation over them. The index into storage is a record's stable
// identity; the position in the permutation is its display row.
//
// refs is always a permutation of 0..Len()-1.
type Store[T any] struct {
	items []T
	refs  []int
}

// NewStore creates a store holding items in the given order.
func NewStore[T any](items []T) *Store[T] {
	s := &Store[T]{}
	s.Set(items)
	return s
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Set replaces all records with a copy of items and resets the display
// order to storage order.
func (s *Store[T]) Set(items []T) {
	s.items = slices.Clone(items)
	s.resetRefs()
}

// resetRefs puts the display order back to storage order.
func (s *Store[T]) resetRefs() {
	s.refs = s.refs[:0]
	for i := range s.items {
		s.refs = append(s.refs, i)
	}
}

// Insert appends a record at the end of storage and of the display order,
// returning its storage index.
func (s *Store[T]) Insert(item T) int {
	idx := len(s.items)
	s.items = append(s.items, item)
	s.refs = append(s.refs, idx)
	return idx
}

// Remove deletes the record at storage index i and renumbers the references
// above it. Returns false when i is out of range.
func (s *Store[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, false
	}
	s.refs = slices.DeleteFunc(s.refs, func(r int) bool { return r == i })
	for n, r := range s.refs {
		if r > i {
			s.refs[n] = r - 1
		}
	}
	item := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return item, true
}

// Replace swaps the record at storage index i, keeping its identity.
func (s *Store[T]) Replace(i int, item T) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, false
	}
	old := s.items[i]
	s.items[i] = item
	return old, true
}

// Take drains every record, leaving the store empty.
func (s *Store[T]) Take() []T {
	items := s.items
	s.items = nil
	s.refs = s.refs[:0]
	return items
}

// Get returns the record at storage index i.
func (s *Store[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, false
	}
	return s.items[i], true
}

// ptr returns the address of the record at storage index i, or nil.
func (s *Store[T]) ptr(i int) *T {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return &s.items[i]
}

// Ref returns the storage index shown at display row.
func (s *Store[T]) Ref(row int) (int, bool) {
	if row < 0 || row >= len(s.refs) {
		return 0, false
	}
	return s.refs[row], true
}

// RowOf returns the display row of storage index i.
func (s *Store[T]) RowOf(i int) (int, bool) {
	if i < 0 || i >= len(s.items) {
		return 0, false
	}
	// TODO: keep an inverse permutation if tables with very many rows make this scan show up.
	row := slices.Index(s.refs, i)
	return row, row >= 0
}

// SortFunc reorders the display permutation with cmp applied to the
// records. The sort is stable: records comparing equal keep their relative
// display order.
func (s *Store[T]) SortFunc(cmp func(a, b T) int) {
	if len(s.items) == 0 {
		return
	}
	slices.SortStableFunc(s.refs, func(a, b int) int {
		return cmp(s.items[a], s.items[b])
	})
}

// At returns the record shown at display row.
func (s *Store[T]) At(row int) (T, bool) {
	i, ok := s.Ref(row)
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[i], true
}
