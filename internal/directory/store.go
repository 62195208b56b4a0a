package directory

// Store holds the fetched batch and the currently filtered projection of it.
// It owns no UI state and is only touched from the controller's goroutine.
type Store struct {
	full RecordSet
	view RecordSet
}

// SetFull replaces the full batch and resets the view to it.
func (s *Store) SetFull(records RecordSet) {
	s.full = cloneRecords(records)
	s.view = s.full
}

// SetView replaces the view only.
func (s *Store) SetView(records RecordSet) {
	s.view = cloneRecords(records)
}

// Full returns a copy of the full batch.
func (s *Store) Full() RecordSet {
	return cloneRecords(s.full)
}

// View returns a copy of the current view.
func (s *Store) View() RecordSet {
	return cloneRecords(s.view)
}

// Len reports the length of the current view.
func (s *Store) Len() int {
	return len(s.view)
}

// At returns the record at position i in the current view.
func (s *Store) At(i int) (Record, bool) {
	if i < 0 || i >= len(s.view) {
		return Record{}, false
	}
	return s.view[i], true
}

// Total reports the size of the full batch.
func (s *Store) Total() int {
	return len(s.full)
}
