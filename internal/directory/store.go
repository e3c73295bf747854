package directory

import "sync/atomic"

// Store holds the current Snapshot and replaces it atomically.
// Readers always see a complete snapshot, never a mix of two loads.
type Store struct {
	current    atomic.Pointer[Snapshot]
	generation atomic.Uint64
}

// NewStore returns a Store holding an empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(NewSnapshot(nil, nil, nil, nil))
	return s
}

// Current returns the active snapshot. It is never nil.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Refresh builds a snapshot from the given records and installs it.
func (s *Store) Refresh(professors []Professor, subjects []Subject, schedules []Schedule, attachments []Attachment) *Snapshot {
	return s.Swap(NewSnapshot(professors, subjects, schedules, attachments))
}

// Swap installs snap as the current snapshot and stamps it with the next
// generation number. snap must not be shared with another Store.
func (s *Store) Swap(snap *Snapshot) *Snapshot {
	snap.version = s.generation.Add(1)
	s.current.Store(snap)
	return snap
}
