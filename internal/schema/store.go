package schema

import (
	"slices"
)

// Store is the discovery registry for a single run. It maps every known
// record name to its field list and every synthesized wrapper name to
// the type it wraps. It is created empty, grows monotonically, and is
// never shared across runs. Not safe for concurrent use; the pipeline
// is single-threaded.
type Store struct {
	records  map[string][]Field
	wrappers map[string]string // wrapper name -> wrapped type name
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		records:  make(map[string][]Field),
		wrappers: make(map[string]string),
	}
}

// PutRecord stores a record's resolved field list. A later write for
// the same name replaces the earlier one: last write wins, so discovery
// order determines the final content of duplicated names.
func (s *Store) PutRecord(name string, fields []Field) {
	s.records[name] = fields
}

// RegisterStub registers a record that has only been seen as a
// referenced type. It never overwrites an existing entry, so a stub can
// be filled in by a later PutRecord but not the other way around.
func (s *Store) RegisterStub(name string) {
	if _, ok := s.records[name]; ok {
		return
	}

	s.records[name] = nil
}

// RegisterWrapper registers a synthesized optional wrapper. Registering
// the same wrapper name twice is a no-op.
func (s *Store) RegisterWrapper(name, wrapped string) {
	if _, ok := s.wrappers[name]; ok {
		return
	}

	s.wrappers[name] = wrapped
}

// HasRecord reports whether a record (or stub) with the given name exists.
func (s *Store) HasRecord(name string) bool {
	_, ok := s.records[name]
	return ok
}

// Record returns the field list for a record name.
func (s *Store) Record(name string) ([]Field, bool) {
	fields, ok := s.records[name]
	return fields, ok
}

// Wrapper returns the wrapped type name for a wrapper name.
func (s *Store) Wrapper(name string) (string, bool) {
	wrapped, ok := s.wrappers[name]
	return wrapped, ok
}

// RecordNames returns all record names in ascending lexicographic order.
func (s *Store) RecordNames() []string {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// WrapperNames returns all wrapper names in ascending lexicographic order.
func (s *Store) WrapperNames() []string {
	names := make([]string, 0, len(s.wrappers))
	for name := range s.wrappers {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Empty reports whether nothing has been discovered at all.
func (s *Store) Empty() bool {
	return len(s.records) == 0 && len(s.wrappers) == 0
}
