package vocab

import (
	"sort"
	"sync"
)

// Store is the session-wide vocabulary cache: a name-to-Table map written
// only during explicit population and otherwise read-only.
//
// Store is safe for concurrent readers. A rebuild (ReplaceAll or Load) must
// be serialized by the caller against all other protocol use so that an
// in-flight resolve does not observe a half-relevant vocabulary.
type Store struct {
	mu     sync.RWMutex
	tables map[string]Table
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{tables: make(map[string]Table)}
}

// Put stores t under its name, replacing any prior table of that name.
func (s *Store) Put(t Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[t.Name()] = t
}

// ReplaceAll swaps in a whole new set of tables, discarding every prior one.
// Used by a full vocabulary rebuild.
func (s *Store) ReplaceAll(tables []Table) {
	replacement := make(map[string]Table, len(tables))
	for _, t := range tables {
		replacement[t.Name()] = t
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = replacement
}

// Table returns the named table and whether it exists.
func (s *Store) Table(name string) (Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[name]
	return t, ok
}

// Len returns the number of cached tables.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

// Names returns the names of all cached tables, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the label for code in the named table.
// It satisfies protocol.Resolver.
func (s *Store) Resolve(name string, code uint16) (string, error) {
	t, ok := s.Table(name)
	if !ok {
		return "", &UnknownTableError{Name: name}
	}
	label, ok := t.Lookup(code)
	if !ok {
		return "", &UnknownCodeError{Table: name, Code: code}
	}
	return label, nil
}

// Validate succeeds iff value is among the labels of the named table.
// Called before any settable property is written, so a value the device
// would reject never goes on the wire.
func (s *Store) Validate(name, value string) error {
	t, ok := s.Table(name)
	if !ok {
		return &UnknownTableError{Name: name}
	}
	for _, label := range t.Labels() {
		if label == value {
			return nil
		}
	}
	return &InvalidValueError{Table: name, Value: value, Accepted: t.Labels()}
}
