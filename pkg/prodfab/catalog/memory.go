package catalog

import (
	"maps"
	"sort"
	"sync"
)

// MemoryStore is an in-memory catalog store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]storedEntry
	seq     int
	closed  bool
}

// storedEntry holds an entry with its save sequence for List().
type storedEntry struct {
	entry    Entry
	sequence int
}

// NewMemoryStore creates a new in-memory catalog store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]storedEntry),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	seq := m.seq + 1
	if existing, ok := m.entries[e.ID]; ok {
		seq = existing.sequence
	} else {
		m.seq = seq
	}

	// Copy params to avoid retaining the caller's map
	e.Params = maps.Clone(e.Params)

	m.entries[e.ID] = storedEntry{entry: e, sequence: seq}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(id string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Entry{}, ErrStoreClosed
	}

	stored, ok := m.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}

	// Return a copy to prevent modification
	e := stored.entry
	e.Params = maps.Clone(e.Params)
	return e, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	stored := make([]storedEntry, 0, len(m.entries))
	for _, s := range m.entries {
		stored = append(stored, s)
	}
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].sequence < stored[j].sequence
	})

	entries := make([]Entry, 0, len(stored))
	for _, s := range stored {
		e := s.entry
		e.Params = maps.Clone(e.Params)
		entries = append(entries, e)
	}
	return entries, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.entries, id)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = nil
	return nil
}

// Len returns the number of stored entries.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
