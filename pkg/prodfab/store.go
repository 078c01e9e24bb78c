package prodfab

import (
	"cmp"
	"slices"
	"sync"
)

// Store is the backing-container policy for a Factory. Any associative
// container with overwriting insert, keyed lookup, size, key enumeration,
// and keyed removal can back a factory via WithStore.
//
// Keys must enumerate identically between mutations; the iteration order
// itself is left to the implementation.
type Store[K comparable, V any] interface {
	// Set stores value under key, overwriting any existing entry.
	Set(key K, value V)

	// Get returns the value for key and whether it exists.
	Get(key K) (V, bool)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key K)

	// Len returns the number of entries.
	Len() int

	// Keys returns all keys.
	Keys() []K
}

// MapStore is the default store: a map with an insertion-order key index,
// so Keys enumerates in first-registration order. Overwriting an entry
// keeps its original position.
type MapStore[K comparable, V any] struct {
	entries map[K]V
	order   []K
}

// NewMapStore creates an empty MapStore.
func NewMapStore[K comparable, V any]() *MapStore[K, V] {
	return &MapStore[K, V]{entries: make(map[K]V)}
}

// Set implements Store.
func (s *MapStore[K, V]) Set(key K, value V) {
	if _, ok := s.entries[key]; !ok {
		s.order = append(s.order, key)
	}
	s.entries[key] = value
}

// Get implements Store.
func (s *MapStore[K, V]) Get(key K) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Delete implements Store.
func (s *MapStore[K, V]) Delete(key K) {
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.order = slices.DeleteFunc(s.order, func(k K) bool { return k == key })
}

// Len implements Store.
func (s *MapStore[K, V]) Len() int { return len(s.entries) }

// Keys implements Store. The returned slice is a copy.
func (s *MapStore[K, V]) Keys() []K { return slices.Clone(s.order) }

// OrderedStore enumerates keys in sorted order. Use it when callers need a
// total order over identifiers rather than registration order.
type OrderedStore[K cmp.Ordered, V any] struct {
	entries map[K]V
}

// NewOrderedStore creates an empty OrderedStore.
func NewOrderedStore[K cmp.Ordered, V any]() *OrderedStore[K, V] {
	return &OrderedStore[K, V]{entries: make(map[K]V)}
}

// Set implements Store.
func (s *OrderedStore[K, V]) Set(key K, value V) { s.entries[key] = value }

// Get implements Store.
func (s *OrderedStore[K, V]) Get(key K) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Delete implements Store.
func (s *OrderedStore[K, V]) Delete(key K) { delete(s.entries, key) }

// Len implements Store.
func (s *OrderedStore[K, V]) Len() int { return len(s.entries) }

// Keys implements Store. Keys are sorted ascending.
func (s *OrderedStore[K, V]) Keys() []K {
	keys := make([]K, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SyncStore decorates another Store with a sync.RWMutex, making it safe
// for concurrent use. It is the opt-in for factories shared across
// goroutines; the factory itself stays unsynchronized.
type SyncStore[K comparable, V any] struct {
	mu    sync.RWMutex
	inner Store[K, V]
}

// NewSyncStore wraps inner with a mutex. A nil inner defaults to a fresh
// MapStore.
func NewSyncStore[K comparable, V any](inner Store[K, V]) *SyncStore[K, V] {
	if inner == nil {
		inner = NewMapStore[K, V]()
	}
	return &SyncStore[K, V]{inner: inner}
}

// Set implements Store.
func (s *SyncStore[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Set(key, value)
}

// Get implements Store.
func (s *SyncStore[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Get(key)
}

// Delete implements Store.
func (s *SyncStore[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Delete(key)
}

// Len implements Store.
func (s *SyncStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

// Keys implements Store.
func (s *SyncStore[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Keys()
}

// Compile-time interface checks.
var (
	_ Store[string, int] = (*MapStore[string, int])(nil)
	_ Store[string, int] = (*OrderedStore[string, int])(nil)
	_ Store[string, int] = (*SyncStore[string, int])(nil)
)
