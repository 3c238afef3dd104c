// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package orderedmap provides a hash map that remembers the order in which
// keys were first inserted.
//
// A Map keeps two structures in step: an order sequence holding the entries
// in first-insertion order, and a hash index from key hash to positions in
// that sequence. Lookups, inserts and removals are O(1) amortized; removal
// is stable, so the remaining keys keep their relative order.
//
// Updating the value of an existing key does not move it. Removing a key and
// inserting it again places it at the end.
//
// A Map is not safe for concurrent use. Wrap it (see package orderly) or
// confine it to one goroutine.
package orderedmap

// Map is an insertion-ordered hash map. Use one of the constructors; the
// zero value has no hashing strategy, and any lookup or insert on it panics
// with ErrNilHasher.
type Map[K, V any] struct {
	hasher  Hasher[K]
	entries []entry[K, V]
	index   map[uint64][]int
	live    int
	// gen changes on every structural mutation and invalidates iterators.
	gen uint64
}

type entry[K, V any] struct {
	key   K
	value V
	hash  uint64
	live  bool
}

// New returns an empty map using the default hashing strategy. Nothing is
// allocated until the first insert.
func New[K comparable, V any]() *Map[K, V] {
	return WithHasher[K, V](NewComparableHasher[K]())
}

// WithCapacity returns an empty map with room for at least n entries.
func WithCapacity[K comparable, V any](n int) *Map[K, V] {
	return WithCapacityAndHasher[K, V](n, NewComparableHasher[K]())
}

// WithHasher returns an empty map that hashes and compares keys with h.
func WithHasher[K, V any](h Hasher[K]) *Map[K, V] {
	if h == nil {
		panic(ErrNilHasher)
	}
	return &Map[K, V]{hasher: h}
}

// WithCapacityAndHasher returns an empty map with room for at least n
// entries that hashes and compares keys with h.
func WithCapacityAndHasher[K, V any](n int, h Hasher[K]) *Map[K, V] {
	m := WithHasher[K, V](h)
	if n > 0 {
		m.entries = make([]entry[K, V], 0, n)
		m.index = make(map[uint64][]int, n)
	}
	return m
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.live
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.live == 0
}

// Cap returns how many entries the map can hold without reallocating its
// order sequence. It is never less than Len.
func (m *Map[K, V]) Cap() int {
	return cap(m.entries)
}

// Reserve grows the map so that at least n more entries can be inserted
// without reallocation. Slots keep their positions, so iterators stay valid.
func (m *Map[K, V]) Reserve(n int) {
	if n <= 0 || cap(m.entries)-len(m.entries) >= n {
		return
	}
	grown := make([]entry[K, V], len(m.entries), len(m.entries)+n)
	copy(grown, m.entries)
	m.entries = grown
	if m.index == nil {
		m.index = make(map[uint64][]int, n)
	}
}

// ShrinkToFit drops removed slots and releases spare storage. Dropping
// removed slots moves entries and invalidates iterators; releasing storage
// alone does not.
func (m *Map[K, V]) ShrinkToFit() {
	m.compact()
	if cap(m.entries) == len(m.entries) {
		return
	}
	fit := make([]entry[K, V], len(m.entries))
	copy(fit, m.entries)
	m.entries = fit
	m.index = make(map[uint64][]int, m.live)
	m.reindex()
}

// Insert sets key to value. For a new key the entry is appended to the end
// of the order; for an existing key only the value changes and the previous
// value is returned with replaced set to true. The stored key is the one
// from the first insertion.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	pos, hash := m.find(key)
	if pos >= 0 {
		e := &m.entries[pos]
		prev, e.value = e.value, value
		return prev, true
	}
	m.appendEntry(key, value, hash)
	return prev, false
}

// GetOrInsert returns the value stored for key if present. Otherwise it
// inserts value and returns it with loaded set to false.
func (m *Map[K, V]) GetOrInsert(key K, value V) (actual V, loaded bool) {
	pos, hash := m.find(key)
	if pos >= 0 {
		return m.entries[pos].value, true
	}
	m.appendEntry(key, value, hash)
	return value, false
}

// Update replaces the value of an existing key with fn(old). The position of
// the key is unchanged. It reports false, without calling fn, when the key
// is absent.
//
// fn may modify the map. The key is looked up again after fn returns; if fn
// removed it, the new value is discarded and Update reports false.
func (m *Map[K, V]) Update(key K, fn func(V) V) bool {
	pos, _ := m.find(key)
	if pos < 0 {
		return false
	}
	gen := m.gen
	v := fn(m.entries[pos].value)
	if m.gen != gen {
		if pos, _ = m.find(key); pos < 0 {
			return false
		}
	}
	m.entries[pos].value = v
	return true
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if pos, _ := m.find(key); pos >= 0 {
		return m.entries[pos].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	pos, _ := m.find(key)
	return pos >= 0
}

// IndexOf returns the position of key in the current order, or -1. It runs
// in time linear to the position.
func (m *Map[K, V]) IndexOf(key K) int {
	pos, _ := m.find(key)
	if pos < 0 {
		return -1
	}
	n := 0
	for i := 0; i < pos; i++ {
		if m.entries[i].live {
			n++
		}
	}
	return n
}

// Oldest returns the first entry in insertion order.
func (m *Map[K, V]) Oldest() (key K, value V, ok bool) {
	for i := range m.entries {
		if e := &m.entries[i]; e.live {
			return e.key, e.value, true
		}
	}
	return key, value, false
}

// Newest returns the last entry in insertion order.
func (m *Map[K, V]) Newest() (key K, value V, ok bool) {
	// the last slot is always live, see maybeCompact
	if n := len(m.entries); n > 0 {
		e := &m.entries[n-1]
		return e.key, e.value, true
	}
	return key, value, false
}

// Remove deletes key and returns its value. The relative order of the other
// keys is preserved. An absent key leaves the map untouched.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	pos, _ := m.find(key)
	if pos < 0 {
		var zero V
		return zero, false
	}
	value := m.entries[pos].value
	m.deleteAt(pos)
	m.maybeCompact()
	return value, true
}

// Retain removes every entry for which keep returns false. keep must not
// modify the map.
func (m *Map[K, V]) Retain(keep func(K, V) bool) {
	removed := false
	for i := range m.entries {
		e := &m.entries[i]
		if e.live && !keep(e.key, e.value) {
			m.deleteAt(i)
			removed = true
		}
	}
	if removed {
		m.maybeCompact()
	}
}

// Clear removes all entries and keeps the allocated storage.
func (m *Map[K, V]) Clear() {
	if len(m.entries) == 0 {
		return
	}
	clear(m.entries)
	m.entries = m.entries[:0]
	clear(m.index)
	m.live = 0
	m.gen++
}
