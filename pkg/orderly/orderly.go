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

package orderly

import (
	"sync"

	"github.com/go-arcade/ordered/pkg/orderedmap"
)

// Map is a thread-safe ordered map.
// It guards an orderedmap.Map with a read-write mutex, so it keeps the same
// ordering rules: updates stay in place and removed keys re-enter at the end.
type Map[K comparable, V any] struct {
	mu sync.RWMutex
	om *orderedmap.Map[K, V]
}

// New creates a new Map with room for capacity entries.
func New[K comparable, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		om: orderedmap.WithCapacity[K, V](capacity),
	}
}

// Set adds or updates a key-value pair in the map.
// Existing keys will be updated without affecting the order.
func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.om.Insert(key, value)
}

// Get retrieves the value associated with the given key.
// It returns the value and a boolean indicating whether the key exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.om.Get(key)
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.om.Remove(key)
	return ok
}

func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.om.Len()
}

// Keys returns a copy of all keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]K, 0, m.om.Len())
	for k := range m.om.Keys() {
		out = append(out, k)
	}
	return out
}

// ForEach iterates over all key-value pairs in insertion order.
// The provided function is called for each pair while holding the read
// lock, so it must not call back into m.
func (m *Map[K, V]) ForEach(fn func(k K, v V)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for k, v := range m.om.All() {
		fn(k, v)
	}
}

// ToSlice returns all values as a slice in insertion order.
func (m *Map[K, V]) ToSlice() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]V, 0, m.om.Len())
	for v := range m.om.Values() {
		out = append(out, v)
	}
	return out
}

// Snapshot returns an unsynchronized copy that the caller owns.
func (m *Map[K, V]) Snapshot() *orderedmap.Map[K, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.om.Clone()
}
