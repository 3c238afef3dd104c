package orderedmap

import "iter"

// Iterator walks a map in insertion order. It is created by Map.Iter and
// cannot be rewound; call Iter again to start over.
//
// Inserting a new key, removing a key, or any other structural change made
// after the iterator was created causes the next call to Next to panic with
// ErrConcurrentModification. Replacing the value of an existing key is not a
// structural change.
type Iterator[K, V any] struct {
	m    *Map[K, V]
	pos  int
	gen  uint64
	done bool
}

// Iter returns an iterator positioned before the oldest entry.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, gen: m.gen}
}

// Next returns the next entry. ok is false once the iterator is exhausted.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if it.done {
		return key, value, false
	}
	if it.gen != it.m.gen {
		panic(ErrConcurrentModification)
	}
	for it.pos < len(it.m.entries) {
		e := &it.m.entries[it.pos]
		it.pos++
		if e.live {
			return e.key, e.value, true
		}
	}
	it.done = true
	return key, value, false
}

// All yields every entry in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Keys yields every key in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in key insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
