package orderedmap

import "iter"

// View is a read-only handle on a Map. Code holding only a View cannot
// invalidate iterators it obtained from it.
type View[K, V any] struct {
	m *Map[K, V]
}

// View returns a read-only handle backed by m.
func (m *Map[K, V]) View() View[K, V] {
	return View[K, V]{m: m}
}

func (v View[K, V]) Get(key K) (V, bool) { return v.m.Get(key) }
func (v View[K, V]) Contains(key K) bool { return v.m.Contains(key) }
func (v View[K, V]) IndexOf(key K) int { return v.m.IndexOf(key) }
func (v View[K, V]) Len() int { return v.m.Len() }
func (v View[K, V]) IsEmpty() bool { return v.m.IsEmpty() }
func (v View[K, V]) Cap() int { return v.m.Cap() }
func (v View[K, V]) Oldest() (K, V, bool) { return v.m.Oldest() }
func (v View[K, V]) Newest() (K, V, bool) { return v.m.Newest() }
func (v View[K, V]) Iter() *Iterator[K, V] { return v.m.Iter() }
func (v View[K, V]) All() iter.Seq2[K, V] { return v.m.All() }
func (v View[K, V]) Keys() iter.Seq[K] { return v.m.Keys() }
func (v View[K, V]) Values() iter.Seq[V] { return v.m.Values() }
func (v View[K, V]) Clone() *Map[K, V] { return v.m.Clone() }
