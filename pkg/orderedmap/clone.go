package orderedmap

// Clone returns an independent copy of m with the same order, the same
// hashing strategy and the same capacity. Values are copied by assignment;
// a value that holds references still shares what it points to.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{hasher: m.hasher, live: m.live}
	if m.entries == nil {
		return c
	}
	c.entries = make([]entry[K, V], 0, cap(m.entries))
	for i := range m.entries {
		if m.entries[i].live {
			c.entries = append(c.entries, m.entries[i])
		}
	}
	c.index = make(map[uint64][]int, m.live)
	c.reindex()
	return c
}

// EqualFunc reports whether a and b hold the same keys in the same order,
// with values equal under eq. Keys are compared with a's hashing strategy.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iter(), b.Iter()
	for {
		ka, va, ok := ia.Next()
		if !ok {
			return true
		}
		kb, vb, _ := ib.Next()
		if !a.hasher.Equal(ka, kb) || !eq(va, vb) {
			return false
		}
	}
}

// Equal is EqualFunc with == on values.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}
