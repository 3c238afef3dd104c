package orderedmap

// Every mutation of the order sequence or the index goes through the methods
// in this file so that both structures always describe the same key set.

// find returns the slot of key in the order sequence, or -1, together with
// the key's hash.
func (m *Map[K, V]) find(key K) (int, uint64) {
	if m.hasher == nil {
		panic(ErrNilHasher)
	}
	hash := m.hasher.Hash(key)
	for _, pos := range m.index[hash] {
		if m.hasher.Equal(m.entries[pos].key, key) {
			return pos, hash
		}
	}
	return -1, hash
}

func (m *Map[K, V]) appendEntry(key K, value V, hash uint64) {
	if m.index == nil {
		m.index = make(map[uint64][]int)
	}
	m.entries = append(m.entries, entry[K, V]{key: key, value: value, hash: hash, live: true})
	m.index[hash] = append(m.index[hash], len(m.entries)-1)
	m.live++
	m.gen++
}

// deleteAt turns the slot at pos into a tombstone and drops it from the
// index. Slots never move here, so positions held by the index stay valid.
func (m *Map[K, V]) deleteAt(pos int) {
	e := &m.entries[pos]
	m.unindex(e.hash, pos)
	*e = entry[K, V]{}
	m.live--
	m.gen++
}

func (m *Map[K, V]) unindex(hash uint64, pos int) {
	bucket := m.index[hash]
	for i, p := range bucket {
		if p != pos {
			continue
		}
		if len(bucket) == 1 {
			delete(m.index, hash)
			return
		}
		bucket[i] = bucket[len(bucket)-1]
		m.index[hash] = bucket[:len(bucket)-1]
		return
	}
}

// maybeCompact trims trailing tombstones, so the last slot is always live,
// and compacts the sequence once tombstones outnumber live entries.
func (m *Map[K, V]) maybeCompact() {
	n := len(m.entries)
	for n > 0 && !m.entries[n-1].live {
		n--
	}
	m.entries = m.entries[:n]
	if dead := n - m.live; dead > m.live {
		m.compact()
	}
}

// compact shifts live entries down over tombstones, keeping their relative
// order, and rebuilds the index for the new positions.
func (m *Map[K, V]) compact() {
	if len(m.entries) == m.live {
		return
	}
	j := 0
	for i := range m.entries {
		if !m.entries[i].live {
			continue
		}
		if i != j {
			m.entries[j] = m.entries[i]
		}
		j++
	}
	clear(m.entries[j:])
	m.entries = m.entries[:j]
	clear(m.index)
	m.reindex()
	m.gen++
}

func (m *Map[K, V]) reindex() {
	if m.index == nil {
		m.index = make(map[uint64][]int, len(m.entries))
	}
	for i := range m.entries {
		h := m.entries[i].hash
		m.index[h] = append(m.index[h], i)
	}
}
