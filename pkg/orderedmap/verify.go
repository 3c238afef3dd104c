package orderedmap

import "github.com/pkg/errors"

// Verify checks that the index and the order sequence describe the same set
// of keys, each exactly once. It returns an error wrapping ErrInconsistent
// for the first violation found. Verify is O(n) and meant for tests and
// diagnostics.
func (m *Map[K, V]) Verify() error {
	live := 0
	for pos := range m.entries {
		e := &m.entries[pos]
		if !e.live {
			continue
		}
		live++
		if h := m.hasher.Hash(e.key); h != e.hash {
			return errors.Wrapf(ErrInconsistent, "slot %d: stored hash %#x, key now hashes to %#x", pos, e.hash, h)
		}
		hits := 0
		for _, p := range m.index[e.hash] {
			if p == pos {
				hits++
			}
		}
		if hits != 1 {
			return errors.Wrapf(ErrInconsistent, "slot %d: indexed %d times", pos, hits)
		}
	}
	if live != m.live {
		return errors.Wrapf(ErrInconsistent, "order holds %d live entries, length is %d", live, m.live)
	}

	indexed := 0
	for hash, bucket := range m.index {
		if len(bucket) == 0 {
			return errors.Wrapf(ErrInconsistent, "empty bucket for hash %#x", hash)
		}
		for i, p := range bucket {
			if p < 0 || p >= len(m.entries) || !m.entries[p].live {
				return errors.Wrapf(ErrInconsistent, "hash %#x points at dead slot %d", hash, p)
			}
			if m.entries[p].hash != hash {
				return errors.Wrapf(ErrInconsistent, "slot %d filed under hash %#x", p, hash)
			}
			for _, q := range bucket[i+1:] {
				if m.hasher.Equal(m.entries[p].key, m.entries[q].key) {
					return errors.Wrapf(ErrInconsistent, "slots %d and %d hold the same key", p, q)
				}
			}
		}
		indexed += len(bucket)
	}
	if indexed != m.live {
		return errors.Wrapf(ErrInconsistent, "index holds %d positions, length is %d", indexed, m.live)
	}

	if n := len(m.entries); n > 0 && !m.entries[n-1].live {
		return errors.Wrapf(ErrInconsistent, "last slot %d is a tombstone", n-1)
	}
	if m.Cap() < m.live {
		return errors.Wrapf(ErrInconsistent, "capacity %d below length %d", m.Cap(), m.live)
	}
	return nil
}
