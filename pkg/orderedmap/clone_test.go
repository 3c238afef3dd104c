package orderedmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Clone(t *testing.T) {
	t.Run("independent copy", func(t *testing.T) {
		m := fill(t, "a", "b", "c")
		m.Remove("b")

		c := m.Clone()
		require.NoError(t, c.Verify())
		assert.True(t, Equal(m, c))
		assert.Equal(t, m.Cap(), c.Cap())

		c.Insert("a", 100)
		c.Insert("d", 4)
		c.Remove("c")

		if diff := cmp.Diff([]pair[string, int]{{"a", 1}, {"c", 3}}, pairs(m)); diff != "" {
			t.Errorf("original changed (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]pair[string, int]{{"a", 100}, {"d", 4}}, pairs(c)); diff != "" {
			t.Errorf("clone mismatch (-want +got):\n%s", diff)
		}
		require.NoError(t, m.Verify())
	})

	t.Run("empty map", func(t *testing.T) {
		c := New[string, int]().Clone()
		assert.True(t, c.IsEmpty())
		c.Insert("x", 1)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("clone keeps hasher", func(t *testing.T) {
		m := WithCapacity[int, int](4)
		m.Insert(7, 7)
		c := m.Clone()
		v, ok := c.Get(7)
		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"both empty", nil, nil, true},
		{"same order", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different order", []string{"a", "b"}, []string{"b", "a"}, false},
		{"different length", []string{"a"}, []string{"a", "b"}, false},
		{"different keys", []string{"a", "b"}, []string{"a", "c"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := New[string, int](), New[string, int]()
			for _, k := range tt.a {
				a.Insert(k, 1)
			}
			for _, k := range tt.b {
				b.Insert(k, 1)
			}
			assert.Equal(t, tt.want, Equal(a, b))
		})
	}

	t.Run("values compared with eq", func(t *testing.T) {
		a, b := New[string, []int](), New[string, []int]()
		a.Insert("k", []int{1, 2})
		b.Insert("k", []int{1, 2})
		assert.True(t, EqualFunc(a, b, func(x, y []int) bool { return cmp.Equal(x, y) }))

		b.Insert("k", []int{1})
		assert.False(t, EqualFunc(a, b, func(x, y []int) bool { return cmp.Equal(x, y) }))
	})
}
