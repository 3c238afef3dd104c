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
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{name: "capacity 10", capacity: 10},
		{name: "capacity 0", capacity: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New[string, any](tt.capacity)
			if got.Len() != 0 {
				t.Errorf("New() Len = %v, want 0", got.Len())
			}
			if got.om.Cap() < tt.capacity {
				t.Errorf("New() Cap = %v, want >= %v", got.om.Cap(), tt.capacity)
			}
		})
	}
}

func TestMap_Set(t *testing.T) {
	t.Run("update existing key", func(t *testing.T) {
		m := New[string, string](10)
		m.Set("key1", "value1")
		m.Set("key2", "value2")
		m.Set("key1", "value3")

		if m.Len() != 2 {
			t.Errorf("Set() Len = %v, want 2", m.Len())
		}
		if val, _ := m.Get("key1"); val != "value3" {
			t.Errorf("Set() key1 = %v, want \"value3\"", val)
		}

		expectedKeys := []string{"key1", "key2"}
		if !reflect.DeepEqual(m.Keys(), expectedKeys) {
			t.Errorf("Set() keys = %v, want %v", m.Keys(), expectedKeys)
		}
	})

	t.Run("no size limit", func(t *testing.T) {
		m := New[int, int](2)
		for i := 0; i < 5; i++ {
			m.Set(i, i)
		}
		if m.Len() != 5 {
			t.Errorf("Set() Len = %v, want 5", m.Len())
		}
	})
}

func TestMap_Delete(t *testing.T) {
	m := New[string, int](4)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	if !m.Delete("b") {
		t.Error("Delete() = false, want true")
	}
	if m.Delete("b") {
		t.Error("Delete() of removed key = true, want false")
	}
	m.Set("b", 4)

	expectedKeys := []string{"a", "c", "b"}
	if !reflect.DeepEqual(m.Keys(), expectedKeys) {
		t.Errorf("Keys() = %v, want %v", m.Keys(), expectedKeys)
	}
}

func TestMap_Keys(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		m := New[string, int](10)
		m.Set("key1", 1)
		m.Set("key2", 2)

		keys := m.Keys()
		keys[0] = "changed"

		if got := m.Keys()[0]; got != "key1" {
			t.Errorf("Keys()[0] = %v, want \"key1\"", got)
		}
	})

	t.Run("get keys from empty Map", func(t *testing.T) {
		m := New[string, int](10)
		if keys := m.Keys(); len(keys) != 0 {
			t.Errorf("Keys() length = %v, want 0", len(keys))
		}
	})
}

func TestMap_ForEachToSlice(t *testing.T) {
	m := New[string, any](10)
	m.Set("key1", "value1")
	m.Set("key2", 42)
	m.Set("key3", true)

	order := make([]string, 0)
	m.ForEach(func(k string, v any) {
		order = append(order, k)
	})

	expectedOrder := []string{"key1", "key2", "key3"}
	if !reflect.DeepEqual(order, expectedOrder) {
		t.Errorf("ForEach() order = %v, want %v", order, expectedOrder)
	}

	expectedSlice := []any{"value1", 42, true}
	if slice := m.ToSlice(); !reflect.DeepEqual(slice, expectedSlice) {
		t.Errorf("ToSlice() = %v, want %v", slice, expectedSlice)
	}
}

func TestMap_Snapshot(t *testing.T) {
	m := New[string, int](4)
	m.Set("a", 1)

	snap := m.Snapshot()
	snap.Insert("b", 2)
	m.Set("c", 3)

	if m.Len() != 2 || snap.Len() != 2 {
		t.Fatalf("Len() = %d/%d, want 2/2", m.Len(), snap.Len())
	}
	if snap.Contains("c") {
		t.Error("snapshot sees later writes")
	}
}

func TestMap_Concurrent(t *testing.T) {
	t.Run("concurrent Set Get Delete", func(t *testing.T) {
		m := New[string, int](100)
		var wg sync.WaitGroup
		workers := 10
		opsPerWorker := 100

		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(id int) {
				defer wg.Done()
				for j := 0; j < opsPerWorker; j++ {
					key := fmt.Sprintf("%d-%d", id, j)
					m.Set(key, id*opsPerWorker+j)
					if _, ok := m.Get(key); !ok {
						t.Errorf("Get(%q) missing after Set", key)
					}
					if j%2 == 1 {
						m.Delete(key)
					}
				}
			}(i)
		}
		wg.Wait()

		if got, want := m.Len(), workers*opsPerWorker/2; got != want {
			t.Errorf("Len() = %d, want %d", got, want)
		}
		if err := m.Snapshot().Verify(); err != nil {
			t.Errorf("Verify() = %v", err)
		}
	})

	t.Run("concurrent ForEach while writing", func(t *testing.T) {
		m := New[int, int](50)
		for i := 0; i < 50; i++ {
			m.Set(i, i)
		}

		var wg sync.WaitGroup
		workers := 10
		wg.Add(workers * 2)

		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				prev := -1
				m.ForEach(func(k, v int) {
					if k >= 50 {
						return
					}
					if k != prev+1 {
						t.Errorf("ForEach() out of order: %d after %d", k, prev)
					}
					prev = k
				})
			}()

			go func(id int) {
				defer wg.Done()
				m.Set(100+id, id)
			}(i)
		}
		wg.Wait()

		if m.Len() != 50+workers {
			t.Errorf("Len() = %d, want %d", m.Len(), 50+workers)
		}
	})
}
