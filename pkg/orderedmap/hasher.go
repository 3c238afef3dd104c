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

package orderedmap

import "hash/maphash"

// Hasher decides how keys are bucketed and compared.
//
// Implementations must be consistent for the lifetime of a Map: keys that are
// Equal must produce the same Hash. A Map cannot detect a violation; lookups
// simply stop finding keys.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// ComparableHasher is the default strategy for comparable keys. It uses
// hash/maphash with a seed chosen when the hasher is created.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a random seed.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h ComparableHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}

func (h ComparableHasher[K]) Equal(a, b K) bool {
	return a == b
}

// HasherFunc adapts a pair of plain functions to the Hasher interface.
type HasherFunc[K any] struct {
	HashFn  func(K) uint64
	EqualFn func(a, b K) bool
}

// NewHasher builds a Hasher from a hash function and an equality function.
func NewHasher[K any](hash func(K) uint64, equal func(a, b K) bool) HasherFunc[K] {
	if hash == nil || equal == nil {
		panic(ErrNilHasher)
	}
	return HasherFunc[K]{HashFn: hash, EqualFn: equal}
}

func (f HasherFunc[K]) Hash(key K) uint64 {
	return f.HashFn(key)
}

func (f HasherFunc[K]) Equal(a, b K) bool {
	return f.EqualFn(a, b)
}
