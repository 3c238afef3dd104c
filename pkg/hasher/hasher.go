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

// Package hasher provides string hashing strategies for orderedmap.Map.
package hasher

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-arcade/ordered/pkg/orderedmap"
	"github.com/go-faster/city"
	"github.com/pkg/errors"
)

// Names accepted by ByName.
const (
	Default  = "default"
	XX       = "xxhash"
	CityHash = "city"
	Fold     = "foldcase"
)

type xxHasher struct{}

func (xxHasher) Hash(s string) uint64 { return xxhash.Sum64String(s) }
func (xxHasher) Equal(a, b string) bool { return a == b }

type cityHasher struct{}

func (cityHasher) Hash(s string) uint64 { return city.Hash64([]byte(s)) }
func (cityHasher) Equal(a, b string) bool { return a == b }

// XXHash hashes keys with xxHash64. Unlike the default strategy it is
// deterministic across processes.
func XXHash() orderedmap.Hasher[string] {
	return xxHasher{}
}

// City hashes keys with CityHash64.
func City() orderedmap.Hasher[string] {
	return cityHasher{}
}

type foldHasher struct {
	inner orderedmap.Hasher[string]
}

func (f foldHasher) Hash(s string) uint64 {
	return f.inner.Hash(strings.ToLower(s))
}

func (f foldHasher) Equal(a, b string) bool {
	return f.inner.Equal(strings.ToLower(a), strings.ToLower(b))
}

// FoldCase makes inner treat keys that differ only in case as the same key.
func FoldCase(inner orderedmap.Hasher[string]) orderedmap.Hasher[string] {
	if inner == nil {
		panic(orderedmap.ErrNilHasher)
	}
	return foldHasher{inner: inner}
}

// ByName resolves a configured strategy name. An empty name selects the
// default strategy.
func ByName(name string) (orderedmap.Hasher[string], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Default:
		return orderedmap.NewComparableHasher[string](), nil
	case XX:
		return XXHash(), nil
	case CityHash:
		return City(), nil
	case Fold:
		return FoldCase(XXHash()), nil
	default:
		return nil, errors.Errorf("unknown hasher %q", name)
	}
}
