// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collection

import (
	"github.com/pkg/errors"

	"github.com/streamnative/primcoll/common/prim"
)

// ArrayMap is a brute-force container holding keys and values in two
// parallel arrays and finding them by linear scan. It is meant for very
// small maps, where a scan beats the constant overhead of hashing.
//
// Iteration follows insertion order. An ArrayMap is not safe for concurrent
// use; wrap it with Synchronized when it is shared.
type ArrayMap[K, V prim.Value] struct {
	abstractMap[K, V]
	arrayStore[K, V]

	entries EntrySet[K, V]
}

// NewArrayMap creates an empty map. The backing arrays start at the capacity
// given by WithCapacity, zero by default.
func NewArrayMap[K, V prim.Value](opts ...Option[K, V]) (*ArrayMap[K, V], error) {
	options, err := newMapOptions(opts...)
	if err != nil {
		return nil, err
	}
	m := newArrayMap(options)
	m.keys = make([]K, options.capacity)
	m.values = make([]V, options.capacity)
	return m, nil
}

// NewArrayMapFrom creates a map backed by keys and values, which must have
// the same length and hold no duplicate key. The map takes ownership of both
// arrays.
func NewArrayMapFrom[K, V prim.Value](keys []K, values []V, opts ...Option[K, V]) (*ArrayMap[K, V], error) {
	return NewArrayMapWithSize(keys, values, len(keys), opts...)
}

// NewArrayMapWithSize is like NewArrayMapFrom but only the first size
// elements of the arrays are live.
func NewArrayMapWithSize[K, V prim.Value](keys []K, values []V, size int, opts ...Option[K, V]) (*ArrayMap[K, V], error) {
	if len(keys) != len(values) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"keys and values have different lengths (%d, %d)", len(keys), len(values))
	}
	if size < 0 || size > len(keys) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"size (%d) is outside of the backing array size (%d)", size, len(keys))
	}

	options, err := newMapOptions(opts...)
	if err != nil {
		return nil, err
	}
	m := newArrayMap(options)
	m.keys = keys
	m.values = values
	m.size = size
	return m, nil
}

// NewArrayMapFromMap copies every entry of src.
func NewArrayMapFromMap[K, V prim.Value](src EntrySource[K, V], opts ...Option[K, V]) (*ArrayMap[K, V], error) {
	m, err := NewArrayMap(append([]Option[K, V]{WithCapacity[K, V](src.Size())}, opts...)...)
	if err != nil {
		return nil, err
	}
	for k, v := range All(src) {
		m.insertAt(m.size, k, v)
	}
	return m, nil
}

// NewArrayMapFromGo copies a built-in map.
func NewArrayMapFromGo[K, V prim.Value](src map[K]V, opts ...Option[K, V]) (*ArrayMap[K, V], error) {
	m, err := NewArrayMap(append([]Option[K, V]{WithCapacity[K, V](len(src))}, opts...)...)
	if err != nil {
		return nil, err
	}
	for k, v := range src {
		if _, err := m.Put(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func newArrayMap[K, V prim.Value](options mapOptions[K, V]) *ArrayMap[K, V] {
	m := &ArrayMap[K, V]{}
	m.self = m
	m.defRetValue = options.defaultValue
	return m
}

func (m *ArrayMap[K, V]) Size() int {
	return m.size
}

// Capacity returns the length of the backing arrays.
func (m *ArrayMap[K, V]) Capacity() int {
	return len(m.keys)
}

func (m *ArrayMap[K, V]) Get(key K) V {
	if i := m.indexOf(key); i >= 0 {
		return m.values[i]
	}
	return m.defRetValue
}

func (m *ArrayMap[K, V]) GetOrDefault(key K, def V) V {
	if i := m.indexOf(key); i >= 0 {
		return m.values[i]
	}
	return def
}

func (m *ArrayMap[K, V]) ContainsKey(key K) bool {
	return m.indexOf(key) >= 0
}

func (m *ArrayMap[K, V]) ContainsValue(value V) bool {
	for i := m.size - 1; i >= 0; i-- {
		if prim.Equal(m.values[i], value) {
			return true
		}
	}
	return false
}

// Put overwrites the value of an existing key in place, or appends the pair
// after the last live slot.
func (m *ArrayMap[K, V]) Put(key K, value V) (V, error) {
	if i := m.indexOf(key); i >= 0 {
		old := m.values[i]
		m.values[i] = value
		return old, nil
	}
	m.insertAt(m.size, key, value)
	return m.defRetValue, nil
}

func (m *ArrayMap[K, V]) PutIfAbsent(key K, value V) (V, error) {
	if i := m.indexOf(key); i >= 0 {
		return m.values[i], nil
	}
	m.insertAt(m.size, key, value)
	return m.defRetValue, nil
}

func (m *ArrayMap[K, V]) Remove(key K) (V, error) {
	i := m.indexOf(key)
	if i < 0 {
		return m.defRetValue, nil
	}
	return m.removeAt(i), nil
}

func (m *ArrayMap[K, V]) Clear() error {
	m.size = 0
	return nil
}

func (m *ArrayMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	return newArrayIterator(newArrayCursor(&m.arrayStore, 0), m.entryAt)
}

func (m *ArrayMap[K, V]) FastEntryIterator() Iterator[Entry[K, V]] {
	return newArrayIterator(newArrayCursor(&m.arrayStore, 0), m.cursorAt())
}

// Entries returns the entry view, created on first use and cached.
func (m *ArrayMap[K, V]) Entries() EntrySet[K, V] {
	if m.entries == nil {
		m.entries = &entrySet[K, V]{
			m:    m,
			safe: m.EntryIterator,
			fast: m.FastEntryIterator,
		}
	}
	return m.entries
}

func (m *ArrayMap[K, V]) Keys() KeySet[K] {
	return &keySet[K, V]{
		m: m,
		iterator: func() Iterator[K] {
			return newArrayIterator(newArrayCursor(&m.arrayStore, 0), m.keyAt)
		},
	}
}

func (m *ArrayMap[K, V]) Values() ValueCollection[V] {
	return &valueCollection[K, V]{
		m: m,
		iterator: func() Iterator[V] {
			return newArrayIterator(newArrayCursor(&m.arrayStore, 0), m.valueAt)
		},
	}
}

// Clone returns an independent copy with the same capacity and default
// return value.
func (m *ArrayMap[K, V]) Clone() *ArrayMap[K, V] {
	c := newArrayMap(mapOptions[K, V]{defaultValue: m.defRetValue})
	c.keys = make([]K, len(m.keys))
	c.values = make([]V, len(m.values))
	copy(c.keys, m.keys[:m.size])
	copy(c.values, m.values[:m.size])
	c.size = m.size
	return c
}
