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

import "github.com/streamnative/primcoll/common/prim"

type singletonMap[K, V prim.Value] struct {
	abstractMap[K, V]
	key   K
	value V
	cmp   Comparator[K]
	cmpf  func(a, b K) int
}

// Singleton returns an immutable sorted map holding exactly one pair. Range
// views return the map itself when they include key, and Empty otherwise.
func Singleton[K, V prim.Value](key K, value V, opts ...Option[K, V]) (SortedMap[K, V], error) {
	options, err := newMapOptions(opts...)
	if err != nil {
		return nil, err
	}
	m := &singletonMap[K, V]{
		key:   key,
		value: value,
		cmp:   options.comparator,
		cmpf:  compareWith(options.comparator),
	}
	m.self = m
	m.defRetValue = options.defaultValue
	return m, nil
}

func (m *singletonMap[K, V]) Size() int {
	return 1
}

func (m *singletonMap[K, V]) IsEmpty() bool {
	return false
}

func (m *singletonMap[K, V]) Get(key K) V {
	if m.cmpf(key, m.key) == 0 {
		return m.value
	}
	return m.defRetValue
}

func (m *singletonMap[K, V]) GetOrDefault(key K, def V) V {
	if m.cmpf(key, m.key) == 0 {
		return m.value
	}
	return def
}

func (m *singletonMap[K, V]) ContainsKey(key K) bool {
	return m.cmpf(key, m.key) == 0
}

func (m *singletonMap[K, V]) ContainsValue(value V) bool {
	return prim.Equal(m.value, value)
}

func (m *singletonMap[K, V]) Put(K, V) (V, error) {
	return m.defRetValue, unsupported("put")
}

func (m *singletonMap[K, V]) PutIfAbsent(K, V) (V, error) {
	return m.defRetValue, unsupported("put")
}

func (m *singletonMap[K, V]) Remove(K) (V, error) {
	return m.defRetValue, unsupported("remove")
}

func (m *singletonMap[K, V]) PutAll(EntrySource[K, V]) error {
	return unsupported("put")
}

func (m *singletonMap[K, V]) Clear() error {
	return unsupported("clear")
}

func (m *singletonMap[K, V]) entries(next int) BidiIterator[Entry[K, V]] {
	return newFixedIterator([]Entry[K, V]{NewEntry(m.key, m.value)}, next)
}

func (m *singletonMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	return m.entries(0)
}

func (m *singletonMap[K, V]) Comparator() Comparator[K] {
	return m.cmp
}

func (m *singletonMap[K, V]) FirstKey() (K, error) {
	return m.key, nil
}

func (m *singletonMap[K, V]) LastKey() (K, error) {
	return m.key, nil
}

func (m *singletonMap[K, V]) HeadMap(to K) SortedMap[K, V] {
	if m.cmpf(m.key, to) < 0 {
		return m
	}
	return Empty[K, V]()
}

func (m *singletonMap[K, V]) TailMap(from K) SortedMap[K, V] {
	if m.cmpf(m.key, from) >= 0 {
		return m
	}
	return Empty[K, V]()
}

func (m *singletonMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	if m.cmpf(from, to) > 0 {
		return nil, errInvertedRange(from, to)
	}
	if m.cmpf(m.key, from) >= 0 && m.cmpf(m.key, to) < 0 {
		return m, nil
	}
	return Empty[K, V](), nil
}

func (m *singletonMap[K, V]) SortedEntries() BidiIterator[Entry[K, V]] {
	return m.entries(0)
}

func (m *singletonMap[K, V]) EntriesFrom(pivot K) BidiIterator[Entry[K, V]] {
	if m.cmpf(m.key, pivot) >= 0 {
		return m.entries(0)
	}
	return m.entries(1)
}

func (m *singletonMap[K, V]) KeysFrom(pivot K) BidiIterator[K] {
	next := 0
	if m.cmpf(m.key, pivot) < 0 {
		next = 1
	}
	return newFixedIterator([]K{m.key}, next)
}
