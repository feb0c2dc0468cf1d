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

// SortedArrayMap keeps its parallel arrays ordered by key. Lookups are
// linear scans like ArrayMap, so it suits the same small sizes while adding
// ordered iteration and range views.
type SortedArrayMap[K, V prim.Value] struct {
	abstractMap[K, V]
	arrayStore[K, V]

	cmp  Comparator[K]
	cmpf func(a, b K) int
}

func NewSortedArrayMap[K, V prim.Value](opts ...Option[K, V]) (*SortedArrayMap[K, V], error) {
	options, err := newMapOptions(opts...)
	if err != nil {
		return nil, err
	}
	m := &SortedArrayMap[K, V]{
		cmp:  options.comparator,
		cmpf: compareWith(options.comparator),
	}
	m.self = m
	m.defRetValue = options.defaultValue
	m.keys = make([]K, options.capacity)
	m.values = make([]V, options.capacity)
	return m, nil
}

// NewSortedArrayMapFrom copies every entry of src.
func NewSortedArrayMapFrom[K, V prim.Value](src EntrySource[K, V], opts ...Option[K, V]) (*SortedArrayMap[K, V], error) {
	m, err := NewSortedArrayMap(append([]Option[K, V]{WithCapacity[K, V](src.Size())}, opts...)...)
	if err != nil {
		return nil, err
	}
	for k, v := range All(src) {
		if _, err := m.Put(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// search returns the slot of key, or the slot it would be inserted at.
func (m *SortedArrayMap[K, V]) search(key K) (int, bool) {
	for i := 0; i < m.size; i++ {
		switch c := m.cmpf(m.keys[i], key); {
		case c == 0:
			return i, true
		case c > 0:
			return i, false
		}
	}
	return m.size, false
}

func (m *SortedArrayMap[K, V]) lowerBound(key K) int {
	i, _ := m.search(key)
	return i
}

func (m *SortedArrayMap[K, V]) Size() int {
	return m.size
}

func (m *SortedArrayMap[K, V]) Get(key K) V {
	if i, found := m.search(key); found {
		return m.values[i]
	}
	return m.defRetValue
}

func (m *SortedArrayMap[K, V]) GetOrDefault(key K, def V) V {
	if i, found := m.search(key); found {
		return m.values[i]
	}
	return def
}

func (m *SortedArrayMap[K, V]) ContainsKey(key K) bool {
	_, found := m.search(key)
	return found
}

func (m *SortedArrayMap[K, V]) Put(key K, value V) (V, error) {
	i, found := m.search(key)
	if found {
		old := m.values[i]
		m.values[i] = value
		return old, nil
	}
	m.insertAt(i, key, value)
	return m.defRetValue, nil
}

func (m *SortedArrayMap[K, V]) Remove(key K) (V, error) {
	i, found := m.search(key)
	if !found {
		return m.defRetValue, nil
	}
	return m.removeAt(i), nil
}

func (m *SortedArrayMap[K, V]) Clear() error {
	m.size = 0
	return nil
}

func (m *SortedArrayMap[K, V]) Comparator() Comparator[K] {
	return m.cmp
}

func (m *SortedArrayMap[K, V]) compare(a, b K) int {
	return m.cmpf(a, b)
}

func (m *SortedArrayMap[K, V]) FirstKey() (K, error) {
	if m.size == 0 {
		return *new(K), errors.Wrap(ErrNoSuchElement, "map is empty")
	}
	return m.keys[0], nil
}

func (m *SortedArrayMap[K, V]) LastKey() (K, error) {
	if m.size == 0 {
		return *new(K), errors.Wrap(ErrNoSuchElement, "map is empty")
	}
	return m.keys[m.size-1], nil
}

func (m *SortedArrayMap[K, V]) HeadMap(to K) SortedMap[K, V] {
	return newRangeMap[K, V](m, bound[K]{}, at(to))
}

func (m *SortedArrayMap[K, V]) TailMap(from K) SortedMap[K, V] {
	return newRangeMap[K, V](m, at(from), bound[K]{})
}

func (m *SortedArrayMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	if m.cmpf(from, to) > 0 {
		return nil, errInvertedRange(from, to)
	}
	return newRangeMap[K, V](m, at(from), at(to)), nil
}

func (m *SortedArrayMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromStart[K](), false)
}

func (m *SortedArrayMap[K, V]) FastEntryIterator() Iterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromStart[K](), true)
}

func (m *SortedArrayMap[K, V]) SortedEntries() BidiIterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromStart[K](), false)
}

func (m *SortedArrayMap[K, V]) EntriesFrom(pivot K) BidiIterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromPivot(pivot), false)
}

func (m *SortedArrayMap[K, V]) KeysFrom(pivot K) BidiIterator[K] {
	return newArrayIterator(m.cursor(bound[K]{}, bound[K]{}, fromPivot(pivot)), m.keyAt)
}

func (m *SortedArrayMap[K, V]) cursor(lo, hi bound[K], pos position[K]) arrayCursor[K, V] {
	start, end := 0, m.size
	if lo.set {
		start = m.lowerBound(lo.key)
	}
	if hi.set {
		end = m.lowerBound(hi.key)
	}

	next := start
	switch {
	case pos.atEnd:
		next = end
	case pos.pivot.set:
		next = min(max(m.lowerBound(pos.pivot.key), start), end)
	}

	c := newArrayCursor(&m.arrayStore, next)
	c.cmp, c.lo, c.hi = m.cmpf, lo, hi
	return c
}

func (m *SortedArrayMap[K, V]) rangeIterator(lo, hi bound[K], pos position[K], fast bool) BidiIterator[Entry[K, V]] {
	c := m.cursor(lo, hi, pos)
	if fast {
		return newArrayIterator(c, m.cursorAt())
	}
	return newArrayIterator(c, m.entryAt)
}
