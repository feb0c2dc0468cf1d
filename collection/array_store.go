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

// arrayStore keeps entries in two parallel arrays. Only the first size
// slots are live; len(keys) is the capacity.
type arrayStore[K, V prim.Value] struct {
	keys   []K
	values []V
	size   int
}

// indexOf scans from the highest live slot down and returns -1 on a miss.
func (s *arrayStore[K, V]) indexOf(key K) int {
	for i := s.size - 1; i >= 0; i-- {
		if prim.Equal(s.keys[i], key) {
			return i
		}
	}
	return -1
}

// ensureCapacity grows both arrays by doubling, starting from 2.
func (s *arrayStore[K, V]) ensureCapacity(n int) {
	if n <= len(s.keys) {
		return
	}
	capacity := 2 * len(s.keys)
	if capacity < 2 {
		capacity = 2
	}
	for capacity < n {
		capacity *= 2
	}

	keys := make([]K, capacity)
	values := make([]V, capacity)
	copy(keys, s.keys[:s.size])
	copy(values, s.values[:s.size])
	s.keys = keys
	s.values = values
}

func (s *arrayStore[K, V]) insertAt(i int, key K, value V) {
	s.ensureCapacity(s.size + 1)
	copy(s.keys[i+1:s.size+1], s.keys[i:s.size])
	copy(s.values[i+1:s.size+1], s.values[i:s.size])
	s.keys[i] = key
	s.values[i] = value
	s.size++
}

// removeAt closes the gap at i by shifting every later slot left by one.
func (s *arrayStore[K, V]) removeAt(i int) V {
	old := s.values[i]
	copy(s.keys[i:s.size-1], s.keys[i+1:s.size])
	copy(s.values[i:s.size-1], s.values[i+1:s.size])
	s.size--
	return old
}

// arrayCursor is the position of an iterator inside an arrayStore. It is
// shared by the key, value and entry iterators so that they all rebase the
// same way when an element is removed through them.
type arrayCursor[K, V prim.Value] struct {
	s    *arrayStore[K, V]
	next int
	curr int

	// Bounds restrict the cursor to a key range of a sorted store.
	cmp    func(a, b K) int
	lo, hi bound[K]
}

func newArrayCursor[K, V prim.Value](s *arrayStore[K, V], next int) arrayCursor[K, V] {
	return arrayCursor[K, V]{s: s, next: next, curr: -1}
}

func (c *arrayCursor[K, V]) hasNext() bool {
	return c.next < c.s.size && (!c.hi.set || c.cmp(c.s.keys[c.next], c.hi.key) < 0)
}

func (c *arrayCursor[K, V]) hasPrevious() bool {
	return c.next > 0 && (!c.lo.set || c.cmp(c.s.keys[c.next-1], c.lo.key) >= 0)
}

func (c *arrayCursor[K, V]) advance() (int, error) {
	if !c.hasNext() {
		return -1, errExhausted()
	}
	c.curr = c.next
	c.next++
	return c.curr, nil
}

func (c *arrayCursor[K, V]) retreat() (int, error) {
	if !c.hasPrevious() {
		return -1, errExhausted()
	}
	c.next--
	c.curr = c.next
	return c.curr, nil
}

// remove deletes the current slot. Every slot after it moves down by one,
// so a cursor that already stepped over it moves down together with the
// store size.
func (c *arrayCursor[K, V]) remove() error {
	if c.curr < 0 {
		return errNoCurrent()
	}
	c.s.removeAt(c.curr)
	if c.curr < c.next {
		c.next--
	}
	c.curr = -1
	return nil
}

type arrayIterator[K, V prim.Value, T any] struct {
	arrayCursor[K, V]
	project func(i int) T
}

func newArrayIterator[K, V prim.Value, T any](cursor arrayCursor[K, V], project func(i int) T) *arrayIterator[K, V, T] {
	return &arrayIterator[K, V, T]{arrayCursor: cursor, project: project}
}

func (it *arrayIterator[K, V, T]) HasNext() bool {
	return it.hasNext()
}

func (it *arrayIterator[K, V, T]) Next() (T, error) {
	i, err := it.advance()
	if err != nil {
		var zero T
		return zero, err
	}
	return it.project(i), nil
}

func (it *arrayIterator[K, V, T]) HasPrevious() bool {
	return it.hasPrevious()
}

func (it *arrayIterator[K, V, T]) Previous() (T, error) {
	i, err := it.retreat()
	if err != nil {
		var zero T
		return zero, err
	}
	return it.project(i), nil
}

func (it *arrayIterator[K, V, T]) Remove() error {
	return it.remove()
}

func (s *arrayStore[K, V]) keyAt(i int) K {
	return s.keys[i]
}

func (s *arrayStore[K, V]) valueAt(i int) V {
	return s.values[i]
}

func (s *arrayStore[K, V]) entryAt(i int) Entry[K, V] {
	return NewEntry(s.keys[i], s.values[i])
}

// cursorAt returns a projection that refreshes one shared cursor entry.
func (s *arrayStore[K, V]) cursorAt() func(i int) Entry[K, V] {
	cursor := &cursorEntry[K, V]{}
	return func(i int) Entry[K, V] {
		cursor.key = s.keys[i]
		cursor.value = s.values[i]
		return cursor
	}
}
