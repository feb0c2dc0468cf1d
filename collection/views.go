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
	"iter"
	"strings"

	"github.com/streamnative/primcoll/common/prim"
)

// KeySet is a live view of the keys of a Map.
type KeySet[K prim.Value] interface {
	Size() int
	IsEmpty() bool
	Contains(key K) bool
	Iterator() Iterator[K]
	// Remove deletes key from the backing map and reports whether it was there.
	Remove(key K) (bool, error)
	Clear() error
	ToSlice() []K
	All() iter.Seq[K]
	HashCode() uint64
	String() string
}

// ValueCollection is a live view of the values of a Map.
type ValueCollection[V prim.Value] interface {
	Size() int
	IsEmpty() bool
	Contains(value V) bool
	Iterator() Iterator[V]
	// Remove deletes the first entry holding value from the backing map.
	Remove(value V) (bool, error)
	Clear() error
	ToSlice() []V
	All() iter.Seq[V]
	HashCode() uint64
	String() string
}

// EntrySet is a live view of the entries of a Map.
type EntrySet[K, V prim.Value] interface {
	Size() int
	IsEmpty() bool
	Contains(e Entry[K, V]) bool
	Iterator() Iterator[Entry[K, V]]
	FastIterator() Iterator[Entry[K, V]]
	Remove(e Entry[K, V]) (bool, error)
	Clear() error
	// ToSlice returns durable copies of every entry.
	ToSlice() []Entry[K, V]
	All() iter.Seq2[K, V]
	HashCode() uint64
	String() string
}

type keySet[K, V prim.Value] struct {
	m        Map[K, V]
	iterator func() Iterator[K]
}

// newKeySet builds a key view whose iterator projects the entry iterator of m.
func newKeySet[K, V prim.Value](m Map[K, V]) KeySet[K] {
	return &keySet[K, V]{
		m: m,
		iterator: func() Iterator[K] {
			return mapIterator(FastIterator[K, V](m), entryKey[K, V])
		},
	}
}

func (s *keySet[K, V]) Size() int {
	return s.m.Size()
}

func (s *keySet[K, V]) IsEmpty() bool {
	return s.m.IsEmpty()
}

func (s *keySet[K, V]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

func (s *keySet[K, V]) Iterator() Iterator[K] {
	return s.iterator()
}

func (s *keySet[K, V]) Remove(key K) (bool, error) {
	if !s.m.ContainsKey(key) {
		return false, nil
	}
	if _, err := s.m.Remove(key); err != nil {
		return false, err
	}
	return true, nil
}

func (s *keySet[K, V]) Clear() error {
	return s.m.Clear()
}

func (s *keySet[K, V]) ToSlice() []K {
	return ToSlice(s.Iterator())
}

func (s *keySet[K, V]) All() iter.Seq[K] {
	return seq(s.Iterator())
}

func (s *keySet[K, V]) HashCode() uint64 {
	var h uint64
	for k := range s.All() {
		h += prim.Hash(k)
	}
	return h
}

func (s *keySet[K, V]) String() string {
	return formatSeq(s.All())
}

type valueCollection[K, V prim.Value] struct {
	m        Map[K, V]
	iterator func() Iterator[V]
}

func newValueCollection[K, V prim.Value](m Map[K, V]) ValueCollection[V] {
	return &valueCollection[K, V]{
		m: m,
		iterator: func() Iterator[V] {
			return mapIterator(FastIterator[K, V](m), entryValue[K, V])
		},
	}
}

func (c *valueCollection[K, V]) Size() int {
	return c.m.Size()
}

func (c *valueCollection[K, V]) IsEmpty() bool {
	return c.m.IsEmpty()
}

func (c *valueCollection[K, V]) Contains(value V) bool {
	return c.m.ContainsValue(value)
}

func (c *valueCollection[K, V]) Iterator() Iterator[V] {
	return c.iterator()
}

func (c *valueCollection[K, V]) Remove(value V) (bool, error) {
	it := c.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return false, err
		}
		if prim.Equal(v, value) {
			if err := it.Remove(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (c *valueCollection[K, V]) Clear() error {
	return c.m.Clear()
}

func (c *valueCollection[K, V]) ToSlice() []V {
	return ToSlice(c.Iterator())
}

func (c *valueCollection[K, V]) All() iter.Seq[V] {
	return seq(c.Iterator())
}

func (c *valueCollection[K, V]) HashCode() uint64 {
	var h uint64
	for v := range c.All() {
		h += prim.Hash(v)
	}
	return h
}

func (c *valueCollection[K, V]) String() string {
	return formatSeq(c.All())
}

type entrySet[K, V prim.Value] struct {
	m    Map[K, V]
	safe func() Iterator[Entry[K, V]]
	fast func() Iterator[Entry[K, V]]
}

func newEntrySet[K, V prim.Value](m Map[K, V]) EntrySet[K, V] {
	return &entrySet[K, V]{
		m:    m,
		safe: m.EntryIterator,
		fast: func() Iterator[Entry[K, V]] {
			return FastIterator[K, V](m)
		},
	}
}

func (s *entrySet[K, V]) Size() int {
	return s.m.Size()
}

func (s *entrySet[K, V]) IsEmpty() bool {
	return s.m.IsEmpty()
}

func (s *entrySet[K, V]) Contains(e Entry[K, V]) bool {
	return s.m.ContainsKey(e.Key()) && prim.Equal(s.m.Get(e.Key()), e.Value())
}

func (s *entrySet[K, V]) Iterator() Iterator[Entry[K, V]] {
	return s.safe()
}

func (s *entrySet[K, V]) FastIterator() Iterator[Entry[K, V]] {
	return s.fast()
}

func (s *entrySet[K, V]) Remove(e Entry[K, V]) (bool, error) {
	if !s.Contains(e) {
		return false, nil
	}
	if _, err := s.m.Remove(e.Key()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *entrySet[K, V]) Clear() error {
	return s.m.Clear()
}

func (s *entrySet[K, V]) ToSlice() []Entry[K, V] {
	res := make([]Entry[K, V], 0, s.m.Size())
	for k, v := range s.All() {
		res = append(res, NewEntry(k, v))
	}
	return res
}

func (s *entrySet[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := s.FastIterator()
		for it.HasNext() {
			e, err := it.Next()
			if err != nil || !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

func (s *entrySet[K, V]) HashCode() uint64 {
	var h uint64
	for k, v := range s.All() {
		h += prim.Hash(k) ^ prim.Hash(v)
	}
	return h
}

func (s *entrySet[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString("[")
	first := true
	for k, v := range s.All() {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(prim.Format(k))
		builder.WriteString("=>")
		builder.WriteString(prim.Format(v))
		first = false
	}
	builder.WriteString("]")
	return builder.String()
}

func formatSeq[T prim.Value](s iter.Seq[T]) string {
	var builder strings.Builder
	builder.WriteString("[")
	first := true
	for t := range s {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(prim.Format(t))
		first = false
	}
	builder.WriteString("]")
	return builder.String()
}

func entryKey[K, V prim.Value](e Entry[K, V]) K {
	return e.Key()
}

func entryValue[K, V prim.Value](e Entry[K, V]) V {
	return e.Value()
}
