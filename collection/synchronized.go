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
	"sync"

	"github.com/streamnative/primcoll/common/prim"
)

// lockDomain is implemented by synchronized decorators so that two of them
// can tell whether they share a lock.
type lockDomain[K, V prim.Value] interface {
	domain() (sync.Locker, Map[K, V])
}

type syncMap[K, V prim.Value] struct {
	mu sync.Locker
	m  Map[K, V]
}

// Synchronized wraps m so that every operation, including the ones reached
// through its views, iterators and entries, holds a single mutex.
func Synchronized[K, V prim.Value](m Map[K, V]) Map[K, V] {
	return SynchronizedWith(m, &sync.Mutex{})
}

// SynchronizedWith is like Synchronized but locks mu, which lets several
// containers share one lock domain. mu is not reentrant.
func SynchronizedWith[K, V prim.Value](m Map[K, V], mu sync.Locker) Map[K, V] {
	return &syncMap[K, V]{mu: mu, m: m}
}

// SynchronizedSorted wraps a sorted map. Its range views lock the same mutex
// as the map they come from.
func SynchronizedSorted[K, V prim.Value](m SortedMap[K, V]) SortedMap[K, V] {
	return SynchronizedSortedWith(m, &sync.Mutex{})
}

func SynchronizedSortedWith[K, V prim.Value](m SortedMap[K, V], mu sync.Locker) SortedMap[K, V] {
	return &syncSortedMap[K, V]{syncMap: syncMap[K, V]{mu: mu, m: m}, sorted: m}
}

func (s *syncMap[K, V]) domain() (sync.Locker, Map[K, V]) {
	return s.mu, s.m
}

// inDomain returns the map behind src when src is locked by s.mu, either
// directly or through another decorator. The caller already holds s.mu.
func (s *syncMap[K, V]) inDomain(src EntrySource[K, V]) (Map[K, V], bool) {
	if d, ok := src.(lockDomain[K, V]); ok {
		if mu, m := d.domain(); mu != nil && mu == s.mu {
			return m, true
		}
	}
	return nil, false
}

func (s *syncMap[K, V]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Size()
}

func (s *syncMap[K, V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.IsEmpty()
}

func (s *syncMap[K, V]) DefaultReturnValue() V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.DefaultReturnValue()
}

func (s *syncMap[K, V]) SetDefaultReturnValue(value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.SetDefaultReturnValue(value)
}

func (s *syncMap[K, V]) Get(key K) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Get(key)
}

func (s *syncMap[K, V]) GetOrDefault(key K, def V) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.GetOrDefault(key, def)
}

func (s *syncMap[K, V]) ContainsKey(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.ContainsKey(key)
}

func (s *syncMap[K, V]) ContainsValue(value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.ContainsValue(value)
}

func (s *syncMap[K, V]) Put(key K, value V) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Put(key, value)
}

func (s *syncMap[K, V]) PutIfAbsent(key K, value V) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.PutIfAbsent(key, value)
}

func (s *syncMap[K, V]) Remove(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(key)
}

func (s *syncMap[K, V]) PutAll(src EntrySource[K, V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.inDomain(src); ok {
		return s.m.PutAll(m)
	}
	return s.m.PutAll(src)
}

func (s *syncMap[K, V]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Clear()
}

func (s *syncMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSyncIterator(s.mu, s.m.EntryIterator(), s.wrapEntry)
}

func (s *syncMap[K, V]) wrapEntry(e Entry[K, V]) Entry[K, V] {
	return &syncEntry[K, V]{mu: s.mu, e: e}
}

func (s *syncMap[K, V]) Entries() EntrySet[K, V] {
	return newEntrySet[K, V](s)
}

func (s *syncMap[K, V]) Keys() KeySet[K] {
	return newKeySet[K, V](s)
}

func (s *syncMap[K, V]) Values() ValueCollection[V] {
	return newValueCollection[K, V](s)
}

func (s *syncMap[K, V]) HashCode() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return HashCode[K, V](s.m)
}

func (s *syncMap[K, V]) Equal(other Map[K, V]) bool {
	if other == Map[K, V](s) {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.inDomain(other); ok {
		return Equal(s.m, m)
	}
	return Equal(s.m, other)
}

func (s *syncMap[K, V]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return String[K, V](s.m)
}

type syncSortedMap[K, V prim.Value] struct {
	syncMap[K, V]
	sorted SortedMap[K, V]
}

func (s *syncSortedMap[K, V]) view(m SortedMap[K, V]) SortedMap[K, V] {
	return &syncSortedMap[K, V]{syncMap: syncMap[K, V]{mu: s.mu, m: m}, sorted: m}
}

func (s *syncSortedMap[K, V]) Entries() EntrySet[K, V] {
	return newEntrySet[K, V](s)
}

func (s *syncSortedMap[K, V]) Keys() KeySet[K] {
	return newKeySet[K, V](s)
}

func (s *syncSortedMap[K, V]) Values() ValueCollection[V] {
	return newValueCollection[K, V](s)
}

func (s *syncSortedMap[K, V]) Equal(other Map[K, V]) bool {
	if other == Map[K, V](s) {
		return true
	}
	return s.syncMap.Equal(other)
}

func (s *syncSortedMap[K, V]) Comparator() Comparator[K] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted.Comparator()
}

func (s *syncSortedMap[K, V]) FirstKey() (K, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted.FirstKey()
}

func (s *syncSortedMap[K, V]) LastKey() (K, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted.LastKey()
}

func (s *syncSortedMap[K, V]) HeadMap(to K) SortedMap[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.sorted.HeadMap(to))
}

func (s *syncSortedMap[K, V]) TailMap(from K) SortedMap[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.sorted.TailMap(from))
}

func (s *syncSortedMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.sorted.SubMap(from, to)
	if err != nil {
		return nil, err
	}
	return s.view(m), nil
}

func (s *syncSortedMap[K, V]) SortedEntries() BidiIterator[Entry[K, V]] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSyncBidiIterator(s.mu, s.sorted.SortedEntries(), s.wrapEntry)
}

func (s *syncSortedMap[K, V]) EntriesFrom(pivot K) BidiIterator[Entry[K, V]] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSyncBidiIterator(s.mu, s.sorted.EntriesFrom(pivot), s.wrapEntry)
}

func (s *syncSortedMap[K, V]) KeysFrom(pivot K) BidiIterator[K] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSyncBidiIterator(s.mu, s.sorted.KeysFrom(pivot), nil)
}

// syncIterator locks around every step of the iterator it wraps. The
// sequence as a whole is not atomic.
type syncIterator[T any] struct {
	mu   sync.Locker
	it   Iterator[T]
	wrap func(T) T
}

func newSyncIterator[T any](mu sync.Locker, it Iterator[T], wrap func(T) T) *syncIterator[T] {
	return &syncIterator[T]{mu: mu, it: it, wrap: wrap}
}

func (i *syncIterator[T]) HasNext() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.it.HasNext()
}

func (i *syncIterator[T]) Next() (T, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	t, err := i.it.Next()
	if err != nil || i.wrap == nil {
		return t, err
	}
	return i.wrap(t), nil
}

func (i *syncIterator[T]) Remove() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.it.Remove()
}

type syncBidiIterator[T any] struct {
	*syncIterator[T]
	bidi BidiIterator[T]
}

func newSyncBidiIterator[T any](mu sync.Locker, it BidiIterator[T], wrap func(T) T) BidiIterator[T] {
	return &syncBidiIterator[T]{syncIterator: newSyncIterator[T](mu, it, wrap), bidi: it}
}

func (i *syncBidiIterator[T]) HasPrevious() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.bidi.HasPrevious()
}

func (i *syncBidiIterator[T]) Previous() (T, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	t, err := i.bidi.Previous()
	if err != nil || i.wrap == nil {
		return t, err
	}
	return i.wrap(t), nil
}

type syncEntry[K, V prim.Value] struct {
	mu sync.Locker
	e  Entry[K, V]
}

func (e *syncEntry[K, V]) Key() K {
	return e.e.Key()
}

func (e *syncEntry[K, V]) Value() V {
	return e.e.Value()
}

func (e *syncEntry[K, V]) SetValue(value V) (V, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.e.SetValue(value)
}

func (e *syncEntry[K, V]) String() string {
	return prim.Format(e.e.Key()) + "=>" + prim.Format(e.e.Value())
}
