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

type unmodifiableMap[K, V prim.Value] struct {
	m Map[K, V]
}

// Unmodifiable returns a read-only view of m. Every mutation made through
// it, its views, its iterators or its entries fails with
// ErrUnsupportedOperation; changes made to m directly remain visible.
func Unmodifiable[K, V prim.Value](m Map[K, V]) Map[K, V] {
	return &unmodifiableMap[K, V]{m: m}
}

func UnmodifiableSorted[K, V prim.Value](m SortedMap[K, V]) SortedMap[K, V] {
	return &unmodifiableSortedMap[K, V]{unmodifiableMap: unmodifiableMap[K, V]{m: m}, sorted: m}
}

// domain exposes the lock domain of a synchronized delegate so that the
// delegate's own operations can recognise it. The map returned stays
// read-only.
func (u *unmodifiableMap[K, V]) domain() (sync.Locker, Map[K, V]) {
	d, ok := u.m.(lockDomain[K, V])
	if !ok {
		return nil, nil
	}
	mu, m := d.domain()
	if mu == nil {
		return nil, nil
	}
	return mu, Unmodifiable(m)
}

func (u *unmodifiableMap[K, V]) Size() int {
	return u.m.Size()
}

func (u *unmodifiableMap[K, V]) IsEmpty() bool {
	return u.m.IsEmpty()
}

func (u *unmodifiableMap[K, V]) DefaultReturnValue() V {
	return u.m.DefaultReturnValue()
}

func (u *unmodifiableMap[K, V]) SetDefaultReturnValue(V) error {
	return unsupported("setting the default return value")
}

func (u *unmodifiableMap[K, V]) Get(key K) V {
	return u.m.Get(key)
}

func (u *unmodifiableMap[K, V]) GetOrDefault(key K, def V) V {
	return u.m.GetOrDefault(key, def)
}

func (u *unmodifiableMap[K, V]) ContainsKey(key K) bool {
	return u.m.ContainsKey(key)
}

func (u *unmodifiableMap[K, V]) ContainsValue(value V) bool {
	return u.m.ContainsValue(value)
}

func (u *unmodifiableMap[K, V]) Put(K, V) (V, error) {
	return u.m.DefaultReturnValue(), unsupported("put")
}

func (u *unmodifiableMap[K, V]) PutIfAbsent(K, V) (V, error) {
	return u.m.DefaultReturnValue(), unsupported("put")
}

func (u *unmodifiableMap[K, V]) Remove(K) (V, error) {
	return u.m.DefaultReturnValue(), unsupported("remove")
}

func (u *unmodifiableMap[K, V]) PutAll(EntrySource[K, V]) error {
	return unsupported("put")
}

func (u *unmodifiableMap[K, V]) Clear() error {
	return unsupported("clear")
}

func (u *unmodifiableMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	return &unmodifiableIterator[Entry[K, V]]{it: u.m.EntryIterator(), wrap: readOnlyEntry[K, V]}
}

func (u *unmodifiableMap[K, V]) FastEntryIterator() Iterator[Entry[K, V]] {
	return &unmodifiableIterator[Entry[K, V]]{it: FastIterator[K, V](u.m), wrap: readOnlyEntry[K, V]}
}

func (u *unmodifiableMap[K, V]) Entries() EntrySet[K, V] {
	return newEntrySet[K, V](u)
}

func (u *unmodifiableMap[K, V]) Keys() KeySet[K] {
	return newKeySet[K, V](u)
}

func (u *unmodifiableMap[K, V]) Values() ValueCollection[V] {
	return newValueCollection[K, V](u)
}

func (u *unmodifiableMap[K, V]) HashCode() uint64 {
	return HashCode[K, V](u)
}

func (u *unmodifiableMap[K, V]) Equal(other Map[K, V]) bool {
	return Equal[K, V](u, other)
}

func (u *unmodifiableMap[K, V]) String() string {
	return String[K, V](u)
}

type unmodifiableSortedMap[K, V prim.Value] struct {
	unmodifiableMap[K, V]
	sorted SortedMap[K, V]
}

func (u *unmodifiableSortedMap[K, V]) Entries() EntrySet[K, V] {
	return newEntrySet[K, V](u)
}

func (u *unmodifiableSortedMap[K, V]) Keys() KeySet[K] {
	return newKeySet[K, V](u)
}

func (u *unmodifiableSortedMap[K, V]) Values() ValueCollection[V] {
	return newValueCollection[K, V](u)
}

func (u *unmodifiableSortedMap[K, V]) Comparator() Comparator[K] {
	return u.sorted.Comparator()
}

func (u *unmodifiableSortedMap[K, V]) FirstKey() (K, error) {
	return u.sorted.FirstKey()
}

func (u *unmodifiableSortedMap[K, V]) LastKey() (K, error) {
	return u.sorted.LastKey()
}

func (u *unmodifiableSortedMap[K, V]) HeadMap(to K) SortedMap[K, V] {
	return UnmodifiableSorted(u.sorted.HeadMap(to))
}

func (u *unmodifiableSortedMap[K, V]) TailMap(from K) SortedMap[K, V] {
	return UnmodifiableSorted(u.sorted.TailMap(from))
}

func (u *unmodifiableSortedMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	m, err := u.sorted.SubMap(from, to)
	if err != nil {
		return nil, err
	}
	return UnmodifiableSorted(m), nil
}

func (u *unmodifiableSortedMap[K, V]) SortedEntries() BidiIterator[Entry[K, V]] {
	return newUnmodifiableBidiIterator(u.sorted.SortedEntries(), readOnlyEntry[K, V])
}

func (u *unmodifiableSortedMap[K, V]) EntriesFrom(pivot K) BidiIterator[Entry[K, V]] {
	return newUnmodifiableBidiIterator(u.sorted.EntriesFrom(pivot), readOnlyEntry[K, V])
}

func (u *unmodifiableSortedMap[K, V]) KeysFrom(pivot K) BidiIterator[K] {
	return newUnmodifiableBidiIterator(u.sorted.KeysFrom(pivot), nil)
}

type unmodifiableIterator[T any] struct {
	it   Iterator[T]
	wrap func(T) T
}

func (i *unmodifiableIterator[T]) HasNext() bool {
	return i.it.HasNext()
}

func (i *unmodifiableIterator[T]) Next() (T, error) {
	t, err := i.it.Next()
	if err != nil || i.wrap == nil {
		return t, err
	}
	return i.wrap(t), nil
}

func (*unmodifiableIterator[T]) Remove() error {
	return unsupported("iterator remove")
}

type unmodifiableBidiIterator[T any] struct {
	unmodifiableIterator[T]
	bidi BidiIterator[T]
}

func newUnmodifiableBidiIterator[T any](it BidiIterator[T], wrap func(T) T) BidiIterator[T] {
	return &unmodifiableBidiIterator[T]{
		unmodifiableIterator: unmodifiableIterator[T]{it: it, wrap: wrap},
		bidi:                 it,
	}
}

func (i *unmodifiableBidiIterator[T]) HasPrevious() bool {
	return i.bidi.HasPrevious()
}

func (i *unmodifiableBidiIterator[T]) Previous() (T, error) {
	t, err := i.bidi.Previous()
	if err != nil || i.wrap == nil {
		return t, err
	}
	return i.wrap(t), nil
}

type unmodifiableEntry[K, V prim.Value] struct {
	Entry[K, V]
}

func readOnlyEntry[K, V prim.Value](e Entry[K, V]) Entry[K, V] {
	return unmodifiableEntry[K, V]{Entry: e}
}

func (e unmodifiableEntry[K, V]) SetValue(V) (V, error) {
	return e.Value(), unsupported("entry set value")
}

func (e unmodifiableEntry[K, V]) String() string {
	return prim.Format(e.Key()) + "=>" + prim.Format(e.Value())
}
