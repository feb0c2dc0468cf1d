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

// emptyMap holds no state, so every instance of a given type pair is
// interchangeable with any other.
type emptyMap[K, V prim.Value] struct{}

// Empty returns the immutable empty sorted map. Put fails, while Remove and
// Clear have nothing to do and succeed.
func Empty[K, V prim.Value]() SortedMap[K, V] {
	return emptyMap[K, V]{}
}

func (emptyMap[K, V]) Size() int {
	return 0
}

func (emptyMap[K, V]) IsEmpty() bool {
	return true
}

func (emptyMap[K, V]) DefaultReturnValue() V {
	var zero V
	return zero
}

func (emptyMap[K, V]) SetDefaultReturnValue(V) error {
	return unsupported("setting the default return value")
}

func (emptyMap[K, V]) Get(K) V {
	var zero V
	return zero
}

func (emptyMap[K, V]) GetOrDefault(_ K, def V) V {
	return def
}

func (emptyMap[K, V]) ContainsKey(K) bool {
	return false
}

func (emptyMap[K, V]) ContainsValue(V) bool {
	return false
}

func (emptyMap[K, V]) Put(K, V) (V, error) {
	var zero V
	return zero, unsupported("put")
}

func (emptyMap[K, V]) PutIfAbsent(K, V) (V, error) {
	var zero V
	return zero, unsupported("put")
}

func (emptyMap[K, V]) Remove(K) (V, error) {
	var zero V
	return zero, nil
}

func (emptyMap[K, V]) PutAll(src EntrySource[K, V]) error {
	if src.Size() == 0 {
		return nil
	}
	return unsupported("put")
}

func (emptyMap[K, V]) Clear() error {
	return nil
}

func (emptyMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	return newFixedIterator[Entry[K, V]](nil, 0)
}

func (m emptyMap[K, V]) Entries() EntrySet[K, V] {
	return newEntrySet[K, V](m)
}

func (m emptyMap[K, V]) Keys() KeySet[K] {
	return newKeySet[K, V](m)
}

func (m emptyMap[K, V]) Values() ValueCollection[V] {
	return newValueCollection[K, V](m)
}

func (emptyMap[K, V]) HashCode() uint64 {
	return 0
}

func (emptyMap[K, V]) Equal(other Map[K, V]) bool {
	return other.Size() == 0
}

func (emptyMap[K, V]) String() string {
	return "{}"
}

func (emptyMap[K, V]) Comparator() Comparator[K] {
	return nil
}

func (emptyMap[K, V]) FirstKey() (K, error) {
	return firstKey(newFixedIterator[Entry[K, V]](nil, 0))
}

func (emptyMap[K, V]) LastKey() (K, error) {
	return lastKey(newFixedIterator[Entry[K, V]](nil, 0))
}

func (m emptyMap[K, V]) HeadMap(K) SortedMap[K, V] {
	return m
}

func (m emptyMap[K, V]) TailMap(K) SortedMap[K, V] {
	return m
}

func (m emptyMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	if prim.Compare(from, to) > 0 {
		return nil, errInvertedRange(from, to)
	}
	return m, nil
}

func (emptyMap[K, V]) SortedEntries() BidiIterator[Entry[K, V]] {
	return newFixedIterator[Entry[K, V]](nil, 0)
}

func (emptyMap[K, V]) EntriesFrom(K) BidiIterator[Entry[K, V]] {
	return newFixedIterator[Entry[K, V]](nil, 0)
}

func (emptyMap[K, V]) KeysFrom(K) BidiIterator[K] {
	return newFixedIterator[K](nil, 0)
}

