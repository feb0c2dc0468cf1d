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

// Package collection implements associative containers specialized on
// primitive key and value types.
//
// Every container derives its higher-level behaviour (hashing, equality,
// formatting, views) from a single iteration primitive, EntrySource.
// ArrayMap is the brute-force array-backed container, TreeMap and
// SortedArrayMap add an ordering with range views, and the Empty, Singleton,
// Synchronized and Unmodifiable decorators re-export the same contract.
package collection

import "github.com/streamnative/primcoll/common/prim"

// Comparator orders keys. A nil Comparator means natural order (prim.Compare).
type Comparator[K prim.Value] func(a, b K) int

// EntrySource is the single source of truth of a container's contents.
// EntryIterator works in safe mode: every entry it returns is durable.
type EntrySource[K, V prim.Value] interface {
	Size() int
	EntryIterator() Iterator[Entry[K, V]]
}

// FastEntrySource is implemented by containers that can iterate without
// allocating. FastEntryIterator returns the same cursor entry on every call,
// updated in place; callers that need to keep an entry must copy it.
type FastEntrySource[K, V prim.Value] interface {
	EntrySource[K, V]
	FastEntryIterator() Iterator[Entry[K, V]]
}

// Map is the contract shared by every container and decorator.
//
// Missing keys are never an error: Get, Put (on insert) and Remove (on miss)
// return the configured default return value. Mutations return an error only
// when the container rejects them, e.g. ErrUnsupportedOperation from an
// unmodifiable decorator.
type Map[K, V prim.Value] interface {
	EntrySource[K, V]

	IsEmpty() bool

	DefaultReturnValue() V
	SetDefaultReturnValue(value V) error

	Get(key K) V
	GetOrDefault(key K, def V) V
	ContainsKey(key K) bool
	ContainsValue(value V) bool

	Put(key K, value V) (V, error)
	PutIfAbsent(key K, value V) (V, error)
	Remove(key K) (V, error)
	PutAll(src EntrySource[K, V]) error
	Clear() error

	Entries() EntrySet[K, V]
	Keys() KeySet[K]
	Values() ValueCollection[V]

	HashCode() uint64
	Equal(other Map[K, V]) bool
	String() string
}

// SortedMap orders its keys by Comparator and exposes live range views.
type SortedMap[K, V prim.Value] interface {
	Map[K, V]

	// Comparator returns nil when the map uses the natural order.
	Comparator() Comparator[K]

	FirstKey() (K, error)
	LastKey() (K, error)

	// HeadMap returns the entries with keys strictly less than to.
	HeadMap(to K) SortedMap[K, V]
	// TailMap returns the entries with keys greater than or equal to from.
	TailMap(from K) SortedMap[K, V]
	// SubMap returns the entries in [from, to). It fails with
	// ErrInvalidArgument when from sorts after to.
	SubMap(from, to K) (SortedMap[K, V], error)

	SortedEntries() BidiIterator[Entry[K, V]]
	// EntriesFrom is positioned on the first entry whose key is >= pivot.
	EntriesFrom(pivot K) BidiIterator[Entry[K, V]]
	KeysFrom(pivot K) BidiIterator[K]
}
