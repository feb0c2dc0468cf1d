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
	"strings"

	"github.com/streamnative/primcoll/common/prim"
)

// ContainsKeyScan looks for key with a linear scan of src.
func ContainsKeyScan[K, V prim.Value](src EntrySource[K, V], key K) bool {
	for k := range All(src) {
		if prim.Equal(k, key) {
			return true
		}
	}
	return false
}

// ContainsValueScan looks for value with a linear scan of src.
func ContainsValueScan[K, V prim.Value](src EntrySource[K, V], value V) bool {
	for _, v := range All(src) {
		if prim.Equal(v, value) {
			return true
		}
	}
	return false
}

// HashCode sums the entry hashes of src.
func HashCode[K, V prim.Value](src EntrySource[K, V]) uint64 {
	var h uint64
	for k, v := range All(src) {
		h += prim.Hash(k) ^ prim.Hash(v)
	}
	return h
}

// Equal reports whether a and b hold the same entries, regardless of their
// concrete type or iteration order.
func Equal[K, V prim.Value](a, b Map[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for k, v := range All[K, V](b) {
		if !a.ContainsKey(k) || !prim.Equal(a.Get(k), v) {
			return false
		}
	}
	return true
}

// PutAll copies every entry of src into dst.
func PutAll[K, V prim.Value](dst Map[K, V], src EntrySource[K, V]) error {
	for k, v := range All(src) {
		if _, err := dst.Put(k, v); err != nil {
			return err
		}
	}
	return nil
}

// String renders src as {k1=>v1, k2=>v2} in iteration order.
func String[K, V prim.Value](src EntrySource[K, V]) string {
	var builder strings.Builder
	builder.WriteString("{")

	first := true
	for k, v := range All(src) {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(prim.Format(k))
		builder.WriteString("=>")
		builder.WriteString(prim.Format(v))
		first = false
	}
	builder.WriteString("}")
	return builder.String()
}

// ToGoMap copies src into a built-in map.
func ToGoMap[K, V prim.Value](src EntrySource[K, V]) map[K]V {
	res := make(map[K]V, src.Size())
	for k, v := range All(src) {
		res[k] = v
	}
	return res
}

// abstractMap derives the Map operations that only need iteration. A
// concrete container embeds it and points self at itself, overriding
// whatever it can do faster.
type abstractMap[K, V prim.Value] struct {
	self        Map[K, V]
	defRetValue V
}

func (a *abstractMap[K, V]) DefaultReturnValue() V {
	return a.defRetValue
}

func (a *abstractMap[K, V]) SetDefaultReturnValue(value V) error {
	a.defRetValue = value
	return nil
}

func (a *abstractMap[K, V]) IsEmpty() bool {
	return a.self.Size() == 0
}

func (a *abstractMap[K, V]) ContainsKey(key K) bool {
	return ContainsKeyScan[K, V](a.self, key)
}

func (a *abstractMap[K, V]) ContainsValue(value V) bool {
	return ContainsValueScan[K, V](a.self, value)
}

func (a *abstractMap[K, V]) GetOrDefault(key K, def V) V {
	if !a.self.ContainsKey(key) {
		return def
	}
	return a.self.Get(key)
}

func (a *abstractMap[K, V]) PutIfAbsent(key K, value V) (V, error) {
	if a.self.ContainsKey(key) {
		return a.self.Get(key), nil
	}
	return a.self.Put(key, value)
}

func (a *abstractMap[K, V]) PutAll(src EntrySource[K, V]) error {
	return PutAll(a.self, src)
}

func (a *abstractMap[K, V]) Clear() error {
	it := a.self.EntryIterator()
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			return err
		}
		if err := it.Remove(); err != nil {
			return err
		}
	}
	return nil
}

func (a *abstractMap[K, V]) Entries() EntrySet[K, V] {
	return newEntrySet(a.self)
}

func (a *abstractMap[K, V]) Keys() KeySet[K] {
	return newKeySet(a.self)
}

func (a *abstractMap[K, V]) Values() ValueCollection[V] {
	return newValueCollection(a.self)
}

func (a *abstractMap[K, V]) HashCode() uint64 {
	return HashCode[K, V](a.self)
}

func (a *abstractMap[K, V]) Equal(other Map[K, V]) bool {
	return Equal(a.self, other)
}

func (a *abstractMap[K, V]) String() string {
	return String[K, V](a.self)
}
