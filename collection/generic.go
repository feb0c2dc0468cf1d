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
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/streamnative/primcoll/common/prim"
)

// GenericMap is the boxed container contract, usable with any comparable key
// and any value. Get reports absence through found instead of a default
// return value.
type GenericMap[K comparable, V any] interface {
	Put(key K, value V) error
	Get(key K) (value V, found bool)
	Remove(key K) error
	Keys() []K
	Values() []V
	Empty() bool
	Size() int
	Clear() error
	String() string
}

// hashMap is a GenericMap over a built-in map. The size is kept in an
// atomic counter so that it can be read without holding the writer's lock;
// writes still need external synchronization.
type hashMap[K comparable, V any] struct {
	container map[K]V
	size      atomic.Int32
}

func NewHashMap[K comparable, V any]() GenericMap[K, V] {
	return &hashMap[K, V]{
		container: make(map[K]V),
	}
}

func (h *hashMap[K, V]) Put(key K, value V) error {
	if _, exist := h.container[key]; !exist {
		h.size.Add(1)
	}
	h.container[key] = value
	return nil
}

func (h *hashMap[K, V]) Get(key K) (value V, found bool) {
	value, found = h.container[key]
	return value, found
}

func (h *hashMap[K, V]) Remove(key K) error {
	if _, exist := h.container[key]; exist {
		h.size.Add(-1)
		delete(h.container, key)
	}
	return nil
}

func (h *hashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(h.container))
	for key := range h.container {
		keys = append(keys, key)
	}
	return keys
}

func (h *hashMap[K, V]) Values() []V {
	values := make([]V, 0, len(h.container))
	for _, value := range h.container {
		values = append(values, value)
	}
	return values
}

func (h *hashMap[K, V]) Empty() bool {
	return h.size.Load() == 0
}

func (h *hashMap[K, V]) Size() int {
	return int(h.size.Load())
}

func (h *hashMap[K, V]) Clear() error {
	h.container = make(map[K]V)
	h.size.Store(0)
	return nil
}

func (h *hashMap[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")

	first := true
	for k, val := range h.container {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v=>%v", k, val))
		first = false
	}
	builder.WriteString("}")
	return builder.String()
}

// GenericAdapter exposes a specialized Map through the GenericMap contract.
type GenericAdapter[K, V prim.Value] struct {
	m Map[K, V]
}

var _ GenericMap[int64, int64] = (*GenericAdapter[int64, int64])(nil)

// AsGeneric adapts m without copying it.
func AsGeneric[K, V prim.Value](m Map[K, V]) *GenericAdapter[K, V] {
	return &GenericAdapter[K, V]{m: m}
}

// Unwrap returns the adapted map.
func (g *GenericAdapter[K, V]) Unwrap() Map[K, V] {
	return g.m
}

func (g *GenericAdapter[K, V]) Put(key K, value V) error {
	_, err := g.m.Put(key, value)
	return err
}

// Get returns found=false for a missing key, whatever the default return
// value of the adapted map is.
func (g *GenericAdapter[K, V]) Get(key K) (value V, found bool) {
	if !g.m.ContainsKey(key) {
		return value, false
	}
	return g.m.Get(key), true
}

// Lookup is Get packaged as an Optional.
func (g *GenericAdapter[K, V]) Lookup(key K) Optional[V] {
	if value, found := g.Get(key); found {
		return OptionalOf(value)
	}
	return EmptyOptional[V]()
}

func (g *GenericAdapter[K, V]) Remove(key K) error {
	_, err := g.m.Remove(key)
	return err
}

func (g *GenericAdapter[K, V]) Keys() []K {
	return g.m.Keys().ToSlice()
}

func (g *GenericAdapter[K, V]) Values() []V {
	return g.m.Values().ToSlice()
}

func (g *GenericAdapter[K, V]) Empty() bool {
	return g.m.IsEmpty()
}

func (g *GenericAdapter[K, V]) Size() int {
	return g.m.Size()
}

func (g *GenericAdapter[K, V]) Clear() error {
	return g.m.Clear()
}

func (g *GenericAdapter[K, V]) String() string {
	return g.m.String()
}

// NewArrayMapFromGeneric copies a GenericMap holding primitive keys and
// values into a new ArrayMap.
func NewArrayMapFromGeneric[K, V prim.Value](src GenericMap[K, V], opts ...Option[K, V]) (*ArrayMap[K, V], error) {
	m, err := NewArrayMap(append([]Option[K, V]{WithCapacity[K, V](src.Size())}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, k := range src.Keys() {
		v, _ := src.Get(k)
		if _, err := m.Put(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}
