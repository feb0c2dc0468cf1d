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

// Entry is one key/value pair produced by iteration.
type Entry[K, V prim.Value] interface {
	Key() K
	Value() V

	// SetValue replaces the value of the entry in its container and returns
	// the previous one. Entries that cannot write through return
	// ErrUnsupportedOperation.
	SetValue(value V) (V, error)
}

// BasicEntry is a durable entry: it owns its key and value and can be
// retained after the iterator that produced it moves on. It is detached from
// any container, so SetValue always fails.
type BasicEntry[K, V prim.Value] struct {
	key   K
	value V
}

func NewEntry[K, V prim.Value](key K, value V) BasicEntry[K, V] {
	return BasicEntry[K, V]{key: key, value: value}
}

func (e BasicEntry[K, V]) Key() K {
	return e.key
}

func (e BasicEntry[K, V]) Value() V {
	return e.value
}

func (e BasicEntry[K, V]) SetValue(V) (V, error) {
	return e.value, errors.Wrap(ErrUnsupportedOperation, "entry is detached from its container")
}

func (e BasicEntry[K, V]) String() string {
	return prim.Format(e.key) + "=>" + prim.Format(e.value)
}

// EntryHash combines the key and value hashes of e. Container hash codes are
// the sum of their entry hashes, which makes them independent of order.
func EntryHash[K, V prim.Value](e Entry[K, V]) uint64 {
	return prim.Hash(e.Key()) ^ prim.Hash(e.Value())
}

// EntryEqual compares two entries by the bit patterns of key and value.
func EntryEqual[K, V prim.Value](a, b Entry[K, V]) bool {
	return prim.Equal(a.Key(), b.Key()) && prim.Equal(a.Value(), b.Value())
}

// cursorEntry is the single mutable entry handed out by fast iterators. It
// is only valid until the iterator advances again.
type cursorEntry[K, V prim.Value] struct {
	key   K
	value V

	// write pushes a new value into the backing container; nil means the
	// container does not support writing through entries.
	write func(key K, value V) error
}

func (c *cursorEntry[K, V]) Key() K {
	return c.key
}

func (c *cursorEntry[K, V]) Value() V {
	return c.value
}

func (c *cursorEntry[K, V]) SetValue(value V) (V, error) {
	old := c.value
	if c.write == nil {
		return old, errors.Wrap(ErrUnsupportedOperation, "container entries are read-only")
	}
	if err := c.write(c.key, value); err != nil {
		return old, err
	}
	c.value = value
	return old, nil
}

func (c *cursorEntry[K, V]) String() string {
	return prim.Format(c.key) + "=>" + prim.Format(c.value)
}
