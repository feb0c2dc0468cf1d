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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	hm := NewHashMap[string, int]()

	size := hm.Size()
	assert.Equal(t, size, 0)
	assert.True(t, hm.Empty())
	assert.NoError(t, hm.Put("one", 1))
	val, found := hm.Get("one")
	assert.Equal(t, val, 1)
	assert.True(t, found)

	// test repeat put
	assert.NoError(t, hm.Put("one", 10))
	val, found = hm.Get("one")
	assert.Equal(t, val, 10)
	assert.True(t, found)
	assert.Equal(t, hm.Size(), 1)

	assert.NoError(t, hm.Put("two", 2))
	assert.NoError(t, hm.Put("three", 3))
	assert.Equal(t, hm.Size(), 3)

	assert.ElementsMatch(t, []string{"one", "two", "three"}, hm.Keys())
	assert.ElementsMatch(t, []int{10, 2, 3}, hm.Values())

	assert.NoError(t, hm.Remove("two"))
	_, found = hm.Get("two")
	assert.False(t, found)
	assert.Equal(t, hm.Size(), 2)

	// removing a missing key keeps the size
	assert.NoError(t, hm.Remove("two"))
	assert.Equal(t, hm.Size(), 2)

	assert.NoError(t, hm.Clear())
	assert.Equal(t, hm.Size(), 0)
	assert.True(t, hm.Empty())

	assert.NoError(t, hm.Put("four", 4))
	assert.Equal(t, "{four=>4}", hm.String())

	assert.NoError(t, hm.Clear())
	assert.Equal(t, "{}", hm.String())
}

func TestAsGeneric(t *testing.T) {
	m, err := NewArrayMap(WithDefaultReturnValue[int32, int32](-1))
	require.NoError(t, err)
	g := AsGeneric[int32, int32](m)

	_, found := g.Get(1)
	assert.False(t, found)
	assert.True(t, g.Lookup(1).Empty())
	assert.Equal(t, int32(7), g.Lookup(1).OrElse(7))
	assert.Panics(t, func() {
		g.Lookup(1).MustGet()
	})

	// a key mapped to the default return value is still found
	assert.NoError(t, g.Put(1, -1))
	v, found := g.Get(1)
	assert.True(t, found)
	assert.Equal(t, int32(-1), v)
	assert.Equal(t, int32(-1), g.Lookup(1).MustGet())

	assert.NoError(t, g.Put(2, 20))
	assert.Equal(t, 2, g.Size())
	assert.False(t, g.Empty())
	assert.Equal(t, []int32{1, 2}, g.Keys())
	assert.Equal(t, []int32{-1, 20}, g.Values())
	assert.Equal(t, "{1=>-1, 2=>20}", g.String())
	assert.Same(t, m, g.Unwrap())

	assert.NoError(t, g.Remove(1))
	assert.False(t, m.ContainsKey(1))

	copied, err := NewArrayMapFromGeneric[int32, int32](g)
	require.NoError(t, err)
	assert.True(t, copied.Equal(m))

	assert.NoError(t, g.Clear())
	assert.True(t, m.IsEmpty())

	ro := AsGeneric[int32, int32](Unmodifiable[int32, int32](copied))
	assert.ErrorIs(t, ro.Put(3, 3), ErrUnsupportedOperation)
	assert.ErrorIs(t, ro.Remove(2), ErrUnsupportedOperation)
}

func TestNewArrayMapFromGeneric(t *testing.T) {
	hm := NewHashMap[uint8, float32]()
	assert.NoError(t, hm.Put(1, 0.5))
	assert.NoError(t, hm.Put(2, 1.5))

	m, err := NewArrayMapFromGeneric(hm)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, float32(1.5), m.Get(2))
}

func TestOptional(t *testing.T) {
	o := OptionalOf(5)
	assert.True(t, o.Present())
	assert.False(t, o.Empty())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, "Optional[5]", o.(optional[int]).String())

	e := EmptyOptional[int]()
	assert.True(t, e.Empty())
	_, ok = e.Get()
	assert.False(t, ok)
	assert.Equal(t, 3, e.OrElse(3))
	assert.Equal(t, "Optional.empty", e.(optional[int]).String())
}
