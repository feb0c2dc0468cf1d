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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	m := Empty[int32, float64]()

	assert.Equal(t, 0, m.Size())
	assert.True(t, m.IsEmpty())
	assert.False(t, m.ContainsKey(1))
	assert.Equal(t, 2.5, m.GetOrDefault(1, 2.5))
	assert.Equal(t, "{}", m.String())
	assert.Equal(t, uint64(0), m.HashCode())
	assert.Equal(t, Empty[int32, float64](), m)

	_, err := m.Put(1, 1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = m.Remove(1)
	assert.NoError(t, err)
	assert.NoError(t, m.Clear())

	_, err = m.FirstKey()
	assert.ErrorIs(t, err, ErrNoSuchElement)
	_, err = m.LastKey()
	assert.ErrorIs(t, err, ErrNoSuchElement)

	assert.Equal(t, m, m.HeadMap(1))
	_, err = m.SubMap(2, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.False(t, m.SortedEntries().HasNext())
	assert.Empty(t, m.Keys().ToSlice())

	other, err := NewArrayMap[int32, float64]()
	require.NoError(t, err)
	assert.True(t, m.Equal(other))
	assert.True(t, other.Equal(m))
	assert.NoError(t, m.PutAll(other))
}

func TestSingleton(t *testing.T) {
	m, err := Singleton[int32, int32](5, 50, WithDefaultReturnValue[int32, int32](-1))
	require.NoError(t, err)

	assert.Equal(t, 1, m.Size())
	assert.Equal(t, int32(50), m.Get(5))
	assert.Equal(t, int32(-1), m.Get(6))
	assert.True(t, m.ContainsValue(50))
	assert.Equal(t, "{5=>50}", m.String())

	_, err = m.Put(6, 60)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = m.Remove(5)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.ErrorIs(t, m.Clear(), ErrUnsupportedOperation)

	it := m.EntryIterator()
	e, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(5), e.Key())
	assert.ErrorIs(t, it.Remove(), ErrUnsupportedOperation)
	_, err = e.SetValue(1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	assert.True(t, m.HeadMap(5).IsEmpty())
	assert.Equal(t, 1, m.HeadMap(6).Size())
	assert.Equal(t, 1, m.TailMap(5).Size())
	assert.True(t, m.TailMap(6).IsEmpty())

	sub, err := m.SubMap(1, 9)
	require.NoError(t, err)
	assert.Equal(t, m, sub)
	_, err = m.SubMap(9, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	from := m.EntriesFrom(6)
	assert.False(t, from.HasNext())
	e, err = from.Previous()
	require.NoError(t, err)
	assert.Equal(t, int32(5), e.Key())

	keys := m.KeysFrom(5)
	k, err := keys.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(5), k)

	other, err := NewArrayMapFrom([]int32{5}, []int32{50})
	require.NoError(t, err)
	assert.True(t, m.Equal(other))
	assert.Equal(t, other.HashCode(), m.HashCode())
}

func TestSynchronized(t *testing.T) {
	tree, err := NewTreeMap[int64, int64]()
	require.NoError(t, err)
	m := SynchronizedSorted[int64, int64](tree)

	wg := sync.WaitGroup{}
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func(w int64) {
			defer wg.Done()
			for i := int64(0); i < 100; i++ {
				_, err := m.Put(w*100+i, i)
				assert.NoError(t, err)
				_ = m.Get(w*100 + i)
				_ = m.Size()
			}
		}(int64(w))
	}
	wg.Wait()
	assert.Equal(t, 1000, m.Size())
	assert.Equal(t, 1000, tree.Size())

	head := m.HeadMap(100)
	assert.Equal(t, 100, head.Size())

	// views of the same lock domain compare without relocking
	assert.True(t, m.Equal(m))
	assert.True(t, head.Equal(m.HeadMap(100)))
	assert.False(t, head.Equal(m))
	assert.Equal(t, tree.HashCode(), m.HashCode())
	assert.Equal(t, tree.String(), m.String())

	// removal through the view of a synchronized map
	it := head.EntryIterator()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e.Key()%2 == 1 {
			require.NoError(t, it.Remove())
		}
	}
	assert.Equal(t, 50, head.Size())
	assert.Equal(t, 950, m.Size())

	removed, err := m.Keys().Remove(0)
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, tree.ContainsKey(0))
}

func TestSynchronized_SharedDomain(t *testing.T) {
	mu := &sync.Mutex{}
	a, err := NewArrayMapFrom([]int32{1, 2}, []int32{10, 20})
	require.NoError(t, err)
	b, err := NewArrayMap[int32, int32]()
	require.NoError(t, err)

	sa := SynchronizedWith[int32, int32](a, mu)
	sb := SynchronizedWith[int32, int32](b, mu)

	assert.NoError(t, sb.PutAll(sa))
	assert.True(t, sb.Equal(sa))
	assert.True(t, Equal[int32, int32](b, a))

	// a different domain takes its own lock
	sc := Synchronized[int32, int32](b)
	assert.True(t, sc.Equal(sa))
}

func TestSynchronized_DomainThroughUnmodifiable(t *testing.T) {
	tree, err := NewTreeMap[int32, int32]()
	require.NoError(t, err)
	for k := int32(1); k <= 4; k++ {
		_, _ = tree.Put(k, k*10)
	}
	s := SynchronizedSorted[int32, int32](tree)
	u := UnmodifiableSorted[int32, int32](s)
	shared, _ := s.(lockDomain[int32, int32]).domain()

	done := make(chan struct{})
	go func() {
		defer close(done)

		assert.True(t, s.Equal(u))
		assert.True(t, s.Equal(Unmodifiable[int32, int32](u)))
		assert.False(t, s.Equal(u.HeadMap(3)))
		assert.True(t, s.HeadMap(3).Equal(UnmodifiableSorted(s.HeadMap(3))))

		other, err := NewArrayMap[int32, int32]()
		if !assert.NoError(t, err) {
			return
		}
		o := SynchronizedWith[int32, int32](other, shared)
		assert.NoError(t, o.PutAll(u))
		assert.NoError(t, o.PutAll(Unmodifiable[int32, int32](u.TailMap(3))))
		assert.Equal(t, 4, other.Size())

		assert.NoError(t, s.PutAll(u))
		assert.Equal(t, 4, s.Size())
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "operation on a shared lock domain did not return")
	}

	// the unwrapped delegate stays read-only
	mu, m := u.(lockDomain[int32, int32]).domain()
	assert.NotNil(t, mu)
	_, err = m.Put(9, 90)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	plain, err := NewArrayMap[int32, int32]()
	require.NoError(t, err)
	mu, _ = Unmodifiable[int32, int32](plain).(lockDomain[int32, int32]).domain()
	assert.Nil(t, mu)
}

func TestSynchronized_Entries(t *testing.T) {
	tree, err := NewTreeMap[int32, int32]()
	require.NoError(t, err)
	_, _ = tree.Put(1, 10)
	m := Synchronized[int32, int32](tree)

	it := m.EntryIterator()
	e, err := it.Next()
	require.NoError(t, err)
	old, err := e.SetValue(11)
	assert.NoError(t, err)
	assert.Equal(t, int32(10), old)
	assert.Equal(t, int32(11), tree.Get(1))
	assert.Equal(t, "1=>11", e.(*syncEntry[int32, int32]).String())
}

func TestUnmodifiable(t *testing.T) {
	base, err := NewSortedArrayMap[int32, int32]()
	require.NoError(t, err)
	for _, k := range []int32{1, 3, 5, 7} {
		_, _ = base.Put(k, k*10)
	}
	m := UnmodifiableSorted[int32, int32](base)

	assert.Equal(t, 4, m.Size())
	assert.Equal(t, int32(30), m.Get(3))
	assert.True(t, m.Equal(base))
	assert.Equal(t, base.HashCode(), m.HashCode())
	assert.Equal(t, base.String(), m.String())

	_, err = m.Put(9, 90)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = m.PutIfAbsent(9, 90)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = m.Remove(1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.ErrorIs(t, m.Clear(), ErrUnsupportedOperation)
	assert.ErrorIs(t, m.PutAll(base), ErrUnsupportedOperation)
	assert.ErrorIs(t, m.SetDefaultReturnValue(1), ErrUnsupportedOperation)

	_, err = m.Keys().Remove(1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = m.Values().Remove(10)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.ErrorIs(t, m.Entries().Clear(), ErrUnsupportedOperation)

	it := m.SortedEntries()
	e, err := it.Next()
	require.NoError(t, err)
	assert.ErrorIs(t, it.Remove(), ErrUnsupportedOperation)
	_, err = e.SetValue(1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	sub, err := m.SubMap(3, 7)
	require.NoError(t, err)
	_, err = sub.Put(4, 40)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.ErrorIs(t, sub.Clear(), ErrUnsupportedOperation)

	// changes to the backing map stay visible
	_, _ = base.Put(4, 40)
	assert.Equal(t, 3, sub.Size())
	assert.Equal(t, int32(40), m.Get(4))
	assert.Equal(t, 5, base.Size())
}

func TestDecoratorsAreTransparent(t *testing.T) {
	base, err := NewArrayMapFrom([]int16{4, 2, 9}, []uint32{40, 20, 90})
	require.NoError(t, err)

	for name, m := range map[string]Map[int16, uint32]{
		"synchronized": Synchronized[int16, uint32](base),
		"unmodifiable": Unmodifiable[int16, uint32](base),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, base.Size(), m.Size())
			assert.Equal(t, base.HashCode(), m.HashCode())
			assert.Equal(t, base.String(), m.String())
			assert.True(t, m.Equal(base))
			assert.True(t, base.Equal(m))
			assert.Equal(t, base.Keys().ToSlice(), m.Keys().ToSlice())
			assert.Equal(t, base.Values().ToSlice(), m.Values().ToSlice())
			for k, v := range All[int16, uint32](base) {
				assert.Equal(t, v, m.Get(k))
				assert.True(t, m.ContainsKey(k))
			}
			assert.False(t, m.ContainsKey(3))
		})
	}
}
