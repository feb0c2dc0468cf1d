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
	"encoding"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/streamnative/primcoll/common/prim"
)

var (
	_ encoding.BinaryMarshaler   = (*ArrayMap[int32, int32])(nil)
	_ encoding.BinaryUnmarshaler = (*ArrayMap[int32, int32])(nil)
	_ encoding.BinaryMarshaler   = (*TreeMap[int32, int32])(nil)
	_ encoding.BinaryUnmarshaler = (*TreeMap[int32, int32])(nil)
	_ encoding.BinaryMarshaler   = (*SortedArrayMap[int32, int32])(nil)
	_ encoding.BinaryUnmarshaler = (*SortedArrayMap[int32, int32])(nil)
)

// MarshalBinary encodes the live entries of src as a varint count followed
// by every key and value in iteration order. Unused backing capacity is not
// written.
func MarshalBinary[K, V prim.Value](src EntrySource[K, V]) ([]byte, error) {
	size := src.Size()
	b := protowire.AppendVarint(make([]byte, 0, 1+size*4), uint64(size))

	n := 0
	for k, v := range All(src) {
		b = prim.Append(b, k)
		b = prim.Append(b, v)
		n++
	}
	if n != size {
		return nil, errors.Wrapf(ErrIllegalState, "container reported %d entries but yielded %d", size, n)
	}
	return b, nil
}

// UnmarshalEntries decodes data written by MarshalBinary. The returned
// arrays are sized exactly to the number of entries.
func UnmarshalEntries[K, V prim.Value](data []byte) ([]K, []V, error) {
	size, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return nil, nil, errors.Wrap(ErrCorrupted, protowire.ParseError(n).Error())
	}
	data = data[n:]

	// Every pair takes at least two bytes.
	if size > uint64(len(data)/2) {
		return nil, nil, errors.Wrapf(ErrCorrupted, "%d entries cannot fit in %d bytes", size, len(data))
	}

	keys := make([]K, size)
	values := make([]V, size)
	for i := range keys {
		k, n := prim.Consume[K](data)
		if n < 0 {
			return nil, nil, errors.Wrapf(ErrCorrupted, "key %d: %v", i, protowire.ParseError(n))
		}
		data = data[n:]

		v, n := prim.Consume[V](data)
		if n < 0 {
			return nil, nil, errors.Wrapf(ErrCorrupted, "value %d: %v", i, protowire.ParseError(n))
		}
		data = data[n:]

		keys[i], values[i] = k, v
	}
	if len(data) > 0 {
		return nil, nil, errors.Wrapf(ErrCorrupted, "%d trailing bytes", len(data))
	}
	return keys, values, nil
}

func errDuplicateKey[K prim.Value](key K) error {
	return errors.Wrapf(ErrCorrupted, "duplicate key (%s)", prim.Format(key))
}

func (m *ArrayMap[K, V]) MarshalBinary() ([]byte, error) {
	return MarshalBinary[K, V](m)
}

// UnmarshalBinary replaces the contents of m. The backing arrays are
// reallocated to exactly the decoded size; the default return value is kept.
func (m *ArrayMap[K, V]) UnmarshalBinary(data []byte) error {
	keys, values, err := UnmarshalEntries[K, V](data)
	if err != nil {
		return err
	}

	s := arrayStore[K, V]{keys: keys, values: values}
	for i := range keys {
		if s.indexOf(keys[i]) >= 0 {
			return errDuplicateKey(keys[i])
		}
		s.size++
	}
	m.arrayStore = s
	return nil
}

func (m *TreeMap[K, V]) MarshalBinary() ([]byte, error) {
	return MarshalBinary[K, V](m)
}

func (m *TreeMap[K, V]) UnmarshalBinary(data []byte) error {
	keys, values, err := UnmarshalEntries[K, V](data)
	if err != nil {
		return err
	}

	m.tree.Clear()
	for i := range keys {
		if _, found := m.tree.Get(keys[i]); found {
			m.tree.Clear()
			return errDuplicateKey(keys[i])
		}
		m.tree.Put(keys[i], values[i])
	}
	return nil
}

func (m *SortedArrayMap[K, V]) MarshalBinary() ([]byte, error) {
	return MarshalBinary[K, V](m)
}

func (m *SortedArrayMap[K, V]) UnmarshalBinary(data []byte) error {
	keys, values, err := UnmarshalEntries[K, V](data)
	if err != nil {
		return err
	}

	m.arrayStore = arrayStore[K, V]{keys: make([]K, len(keys)), values: make([]V, len(values))}
	for i := range keys {
		j, found := m.search(keys[i])
		if found {
			m.arrayStore = arrayStore[K, V]{}
			return errDuplicateKey(keys[i])
		}
		m.insertAt(j, keys[i], values[i])
	}
	return nil
}
