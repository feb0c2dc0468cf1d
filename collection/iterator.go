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
	"iter"

	"github.com/pkg/errors"

	"github.com/streamnative/primcoll/common/prim"
)

// Iterator walks a container in its defined order.
//
// Next returns ErrNoSuchElement once HasNext is false. Remove deletes the
// element most recently returned by Next (or Previous) from the backing
// container; calling it before any advance or twice in a row returns
// ErrIllegalState.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}

// BidiIterator can also step backwards from its current position.
type BidiIterator[T any] interface {
	Iterator[T]
	HasPrevious() bool
	Previous() (T, error)
}

func errExhausted() error {
	return errors.Wrap(ErrNoSuchElement, "iterator exhausted")
}

func errNoCurrent() error {
	return errors.Wrap(ErrIllegalState, "remove called without a current element")
}

// FastIterator returns the allocation-free cursor iterator of src when src
// advertises one, and its safe iterator otherwise. Entries it returns must
// not be retained across calls to Next.
func FastIterator[K, V prim.Value](src EntrySource[K, V]) Iterator[Entry[K, V]] {
	if fast, ok := src.(FastEntrySource[K, V]); ok {
		return fast.FastEntryIterator()
	}
	return src.EntryIterator()
}

// All yields every pair of src in iteration order.
func All[K, V prim.Value](src EntrySource[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := FastIterator(src)
		for it.HasNext() {
			e, err := it.Next()
			if err != nil || !yield(e.Key(), e.Value()) {
				return
			}
		}
	}
}

// Keys yields every key of src in iteration order.
func Keys[K, V prim.Value](src EntrySource[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range All(src) {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value of src in iteration order.
func Values[K, V prim.Value](src EntrySource[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range All(src) {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice drains it.
func ToSlice[T any](it Iterator[T]) []T {
	var res []T
	for it.HasNext() {
		t, err := it.Next()
		if err != nil {
			break
		}
		res = append(res, t)
	}
	return res
}

func seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			t, err := it.Next()
			if err != nil || !yield(t) {
				return
			}
		}
	}
}

// mappedIterator projects the elements of an entry iterator, forwarding
// removal so that views stay backed by their container.
type mappedIterator[T, U any] struct {
	it      Iterator[T]
	project func(T) U
}

func mapIterator[T, U any](it Iterator[T], project func(T) U) Iterator[U] {
	return &mappedIterator[T, U]{it: it, project: project}
}

func (m *mappedIterator[T, U]) HasNext() bool {
	return m.it.HasNext()
}

func (m *mappedIterator[T, U]) Next() (U, error) {
	t, err := m.it.Next()
	if err != nil {
		var zero U
		return zero, err
	}
	return m.project(t), nil
}

func (m *mappedIterator[T, U]) Remove() error {
	return m.it.Remove()
}

type mappedBidiIterator[T, U any] struct {
	mappedIterator[T, U]
	bidi BidiIterator[T]
}

func mapBidiIterator[T, U any](it BidiIterator[T], project func(T) U) BidiIterator[U] {
	return &mappedBidiIterator[T, U]{
		mappedIterator: mappedIterator[T, U]{it: it, project: project},
		bidi:           it,
	}
}

func (m *mappedBidiIterator[T, U]) HasPrevious() bool {
	return m.bidi.HasPrevious()
}

func (m *mappedBidiIterator[T, U]) Previous() (U, error) {
	t, err := m.bidi.Previous()
	if err != nil {
		var zero U
		return zero, err
	}
	return m.project(t), nil
}

// fixedIterator walks an immutable slice; it backs the empty and singleton
// containers, so Remove is never supported.
type fixedIterator[T any] struct {
	items []T
	next  int
}

func newFixedIterator[T any](items []T, next int) BidiIterator[T] {
	return &fixedIterator[T]{items: items, next: next}
}

func (f *fixedIterator[T]) HasNext() bool {
	return f.next < len(f.items)
}

func (f *fixedIterator[T]) Next() (T, error) {
	if !f.HasNext() {
		var zero T
		return zero, errExhausted()
	}
	f.next++
	return f.items[f.next-1], nil
}

func (f *fixedIterator[T]) HasPrevious() bool {
	return f.next > 0
}

func (f *fixedIterator[T]) Previous() (T, error) {
	if !f.HasPrevious() {
		var zero T
		return zero, errExhausted()
	}
	f.next--
	return f.items[f.next], nil
}

func (*fixedIterator[T]) Remove() error {
	return unsupported("iterator remove")
}
