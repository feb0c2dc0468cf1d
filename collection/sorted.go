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

// bound is an optional key limit of a range.
type bound[K prim.Value] struct {
	key K
	set bool
}

func at[K prim.Value](key K) bound[K] {
	return bound[K]{key: key, set: true}
}

// position tells a range iterator where to start.
type position[K prim.Value] struct {
	pivot bound[K]
	atEnd bool
}

func fromStart[K prim.Value]() position[K] {
	return position[K]{}
}

func fromPivot[K prim.Value](pivot K) position[K] {
	return position[K]{pivot: at(pivot)}
}

func fromEnd[K prim.Value]() position[K] {
	return position[K]{atEnd: true}
}

// navigable is a sorted container that can answer boundary queries itself.
// Range views delegate to it instead of filtering a full scan.
type navigable[K, V prim.Value] interface {
	SortedMap[K, V]

	compare(a, b K) int

	// rangeIterator walks the keys in [lo, hi), starting at pos.
	rangeIterator(lo, hi bound[K], pos position[K], fast bool) BidiIterator[Entry[K, V]]
}

func errInvertedRange[K prim.Value](from, to K) error {
	return errors.Wrapf(ErrInvalidArgument,
		"start key (%s) is larger than end key (%s)", prim.Format(from), prim.Format(to))
}

func firstKey[K, V prim.Value](it BidiIterator[Entry[K, V]]) (K, error) {
	if !it.HasNext() {
		var zero K
		return zero, errors.Wrap(ErrNoSuchElement, "map is empty")
	}
	e, err := it.Next()
	if err != nil {
		var zero K
		return zero, err
	}
	return e.Key(), nil
}

func lastKey[K, V prim.Value](it BidiIterator[Entry[K, V]]) (K, error) {
	if !it.HasPrevious() {
		var zero K
		return zero, errors.Wrap(ErrNoSuchElement, "map is empty")
	}
	e, err := it.Previous()
	if err != nil {
		var zero K
		return zero, err
	}
	return e.Key(), nil
}

// rangeMap is a live view of the keys of base within [lo, hi).
type rangeMap[K, V prim.Value] struct {
	abstractMap[K, V]
	base   navigable[K, V]
	lo, hi bound[K]
}

func newRangeMap[K, V prim.Value](base navigable[K, V], lo, hi bound[K]) *rangeMap[K, V] {
	r := &rangeMap[K, V]{base: base, lo: lo, hi: hi}
	r.self = r
	return r
}

func (r *rangeMap[K, V]) inRange(key K) bool {
	return (!r.lo.set || r.base.compare(key, r.lo.key) >= 0) &&
		(!r.hi.set || r.base.compare(key, r.hi.key) < 0)
}

func (r *rangeMap[K, V]) iterator(pos position[K], fast bool) BidiIterator[Entry[K, V]] {
	return r.base.rangeIterator(r.lo, r.hi, pos, fast)
}

func (r *rangeMap[K, V]) DefaultReturnValue() V {
	return r.base.DefaultReturnValue()
}

func (r *rangeMap[K, V]) SetDefaultReturnValue(value V) error {
	return r.base.SetDefaultReturnValue(value)
}

func (r *rangeMap[K, V]) Size() int {
	n := 0
	for it := r.iterator(fromStart[K](), true); it.HasNext(); n++ {
		if _, err := it.Next(); err != nil {
			break
		}
	}
	return n
}

func (r *rangeMap[K, V]) IsEmpty() bool {
	return !r.iterator(fromStart[K](), true).HasNext()
}

func (r *rangeMap[K, V]) Get(key K) V {
	if !r.inRange(key) {
		return r.base.DefaultReturnValue()
	}
	return r.base.Get(key)
}

func (r *rangeMap[K, V]) GetOrDefault(key K, def V) V {
	if !r.inRange(key) {
		return def
	}
	return r.base.GetOrDefault(key, def)
}

func (r *rangeMap[K, V]) ContainsKey(key K) bool {
	return r.inRange(key) && r.base.ContainsKey(key)
}

func (r *rangeMap[K, V]) errOutOfRange(key K) error {
	return errors.Wrapf(ErrInvalidArgument, "key (%s) is out of the range of this view", prim.Format(key))
}

func (r *rangeMap[K, V]) Put(key K, value V) (V, error) {
	if !r.inRange(key) {
		return r.base.DefaultReturnValue(), r.errOutOfRange(key)
	}
	return r.base.Put(key, value)
}

func (r *rangeMap[K, V]) PutIfAbsent(key K, value V) (V, error) {
	if !r.inRange(key) {
		return r.base.DefaultReturnValue(), r.errOutOfRange(key)
	}
	return r.base.PutIfAbsent(key, value)
}

func (r *rangeMap[K, V]) Remove(key K) (V, error) {
	if !r.inRange(key) {
		return r.base.DefaultReturnValue(), nil
	}
	return r.base.Remove(key)
}

func (r *rangeMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	return r.iterator(fromStart[K](), false)
}

func (r *rangeMap[K, V]) FastEntryIterator() Iterator[Entry[K, V]] {
	return r.iterator(fromStart[K](), true)
}

func (r *rangeMap[K, V]) Comparator() Comparator[K] {
	return r.base.Comparator()
}

func (r *rangeMap[K, V]) FirstKey() (K, error) {
	return firstKey(r.iterator(fromStart[K](), true))
}

func (r *rangeMap[K, V]) LastKey() (K, error) {
	return lastKey(r.iterator(fromEnd[K](), true))
}

// HeadMap of a range view keeps the tighter of to and the view's own upper
// bound. SubMap is the checked variant.
func (r *rangeMap[K, V]) HeadMap(to K) SortedMap[K, V] {
	hi := r.hi
	if !hi.set || r.base.compare(to, hi.key) < 0 {
		hi = at(to)
	}
	return newRangeMap(r.base, r.lo, hi)
}

// TailMap of a range view keeps the tighter of from and the view's own lower
// bound.
func (r *rangeMap[K, V]) TailMap(from K) SortedMap[K, V] {
	lo := r.lo
	if !lo.set || r.base.compare(from, lo.key) > 0 {
		lo = at(from)
	}
	return newRangeMap(r.base, lo, r.hi)
}

// SubMap fails with ErrInvalidArgument when [from, to) is not contained in
// the range of the view.
func (r *rangeMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	if r.base.compare(from, to) > 0 {
		return nil, errInvertedRange(from, to)
	}
	if (r.lo.set && r.base.compare(from, r.lo.key) < 0) ||
		(r.hi.set && r.base.compare(to, r.hi.key) > 0) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"range [%s, %s) is outside of this view", prim.Format(from), prim.Format(to))
	}
	return newRangeMap(r.base, at(from), at(to)), nil
}

func (r *rangeMap[K, V]) SortedEntries() BidiIterator[Entry[K, V]] {
	return r.iterator(fromStart[K](), false)
}

func (r *rangeMap[K, V]) EntriesFrom(pivot K) BidiIterator[Entry[K, V]] {
	return r.iterator(fromPivot(pivot), false)
}

func (r *rangeMap[K, V]) KeysFrom(pivot K) BidiIterator[K] {
	return mapBidiIterator(r.iterator(fromPivot(pivot), true), entryKey[K, V])
}
