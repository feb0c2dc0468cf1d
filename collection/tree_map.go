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

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"

	"github.com/streamnative/primcoll/common/prim"
)

// TreeMap is a sorted container backed by a red-black tree. Lookups and the
// boundaries of range views cost O(log n).
type TreeMap[K, V prim.Value] struct {
	abstractMap[K, V]
	tree *rbt.Tree
	cmp  Comparator[K]
	cmpf func(a, b K) int
}

// NewTreeMap creates an empty map ordered by the comparator given with
// WithComparator, or by the natural order of K.
func NewTreeMap[K, V prim.Value](opts ...Option[K, V]) (*TreeMap[K, V], error) {
	options, err := newMapOptions(opts...)
	if err != nil {
		return nil, err
	}
	m := &TreeMap[K, V]{
		cmp:  options.comparator,
		cmpf: compareWith(options.comparator),
	}
	m.tree = rbt.NewWith(prim.Comparator(m.cmpf))
	m.self = m
	m.defRetValue = options.defaultValue
	return m, nil
}

// NewTreeMapFrom copies every entry of src.
func NewTreeMapFrom[K, V prim.Value](src EntrySource[K, V], opts ...Option[K, V]) (*TreeMap[K, V], error) {
	m, err := NewTreeMap(opts...)
	if err != nil {
		return nil, err
	}
	for k, v := range All(src) {
		m.tree.Put(k, v)
	}
	return m, nil
}

func (m *TreeMap[K, V]) Size() int {
	return m.tree.Size()
}

func (m *TreeMap[K, V]) IsEmpty() bool {
	return m.tree.Empty()
}

func (m *TreeMap[K, V]) Get(key K) V {
	v, found := m.tree.Get(key)
	if !found {
		return m.defRetValue
	}
	return m.toValue(v)
}

func (m *TreeMap[K, V]) GetOrDefault(key K, def V) V {
	v, found := m.tree.Get(key)
	if !found {
		return def
	}
	return m.toValue(v)
}

func (m *TreeMap[K, V]) ContainsKey(key K) bool {
	_, found := m.tree.Get(key)
	return found
}

func (m *TreeMap[K, V]) Put(key K, value V) (V, error) {
	old, found := m.tree.Get(key)
	m.tree.Put(key, value)
	if !found {
		return m.defRetValue, nil
	}
	return m.toValue(old), nil
}

func (m *TreeMap[K, V]) Remove(key K) (V, error) {
	old, found := m.tree.Get(key)
	if !found {
		return m.defRetValue, nil
	}
	m.tree.Remove(key)
	return m.toValue(old), nil
}

func (m *TreeMap[K, V]) Clear() error {
	m.tree.Clear()
	return nil
}

func (m *TreeMap[K, V]) Comparator() Comparator[K] {
	return m.cmp
}

func (m *TreeMap[K, V]) compare(a, b K) int {
	return m.cmpf(a, b)
}

func (m *TreeMap[K, V]) FirstKey() (K, error) {
	if node := m.tree.Left(); node != nil {
		return m.toKey(node.Key), nil
	}
	return *new(K), errors.Wrap(ErrNoSuchElement, "map is empty")
}

func (m *TreeMap[K, V]) LastKey() (K, error) {
	if node := m.tree.Right(); node != nil {
		return m.toKey(node.Key), nil
	}
	return *new(K), errors.Wrap(ErrNoSuchElement, "map is empty")
}

func (m *TreeMap[K, V]) HeadMap(to K) SortedMap[K, V] {
	return newRangeMap[K, V](m, bound[K]{}, at(to))
}

func (m *TreeMap[K, V]) TailMap(from K) SortedMap[K, V] {
	return newRangeMap[K, V](m, at(from), bound[K]{})
}

func (m *TreeMap[K, V]) SubMap(from, to K) (SortedMap[K, V], error) {
	if m.cmpf(from, to) > 0 {
		return nil, errInvertedRange(from, to)
	}
	return newRangeMap[K, V](m, at(from), at(to)), nil
}

func (m *TreeMap[K, V]) EntryIterator() Iterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromStart[K](), false)
}

func (m *TreeMap[K, V]) FastEntryIterator() Iterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromStart[K](), true)
}

func (m *TreeMap[K, V]) SortedEntries() BidiIterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromStart[K](), false)
}

func (m *TreeMap[K, V]) EntriesFrom(pivot K) BidiIterator[Entry[K, V]] {
	return m.rangeIterator(bound[K]{}, bound[K]{}, fromPivot(pivot), false)
}

func (m *TreeMap[K, V]) KeysFrom(pivot K) BidiIterator[K] {
	return mapBidiIterator(m.rangeIterator(bound[K]{}, bound[K]{}, fromPivot(pivot), true), entryKey[K, V])
}

// writeThrough replaces the value of a key that must still be in the map.
func (m *TreeMap[K, V]) writeThrough(key K, value V) error {
	if _, found := m.tree.Get(key); !found {
		return errors.Wrapf(ErrIllegalState, "key (%s) was removed from the map", prim.Format(key))
	}
	m.tree.Put(key, value)
	return nil
}

func (m *TreeMap[K, V]) ceiling(key K) *rbt.Node {
	node, found := m.tree.Ceiling(key)
	if !found {
		return nil
	}
	return node
}

func (m *TreeMap[K, V]) floor(key K) *rbt.Node {
	node, found := m.tree.Floor(key)
	if !found {
		return nil
	}
	return node
}

func (m *TreeMap[K, V]) lower(key K) *rbt.Node {
	node := m.floor(key)
	if node != nil && m.cmpf(m.toKey(node.Key), key) == 0 {
		node = m.predecessor(node)
	}
	return node
}

func (m *TreeMap[K, V]) successor(node *rbt.Node) *rbt.Node {
	it := m.tree.IteratorAt(node)
	if !it.Next() {
		return nil
	}
	return it.Node()
}

func (m *TreeMap[K, V]) predecessor(node *rbt.Node) *rbt.Node {
	it := m.tree.IteratorAt(node)
	if !it.Prev() {
		return nil
	}
	return it.Node()
}

func (m *TreeMap[K, V]) rangeIterator(lo, hi bound[K], pos position[K], fast bool) BidiIterator[Entry[K, V]] {
	it := &treeIterator[K, V]{m: m, lo: lo, hi: hi}
	if fast {
		cursor := &cursorEntry[K, V]{write: m.writeThrough}
		it.project = func(node *rbt.Node) Entry[K, V] {
			cursor.key = m.toKey(node.Key)
			cursor.value = m.toValue(node.Value)
			return cursor
		}
	} else {
		it.project = func(node *rbt.Node) Entry[K, V] {
			return &treeEntry[K, V]{m: m, key: m.toKey(node.Key), value: m.toValue(node.Value)}
		}
	}

	switch {
	case pos.atEnd:
		it.prev = it.last()
	case pos.pivot.set:
		pivot := pos.pivot.key
		if lo.set && m.cmpf(pivot, lo.key) < 0 {
			pivot = lo.key
		}
		if hi.set && m.cmpf(pivot, hi.key) >= 0 {
			it.prev = it.last()
		} else {
			it.next = it.bounded(m.ceiling(pivot))
			it.prev = it.bounded(m.lower(pivot))
		}
	default:
		it.next = it.first()
	}
	return it
}

func (*TreeMap[K, V]) toKey(key any) K {
	kk, ok := key.(K)
	if !ok {
		panic(fmt.Errorf("expect key %T, got %T from treemap", *new(K), key))
	}

	return kk
}

func (*TreeMap[K, V]) toValue(value any) V {
	vv, ok := value.(V)
	if !ok {
		panic(fmt.Errorf("expect value %T, got %T from treemap", *new(V), value))
	}

	return vv
}

// treeIterator keeps the nodes on both sides of its position. Removing
// through it may relink the tree, so both are looked up again by key.
type treeIterator[K, V prim.Value] struct {
	m      *TreeMap[K, V]
	lo, hi bound[K]

	next, prev *rbt.Node
	curr       K
	hasCurr    bool

	project func(node *rbt.Node) Entry[K, V]
}

func (it *treeIterator[K, V]) bounded(node *rbt.Node) *rbt.Node {
	if node == nil {
		return nil
	}
	key := it.m.toKey(node.Key)
	if it.lo.set && it.m.cmpf(key, it.lo.key) < 0 {
		return nil
	}
	if it.hi.set && it.m.cmpf(key, it.hi.key) >= 0 {
		return nil
	}
	return node
}

func (it *treeIterator[K, V]) first() *rbt.Node {
	if it.lo.set {
		return it.bounded(it.m.ceiling(it.lo.key))
	}
	return it.bounded(it.m.tree.Left())
}

func (it *treeIterator[K, V]) last() *rbt.Node {
	if it.hi.set {
		return it.bounded(it.m.lower(it.hi.key))
	}
	return it.bounded(it.m.tree.Right())
}

func (it *treeIterator[K, V]) HasNext() bool {
	return it.next != nil
}

func (it *treeIterator[K, V]) HasPrevious() bool {
	return it.prev != nil
}

func (it *treeIterator[K, V]) Next() (Entry[K, V], error) {
	node := it.next
	if node == nil {
		return nil, errExhausted()
	}
	it.prev = node
	it.next = it.bounded(it.m.successor(node))
	it.curr, it.hasCurr = it.m.toKey(node.Key), true
	return it.project(node), nil
}

func (it *treeIterator[K, V]) Previous() (Entry[K, V], error) {
	node := it.prev
	if node == nil {
		return nil, errExhausted()
	}
	it.next = node
	it.prev = it.bounded(it.m.predecessor(node))
	it.curr, it.hasCurr = it.m.toKey(node.Key), true
	return it.project(node), nil
}

func (it *treeIterator[K, V]) Remove() error {
	if !it.hasCurr {
		return errNoCurrent()
	}
	it.m.tree.Remove(it.curr)
	it.next = it.bounded(it.m.ceiling(it.curr))
	it.prev = it.bounded(it.m.floor(it.curr))
	it.hasCurr = false
	return nil
}

// treeEntry is a durable entry whose SetValue writes through to the map as
// long as its key is still present.
type treeEntry[K, V prim.Value] struct {
	m     *TreeMap[K, V]
	key   K
	value V
}

func (e *treeEntry[K, V]) Key() K {
	return e.key
}

func (e *treeEntry[K, V]) Value() V {
	return e.value
}

func (e *treeEntry[K, V]) SetValue(value V) (V, error) {
	old := e.value
	if err := e.m.writeThrough(e.key, value); err != nil {
		return old, err
	}
	e.value = value
	return old, nil
}

func (e *treeEntry[K, V]) String() string {
	return prim.Format(e.key) + "=>" + prim.Format(e.value)
}
