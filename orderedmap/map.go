// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedmap

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Entry - a key/value pair used to construct a map
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map - ordered map of unique keys to values
type Map[K, V any] struct {
	tree *avl.Tree[K, V]
}

// New - create a map of naturally ordered keys from a list of entries,
// later entries overwrite earlier ones with the same key
func New[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		tree: avl.New[K, V](avl.ReplaceValue),
	}
	m.insertAll(entries)
	return m
}

// NewFunc - create a map ordered by a comparison function
func NewFunc[K, V any](compare func(K, K) int, entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		tree: avl.NewFunc[K, V](compare, avl.ReplaceValue),
	}
	m.insertAll(entries)
	return m
}

func (m *Map[K, V]) insertAll(entries []Entry[K, V]) {
	for _, e := range entries {
		m.tree.Insert(e.Key, e.Value)
	}
}

// Insert - set the value for key, returns false if an existing
// value was overwritten
func (m *Map[K, V]) Insert(key K, value V) bool {
	return m.tree.Insert(key, value)
}

// Remove - delete key, returns false if it was absent
func (m *Map[K, V]) Remove(key K) bool {
	_, removed := m.tree.Delete(key)
	return removed
}

// Contains - true if key is in the map
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Has(key)
}

// Get - value for key and whether it was found
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// GetOrDefault - value for key or the zero value, the map is not modified
func (m *Map[K, V]) GetOrDefault(key K) V {
	value, _ := m.tree.Get(key)
	return value
}

// At - value for key, fault.ErrKeyNotFound if absent
func (m *Map[K, V]) At(key K) (V, error) {
	value, ok := m.tree.Get(key)
	if !ok {
		return value, fault.ErrKeyNotFound
	}
	return value, nil
}

// Index - pointer to the value for key, inserting the zero value
// first if the key is absent
//
// the pointer is valid until the next Remove or Clear
func (m *Map[K, V]) Index(key K) *V {
	return m.tree.Reference(key)
}

// Min - lowest key, fault.ErrEmptyContainer if the map is empty
func (m *Map[K, V]) Min() (K, error) {
	return m.tree.Min()
}

// Max - highest key, fault.ErrEmptyContainer if the map is empty
func (m *Map[K, V]) Max() (K, error) {
	return m.tree.Max()
}

// Count - number of entries
func (m *Map[K, V]) Count() int {
	return m.tree.Count()
}

// IsEmpty - true if the map has no entries
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Height - height of the underlying tree, -1 when empty
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// Clear - remove all entries
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Clone - independent copy of the map
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		tree: m.tree.Clone(),
	}
}

// Move - transfer the contents to a new map, leaving m empty
func (m *Map[K, V]) Move() *Map[K, V] {
	return &Map[K, V]{
		tree: m.tree.Move(),
	}
}

// All - iterate over the entries in ascending key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Keys - iterate over the keys in ascending order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.tree.Keys()
}

// Values - iterate over the values in ascending key order
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.tree.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Check - verify the consistency of the underlying tree
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Tree - the underlying tree, for inspection only
func (m *Map[K, V]) Tree() *avl.Tree[K, V] {
	return m.tree
}

// String - all entries as: {(k1, v1), (k2, v2), …}
func (m *Map[K, V]) String() string {
	if m.tree.IsEmpty() {
		return "{}"
	}
	b := strings.Builder{}
	b.WriteByte('{')
	sep := ""
	for k, v := range m.tree.All() {
		fmt.Fprintf(&b, "%s(%v, %v)", sep, k, v)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}

// Print - write the String form followed by a newline
func (m *Map[K, V]) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, m.String())
	return err
}
