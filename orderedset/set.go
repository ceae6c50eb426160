// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedset - a set of unique keys kept in ascending order
// by an AVL tree
//
// Inserting a key that is already present and removing a key that is
// absent both leave the set unchanged.  A set is not thread safe.
package orderedset

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
)

// Set - ordered set of keys
type Set[K any] struct {
	tree *avl.Tree[K, struct{}]
}

// New - create a set of naturally ordered keys, inserting any given
// keys in sequence
func New[K cmp.Ordered](keys ...K) *Set[K] {
	s := &Set[K]{
		tree: avl.New[K, struct{}](avl.KeepExisting),
	}
	s.Insert(keys...)
	return s
}

// NewFunc - create a set ordered by a comparison function
func NewFunc[K any](compare func(K, K) int, keys ...K) *Set[K] {
	s := &Set[K]{
		tree: avl.NewFunc[K, struct{}](compare, avl.KeepExisting),
	}
	s.Insert(keys...)
	return s
}

// Insert - add keys in sequence, returns how many were not already present
func (s *Set[K]) Insert(keys ...K) int {
	n := 0
	for _, key := range keys {
		if s.tree.Insert(key, struct{}{}) {
			n += 1
		}
	}
	return n
}

// Remove - delete keys, returns how many were present
func (s *Set[K]) Remove(keys ...K) int {
	n := 0
	for _, key := range keys {
		if _, removed := s.tree.Delete(key); removed {
			n += 1
		}
	}
	return n
}

// Contains - true if key is in the set
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Has(key)
}

// Min - lowest key, fault.ErrEmptyContainer if the set is empty
func (s *Set[K]) Min() (K, error) {
	return s.tree.Min()
}

// Max - highest key, fault.ErrEmptyContainer if the set is empty
func (s *Set[K]) Max() (K, error) {
	return s.tree.Max()
}

// Count - number of keys
func (s *Set[K]) Count() int {
	return s.tree.Count()
}

// IsEmpty - true if the set has no keys
func (s *Set[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Height - height of the underlying tree, -1 when empty
func (s *Set[K]) Height() int {
	return s.tree.Height()
}

// Clear - remove all keys
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Clone - independent copy of the set
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{
		tree: s.tree.Clone(),
	}
}

// Move - transfer the contents to a new set, leaving s empty
func (s *Set[K]) Move() *Set[K] {
	return &Set[K]{
		tree: s.tree.Move(),
	}
}

// All - iterate over the keys in ascending order
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.Keys()
}

// Slice - all keys in ascending order
func (s *Set[K]) Slice() []K {
	keys := make([]K, 0, s.tree.Count())
	for k := range s.tree.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// Check - verify the consistency of the underlying tree
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

// Tree - the underlying tree, for inspection only
func (s *Set[K]) Tree() *avl.Tree[K, struct{}] {
	return s.tree
}

// String - all keys as: {k1, k2, …}
func (s *Set[K]) String() string {
	if s.tree.IsEmpty() {
		return "{}"
	}
	b := strings.Builder{}
	b.WriteByte('{')
	sep := ""
	for k := range s.tree.Keys() {
		fmt.Fprintf(&b, "%s%v", sep, k)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}

// Print - write the String form followed by a newline
func (s *Set[K]) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.String())
	return err
}
