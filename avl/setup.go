// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// DuplicatePolicy - action of Insert when the key is already present
type DuplicatePolicy int

// possible policies
const (
	ReplaceValue DuplicatePolicy = iota // overwrite the stored value (map)
	KeepExisting                        // tree is unchanged (set)
)

// String - name of the policy
func (d DuplicatePolicy) String() string {
	switch d {
	case ReplaceValue:
		return "replace"
	case KeepExisting:
		return "keep"
	default:
		return "unknown"
	}
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare func(K, K) int
	policy  DuplicatePolicy
	stats   rotations
}

// New - create an initially empty tree for keys with a natural order
func New[K cmp.Ordered, V any](policy DuplicatePolicy) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], policy)
}

// NewFunc - create an initially empty tree ordered by a comparison
// function returning a negative, zero or positive result, which must
// be a total order on the keys
func NewFunc[K, V any](compare func(K, K) int, policy DuplicatePolicy) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
		policy:  policy,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Policy - the duplicate key policy of the tree
func (tree *Tree[K, V]) Policy() DuplicatePolicy {
	return tree.policy
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear - release all nodes
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
}
