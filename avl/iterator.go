// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avltree/fault"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Min - the lowest key, fails on an empty tree
func (tree *Tree[K, V]) Min() (K, error) {
	p := tree.First()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	return p.key, nil
}

// Max - the highest key, fails on an empty tree
func (tree *Tree[K, V]) Max() (K, error) {
	p := tree.Last()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyContainer
	}
	return p.key, nil
}

// All - iterate over all items in ascending key order
//
// the tree must not be modified during the iteration
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		// a left spine never holds more than height+1 nodes
		stack := make([]*Node[K, V], 0, tree.Height()+1)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.left
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.right
		}
	}
}

// Keys - iterate over all keys in ascending order
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}
