// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - deep copy of the tree structure
//
// the copy has the same shape, count, ordering and policy; values are
// copied by assignment so any pointers inside them are shared.  The
// rotation statistics of the copy start at zero.
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root:    tree.root.clone(),
		count:   tree.count,
		compare: tree.compare,
		policy:  tree.policy,
	}
}

// internal: recursive copy of a sub-tree
func (p *Node[K, V]) clone() *Node[K, V] {
	if nil == p {
		return nil
	}
	return &Node[K, V]{
		left:   p.left.clone(),
		right:  p.right.clone(),
		key:    p.key,
		value:  p.value,
		height: p.height,
	}
}

// Move - transfer all nodes and statistics to a new tree leaving
// this one empty but usable
func (tree *Tree[K, V]) Move() *Tree[K, V] {
	moved := &Tree[K, V]{
		root:    tree.root,
		count:   tree.count,
		compare: tree.compare,
		policy:  tree.policy,
	}
	moved.stats.transfer(&tree.stats)
	tree.root = nil
	tree.count = 0
	return moved
}
