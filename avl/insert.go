// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns true if a node was added, false if the key was already
// present in which case the tree's DuplicatePolicy decides whether
// the value is replaced
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	added := false
	tree.root, added = tree.insert(key, value, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly new sub-tree root
func (tree *Tree[K, V]) insert(key K, value V, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // insert new node
		return newNode(key, value), true
	}
	added := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, added = tree.insert(key, value, p.left)
	case c > 0: // key > p.key
		p.right, added = tree.insert(key, value, p.right)
	default:
		if ReplaceValue == tree.policy {
			p.value = value
		}
	}
	return tree.balance(p), added
}
