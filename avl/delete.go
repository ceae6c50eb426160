// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or a zero value and
// false if the key was not in the tree
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	var value V
	removed := false
	tree.root, value, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine, returns the possibly new sub-tree root
func (tree *Tree[K, V]) delete(key K, p *Node[K, V]) (*Node[K, V], V, bool) {
	var value V
	if nil == p { // key not in tree
		return nil, value, false
	}
	removed := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, value, removed = tree.delete(key, p.left)
	case c > 0: // key > p.key
		p.right, value, removed = tree.delete(key, p.right)
	case nil != p.left && nil != p.right:
		// found with two children: take over the in-order
		// successor and remove that from the right branch
		value = p.value
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.right, _, _ = tree.delete(s.key, p.right)
		removed = true
	default:
		// found with at most one child: splice it out, the
		// remaining child is already balanced
		value = p.value
		if nil != p.left {
			return p.left, value, true
		}
		return p.right, value, true
	}
	return tree.balance(p), value, removed
}
