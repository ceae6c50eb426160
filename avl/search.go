// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - the value stored for a key and whether the key was found
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if p := tree.Search(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Has - true if the key is in the tree
func (tree *Tree[K, V]) Has(key K) bool {
	return nil != tree.Search(key)
}

// Reference - pointer to the value stored for a key, a zero value is
// inserted first if the key is absent
//
// the pointer is only valid until the next Delete or Clear, since
// deleting a node with two children moves its successor's value
func (tree *Tree[K, V]) Reference(key K) *V {
	p := tree.Search(key)
	if nil == p {
		var zero V
		tree.Insert(key, zero)
		p = tree.Search(key)
	}
	return &p.value
}
