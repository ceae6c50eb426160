// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// maximum height difference between the two children of any node
const allowedImbalance = 1

// restore the balance of p after one of its sub-trees changed height
// by at most one level, returns the new sub-tree root
//
// ties between the grandchildren choose the single rotation, this
// fixes the shape of the tree for a given sequence of operations
func (tree *Tree[K, V]) balance(p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}

	switch hl, hr := height(p.left), height(p.right); {
	case hl-hr > allowedImbalance: // left heavy
		if height(p.left.left) >= height(p.left.right) {
			p = rotateWithLeftChild(p)
			tree.stats.singleRight.Increment()
		} else {
			p = doubleWithLeftChild(p)
			tree.stats.leftRight.Increment()
		}
	case hr-hl > allowedImbalance: // right heavy
		if height(p.right.right) >= height(p.right.left) {
			p = rotateWithRightChild(p)
			tree.stats.singleLeft.Increment()
		} else {
			p = doubleWithRightChild(p)
			tree.stats.rightLeft.Increment()
		}
	}

	p.fixHeight()
	return p
}

// single right rotation: the left child becomes the root
//
//	      k2            k1
//	     /  \          /  \
//	    k1   c   →    a    k2
//	   /  \               /  \
//	  a    b             b    c
func rotateWithLeftChild[K, V any](k2 *Node[K, V]) *Node[K, V] {
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	k2.fixHeight()
	k1.fixHeight()
	return k1
}

// single left rotation: the right child becomes the root
func rotateWithRightChild[K, V any](k1 *Node[K, V]) *Node[K, V] {
	k2 := k1.right
	k1.right = k2.left
	k2.left = k1
	k1.fixHeight()
	k2.fixHeight()
	return k2
}

// left-right double rotation: the left child's right child becomes the root
func doubleWithLeftChild[K, V any](k3 *Node[K, V]) *Node[K, V] {
	k3.left = rotateWithRightChild(k3.left)
	return rotateWithLeftChild(k3)
}

// right-left double rotation: the right child's left child becomes the root
func doubleWithRightChild[K, V any](k1 *Node[K, V]) *Node[K, V] {
	k1.right = rotateWithLeftChild(k1.right)
	return rotateWithRightChild(k1)
}
