// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // leaf = 0
}

// allocate a new leaf
func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 0,
	}
}

// height of a possibly empty sub-tree, empty is -1
func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the height from the children
func (p *Node[K, V]) fixHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - height of the node, -1 if nil
func (p *Node[K, V]) Height() int {
	return height(p)
}

// Left - left child, nil if none
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - right child, nil if none
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// GetChildrenByDepth - returns all children at a specific depth below p
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if 0 == depth {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
