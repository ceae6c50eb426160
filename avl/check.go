// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify key ordering, stored heights, balance and the node
// count, returns the first inconsistency found
func (tree *Tree[K, V]) Check() error {
	n, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("count: %d  nodes: %d: %w", tree.count, n, fault.ErrCountMismatch)
	}
	return nil
}

// internal: consistency checker, all keys in p must lie strictly
// between low and high (nil means unbounded), returns the node count
func (tree *Tree[K, V]) check(p *Node[K, V], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && tree.compare(*low, p.key) >= 0 {
		return 0, fmt.Errorf("key: %v  lower bound: %v: %w", p.key, *low, fault.ErrOutOfOrder)
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, fmt.Errorf("key: %v  upper bound: %v: %w", p.key, *high, fault.ErrOutOfOrder)
	}

	nl, err := tree.check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := tree.check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	if p.height != 1+max(hl, hr) {
		return 0, fmt.Errorf("key: %v  height: %d  children: %d,%d: %w", p.key, p.height, hl, hr, fault.ErrHeightMismatch)
	}
	if hl-hr > allowedImbalance || hr-hl > allowedImbalance {
		return 0, fmt.Errorf("key: %v  children: %d,%d: %w", p.key, hl, hr, fault.ErrUnbalanced)
	}
	return 1 + nl + nr, nil
}
