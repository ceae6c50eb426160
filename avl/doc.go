// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree keeping an explicit height in
// every node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Only the rotation statistics may be read while
//       another go routine is modifying the tree.
//
// Insert and delete are recursive and rewrite the subtree they were
// given, rebalancing each node on the way back up.  The recursion
// depth is bounded by the tree height, which is at most about
// 1.44·log2(n+2) for n nodes.
//
// A single tree serves both as an ordered set and as an ordered map:
// the DuplicatePolicy chosen at creation decides whether an insert of
// an existing key replaces the stored value or leaves it alone.  The
// packages orderedset and orderedmap wrap the two cases.
//
// Delete of a node with two children copies the key and value of its
// in-order successor into the node, so unlike the older parent
// pointer version a node does not keep a constant key across deletes.
package avl
