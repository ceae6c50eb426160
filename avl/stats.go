// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// Stats - number of rotations of each kind performed on a tree
type Stats struct {
	SingleLeft  uint64 `json:"single_left"`  // right heavy, right child not left heavy
	SingleRight uint64 `json:"single_right"` // left heavy, left child not right heavy
	LeftRight   uint64 `json:"left_right"`   // left heavy, left child right heavy
	RightLeft   uint64 `json:"right_left"`   // right heavy, right child left heavy
}

// Total - sum of all rotations, a double rotation counts once
func (s Stats) Total() uint64 {
	return s.SingleLeft + s.SingleRight + s.LeftRight + s.RightLeft
}

// live counters, safe to read from another go routine
type rotations struct {
	singleLeft  counter.Counter
	singleRight counter.Counter
	leftRight   counter.Counter
	rightLeft   counter.Counter
}

// move all counts from r into s, r is zero afterwards
func (s *rotations) transfer(r *rotations) {
	s.singleLeft.Add(r.singleLeft.Reset())
	s.singleRight.Add(r.singleRight.Reset())
	s.leftRight.Add(r.leftRight.Reset())
	s.rightLeft.Add(r.rightLeft.Reset())
}

// Stats - snapshot of the rotation counters
func (tree *Tree[K, V]) Stats() Stats {
	return Stats{
		SingleLeft:  tree.stats.singleLeft.Uint64(),
		SingleRight: tree.stats.singleRight.Uint64(),
		LeftRight:   tree.stats.leftRight.Uint64(),
		RightLeft:   tree.stats.rightLeft.Uint64(),
	}
}
