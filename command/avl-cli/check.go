// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/orderedset"
)

type checkReport struct {
	Seed       int64     `json:"seed"`
	Operations int       `json:"operations"`
	Inserted   int       `json:"inserted"`
	Deleted    int       `json:"deleted"`
	Count      int       `json:"count"`
	Height     int       `json:"height"`
	HeightMax  int       `json:"height_bound"`
	Rotations  avl.Stats `json:"rotations"`
	Total      uint64    `json:"total_rotations"`
}

// random insertions and deletions over keys [0, count), verifying
// every invariant after each operation
func randomCheck(count int, seed int64) (*checkReport, error) {

	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	r := rand.New(rand.NewSource(seed))
	s := orderedset.New[int]()
	present := make(map[int]struct{})

	report := &checkReport{
		Seed:       seed,
		Operations: count,
	}

	for i := 0; i < count; i += 1 {
		key := r.Intn(count)

		// bias towards insertion so the tree grows
		if 0 == r.Intn(3) {
			n := s.Remove(key)
			if _, ok := present[key]; ok != (1 == n) {
				return nil, fmt.Errorf("operation %d: delete %d: %w", i, key, fault.ErrCountMismatch)
			}
			delete(present, key)
			report.Deleted += n
		} else {
			n := s.Insert(key)
			if _, ok := present[key]; ok != (0 == n) {
				return nil, fmt.Errorf("operation %d: insert %d: %w", i, key, fault.ErrCountMismatch)
			}
			present[key] = struct{}{}
			report.Inserted += n
		}

		if err := s.Check(); nil != err {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		if s.Count() != len(present) {
			return nil, fmt.Errorf("operation %d: %w", i, fault.ErrCountMismatch)
		}
	}

	report.Count = s.Count()
	report.Height = s.Height()
	report.HeightMax = heightBound(s.Count())
	report.Rotations = s.Tree().Stats()
	report.Total = report.Rotations.Total()

	if report.Height > report.HeightMax {
		return nil, fmt.Errorf("height: %d exceeds: %d: %w", report.Height, report.HeightMax, fault.ErrUnbalanced)
	}
	return report, nil
}

// worst case height of an AVL tree with n nodes
func heightBound(n int) int {
	return int(math.Floor(1.4405*math.Log2(float64(n+2)) - 0.3277))
}
