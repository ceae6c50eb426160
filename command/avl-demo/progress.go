// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
)

// background reporter for a long insert run
//
// only reads atomic counters so it can run alongside the inserting
// go routine
type progress struct {
	interval time.Duration
	target   uint64
	inserted *counter.Counter
	stats    func() avl.Stats
	reports  counter.Counter
}

// Run - log progress every interval until shutdown, then a final line
func (state *progress) Run(args interface{}, shutdown <-chan struct{}) {

	log := args.(*logger.L)
	log.Info("starting…")

	ticker := time.NewTicker(state.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			state.report(log)
		}
	}

	state.report(log)
	log.Info("stopped")
}

func (state *progress) report(log *logger.L) {
	state.reports.Increment()
	n := state.inserted.Uint64()
	s := state.stats()
	log.Infof("inserted: %d/%d  rotations: %d  single left: %d  single right: %d  left-right: %d  right-left: %d",
		n, state.target, s.Total(), s.SingleLeft, s.SingleRight, s.LeftRight, s.RightLeft)
}

// insert keys 0..count-1 with value equal to key while a background
// process reports progress, then verify the tree
func runScale(log *logger.L, m *demoMap, count int, interval time.Duration) (avl.Stats, error) {

	inserted := counter.Counter{}
	reporter := &progress{
		interval: interval,
		target:   uint64(count),
		inserted: &inserted,
		stats:    m.Tree().Stats,
	}

	processes := background.Processes{
		reporter,
	}
	p := background.Start(processes, logger.New("progress"))

	for i := 0; i < count; i += 1 {
		m.Insert(i, i)
		inserted.Increment()
	}

	p.Stop()

	log.Infof("scale run: count: %d  height: %d  reports: %d", m.Count(), m.Height(), reporter.reports.Uint64())

	if err := m.Check(); nil != err {
		return avl.Stats{}, err
	}
	return m.Tree().Stats(), nil
}
