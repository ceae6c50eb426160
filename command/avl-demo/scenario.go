// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/orderedmap"
)

type demoMap = orderedmap.Map[int, int]

// replay of the fixed map exercise:
// build 1..10, copy and move it, erase, then use the subscript
// operator to read, write and accumulate values
func runScenario(log *logger.L, w io.Writer, printEntries bool) (*demoMap, error) {

	show := func(m *demoMap) {
		log.Debugf("entries: %s", m)
		if printEntries {
			m.Print(w)
		}
	}

	entries := make([]orderedmap.Entry[int, int], 0, 10)
	for i := 1; i <= 10; i += 1 {
		entries = append(entries, orderedmap.Entry[int, int]{Key: i, Value: 0})
	}

	a := orderedmap.New(entries...)
	b := a.Clone()
	c := a.Clone()
	d := b.Move()
	e := a.Move()

	log.Infof("copies: a: %d  b: %d  c: %d  d: %d  e: %d", a.Count(), b.Count(), c.Count(), d.Count(), e.Count())

	e.Remove(8)
	e.Remove(10)
	show(e)

	*e.Index(5) = 200
	show(e)

	*e.Index(100) = 32
	show(e)

	fresh := *e.Index(999)
	if printEntries {
		fmt.Fprintf(w, "%d\n", fresh)
	}
	show(e)

	*e.Index(999) += 1
	v, err := e.At(999)
	if nil != err {
		return nil, err
	}
	if printEntries {
		fmt.Fprintf(w, "%d\n", v)
	}

	*e.Index(7) = 7 * 7 * 7 * 7
	*e.Index(9) += *e.Index(7)
	show(e)

	// reading twice only inserts once
	for i := 0; i < 2; i += 1 {
		if 0 != *e.Index(12) {
			log.Warn("key 12 unexpectedly has a value")
		}
	}
	show(e)

	if e.Insert(9, 0) {
		log.Warn("key 9 was not present")
	}
	show(e)

	if err := e.Check(); nil != err {
		return nil, err
	}

	log.Infof("replay complete: count: %d  height: %d", e.Count(), e.Height())
	return e, nil
}
