// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/orderedset"
)

// convert all arguments to integers
func parseNumeric(args []string) ([]int64, error) {
	keys := make([]int64, 0, len(args))
	for _, s := range args {
		n, err := strconv.ParseInt(s, 10, 64)
		if nil != err {
			return nil, fmt.Errorf("%q: %w", s, fault.ErrInvalidKey)
		}
		keys = append(keys, n)
	}
	return keys, nil
}

// one key per line, duplicates removed
func sortKeys[K cmp.Ordered](w io.Writer, keys []K) error {
	s := orderedset.New(keys...)
	for k := range s.All() {
		if _, err := fmt.Fprintf(w, "%v\n", k); nil != err {
			return err
		}
	}
	return nil
}

// node colour by balance factor: height(right) - height(left)
var balancePalette = map[int]*color.Color{
	-1: color.New(color.FgYellow),
	0:  color.New(color.FgGreen),
	1:  color.New(color.FgCyan),
}

// ASCII drawing of the tree after all insertions then all deletions
func shapeKeys[K cmp.Ordered](w io.Writer, keys []K, deletions []K, heights bool) error {
	s := orderedset.New(keys...)
	s.Remove(deletions...)

	if s.IsEmpty() {
		_, err := fmt.Fprintf(w, "(empty)\n")
		return err
	}

	tree := s.Tree()
	if heights {
		for depth := 0; depth <= tree.Height(); depth += 1 {
			fmt.Fprintf(w, "depth %d:", depth)
			for _, p := range tree.Root().GetChildrenByDepth(uint(depth)) {
				fmt.Fprintf(w, " ")
				c, ok := balancePalette[p.Right().Height()-p.Left().Height()]
				if !ok {
					c = color.New(color.FgRed)
				}
				c.Fprintf(w, "%v(h=%d)", p.Key(), p.Height())
			}
			fmt.Fprintf(w, "\n")
		}
	}
	tree.Fprint(w, false)
	return s.Check()
}

// Graphviz output, an empty tree is an empty graph
func dotKeys[K cmp.Ordered](w io.Writer, keys []K) error {
	s := orderedset.New(keys...)
	return s.Tree().Dot(w)
}
