// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "sorting %d keys\n", c.NArg())
	}

	if m.numeric {
		keys, err := parseNumeric(c.Args())
		if nil != err {
			return err
		}
		return sortKeys(m.w, keys)
	}
	return sortKeys(m.w, []string(c.Args()))
}

func runShape(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	deletions := c.StringSlice("delete")
	heights := c.Bool("heights")

	if m.verbose {
		fmt.Fprintf(m.e, "inserting %d keys, deleting %d keys\n", c.NArg(), len(deletions))
	}

	if m.numeric {
		keys, err := parseNumeric(c.Args())
		if nil != err {
			return err
		}
		del, err := parseNumeric(deletions)
		if nil != err {
			return err
		}
		return shapeKeys(m.w, keys, del, heights)
	}
	return shapeKeys(m.w, []string(c.Args()), deletions, heights)
}

func runDot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.numeric {
		keys, err := parseNumeric(c.Args())
		if nil != err {
			return err
		}
		return dotKeys(m.w, keys)
	}
	return dotKeys(m.w, []string(c.Args()))
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	seed := c.Int64("seed")

	if m.verbose {
		fmt.Fprintf(m.e, "checking %d operations with seed: %d\n", count, seed)
	}

	report, err := randomCheck(count, seed)
	if nil != err {
		return err
	}

	return printJson(m.w, report)
}
