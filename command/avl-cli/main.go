// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	avlversion "github.com/bitmark-inc/avltree/version"
)

type metadata struct {
	numeric bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "inspect the shape of AVL trees built from command line keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " compare keys as integers instead of strings",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "print the unique keys in ascending order",
			ArgsUsage: "KEY...",
			Flags:     []cli.Flag{},
			Action:    runSort,
		},
		{
			Name:      "shape",
			Usage:     "draw the tree built by inserting keys in order",
			ArgsUsage: "KEY...\n   (keys are inserted first, then deletions applied in order)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "delete, d",
					Usage: " delete `KEY` after building, may be repeated",
				},
				cli.BoolFlag{
					Name:  "heights, H",
					Usage: " list nodes by depth with their heights, coloured by balance",
				},
			},
			Action: runShape,
		},
		{
			Name:      "dot",
			Usage:     "write the tree in Graphviz DOT format",
			ArgsUsage: "KEY...",
			Flags:     []cli.Flag{},
			Action:    runDot,
		},
		{
			Name:      "check",
			Usage:     "random insert/delete run verifying the tree after every operation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 10000,
					Usage: " number of operations `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random number generator `SEED`",
				},
			},
			Action: runCheck,
		},
		{
			Name:   "version",
			Usage:  "display avl-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			numeric: c.GlobalBool("numeric"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s (library: %s)\n", version, avlversion.Version)
	return nil
}
