// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	avlversion "github.com/bitmark-inc/avltree/version"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s (library: %s)", program, version, avlversion.Version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if verbose {
		b, err := json.MarshalIndent(theConfiguration, "", "  ")
		if nil == err {
			fmt.Printf("configuration: %s\n", b)
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var w io.Writer = os.Stdout
	if quiet {
		w = ioutil.Discard
	}
	printEntries := theConfiguration.PrintEntries && !quiet

	e, err := runScenario(logger.New("scenario"), w, printEntries)
	if nil != err {
		fault.Criticalf("replay failed: %s", err)
		exitwithstatus.Message("%s: replay failed: %s", program, err)
	}

	if 0 == theConfiguration.ScaleCount {
		log.Info("scale run skipped")
		return
	}

	interval := time.Duration(theConfiguration.ProgressInterval) * time.Millisecond
	start := time.Now()
	stats, err := runScale(log, e, theConfiguration.ScaleCount, interval)
	if nil != err {
		fault.Criticalf("scale run failed: %s", err)
		exitwithstatus.Message("%s: scale run failed: %s", program, err)
	}
	elapsed := time.Since(start)

	log.Infof("elapsed: %s  rotations: %d", elapsed, stats.Total())
	fmt.Fprintf(w, "count: %d  height: %d  rotations: %d  elapsed: %s\n", e.Count(), e.Height(), stats.Total(), elapsed)
}
