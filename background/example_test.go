// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/orderedset"
)

type filler struct {
	set *orderedset.Set[int]
}

func Example() {

	proc := &filler{
		set: orderedset.New[int](),
	}

	// list of background processes to start
	processes := background.Processes{
		proc,
	}

	p := background.Start(processes, 1000)
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	fmt.Printf("consistent: %v\n", nil == proc.set.Check())
	// Output:
	// initialise
	// finalise
	// consistent: true
}

func (state *filler) Run(args interface{}, shutdown <-chan struct{}) {

	limit := args.(int)
	fmt.Printf("initialise\n")

loop:
	for i := 0; ; i += 1 {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.set.Insert(i % limit)
		time.Sleep(time.Millisecond)
	}

	fmt.Printf("finalise\n")
}
