// Command polybench replays a polygon query benchmark: a polygon read from a
// file is replicated into a row of blocks and a batch of random points is
// run through every query.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
