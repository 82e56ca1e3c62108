// Command lobcore wires the feed scanner, the order book core, the
// snapshot formatter and (optionally) a Prometheus metrics endpoint into a
// cobra command tree: scan a real feed file, generate and scan a synthetic
// demo feed, or replay a file twice as a determinism smoke check.
package main

import (
	"context"
	"fmt"
	"os"

	"cosmossdk.io/log"

	"github.com/akshitanchan/lob-core/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(log.NewLogger(os.Stderr)).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
