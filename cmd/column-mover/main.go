// Package main provides the CLI entrypoint for column-mover.
//
// column-mover converts gas meter reading exports into the target column
// layout:
//   - Finds input files by glob pattern
//   - Remaps every row through a declarative mapping table
//   - Writes one output file per input into a sibling directory
//   - Keeps or discards partial results according to the row policy
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonboulle/clockwork"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(clockwork.NewRealClock()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "column-mover: %v\n", err)
		stop()
		os.Exit(1)
	}
}
