// Command avlcheck exercises the avlmap package: it replays the reference
// scenario and runs randomized workloads which verify every tree invariant
// after every operation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "avlcheck: %v\n", err)
		os.Exit(1)
	}
}
