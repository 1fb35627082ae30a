// Command rosterctl manages the PiXELL River Financial roster through the
// server's JSON API.
//
//	rosterctl employees list
//	rosterctl employees create --first Amanda --last Singh --department d2
//	rosterctl employees import staff.yaml --concurrency 8
//	rosterctl reseed
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		writeError(os.Stderr, err)
		os.Exit(1)
	}
}
