// bestfirst runs best-first traversals over graphs described in YAML files.
//
// Usage:
//
//	bestfirst walk --graph=<file> --from=<id> [--limit=N]
//	bestfirst path --graph=<file> --from=<id> --to=<id>[,<id>...] [--algo=dijkstra|astar|widest]
//
// Global flags: --format=text|json|yaml, --log-level=debug|info|warn|error, --metrics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
