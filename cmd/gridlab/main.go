package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/gridlab/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	pageSize := flag.Int("page-size", 0, "rows per data grid page (optional, defaults to 10)")
	seed := flag.Uint64("seed", 0, "seed for generated prices and stock (optional)")
	tab := flag.String("tab", "", "initial tab: memo, usememo, callback, custom, refactor, hooks")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Tab: *tab, Seed: *seed}
	if size := *pageSize; size > 0 {
		opts.PageSize = size
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gridlab: %v\n", err)
		return 1
	}
	return 0
}
