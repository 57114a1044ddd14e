package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/cimco-parts/internal/app"
	"github.com/you-humble/cimco-parts/platform/logger"
)

func main() {
	var opts app.Options
	flag.StringVar(&opts.Mode, "mode", app.ModeServe, "serve | run | import")
	flag.StringVar(&opts.File, "file", "", "parts .csv or .xlsx for -mode import")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "compute and report without writing")
	flag.BoolVar(&opts.SkipRisk, "skip-risk", false, "skip the risk phase")
	flag.BoolVar(&opts.SkipStock, "skip-stock", false, "skip the stock phase")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to init app: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ app stopped with error", logger.ErrorF(err))
		stop()
		os.Exit(1)
	}
}
