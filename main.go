/*
Pointillist renders a mirrored pair of hands made of shaded points.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/pointillist/engine"
	"github.com/spaghettifunk/pointillist/engine/config"
	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/testbed"
)

func main() {
	var (
		configPath = flag.String("config", "pointillist.toml", "Path to the TOML configuration file.")
		headless   = flag.Bool("headless", false, "Run without a window.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
		seed       = flag.Uint64("seed", 0, "Seed for point generation.")
		snapshot   = flag.String("snapshot", "", "Write a PNG of the last frame to this path on exit.")
		logLevel   = flag.String("log-level", "", "Override the configured log level.")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		core.LogFatal("failed to load configuration: %s", err)
	}

	// flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless.Enabled = *headless
		case "ticks":
			cfg.Headless.Ticks = *ticks
		case "seed":
			cfg.Seed = *seed
		case "snapshot":
			cfg.Snapshot = *snapshot
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		core.LogFatal("%s", err)
	}

	tb, err := testbed.NewHandsGame(cfg, *configPath)
	if err != nil {
		core.LogFatal("%s", err)
	}

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	// capture sigterm and other system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		core.LogError("%s", runErr)
		os.Exit(1)
	}
}
