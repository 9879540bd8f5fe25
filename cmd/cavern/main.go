// Package main runs the cavern text adventure on the terminal.
// It wires together configuration, logging, the reference world, and a
// console session over stdin and stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/cavern/internal/config"
	"github.com/cory-johannsen/cavern/internal/frontend/console"
	"github.com/cory-johannsen/cavern/internal/game/command"
	"github.com/cory-johannsen/cavern/internal/game/locale"
	"github.com/cory-johannsen/cavern/internal/game/world"
	"github.com/cory-johannsen/cavern/internal/observability"
)

const (
	exitOK           = 0
	exitRoomNotFound = 1
	exitFailure      = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults and CAVERN_* environment when empty)")
	envPath := flag.String("env", ".env", "path to an optional dotenv file with CAVERN_* overrides")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return exitFailure
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	tag, err := locale.Parse(cfg.Game.Locale)
	if err != nil {
		logger.Error("resolving locale", zap.Error(err))
		return exitFailure
	}

	graph, err := world.ReferenceIn(tag)
	if err != nil {
		logger.Error("building world", zap.Error(err))
		return exitFailure
	}
	logger.Info("world loaded",
		zap.String("world", graph.ID),
		zap.Int("rooms", graph.RoomCount()),
		zap.String("locale", tag.String()),
		zap.Duration("elapsed", time.Since(start)),
	)

	session := console.NewSession(
		console.NewConn(os.Stdin, os.Stdout),
		graph,
		command.DefaultRegistry(),
		locale.NewPrinter(tag),
		cfg.Console,
		cfg.Game.PlayerName,
		logger,
	)

	if err := session.Run(context.Background()); err != nil {
		logger.Error("session ended with error", zap.Error(err))
		if errors.Is(err, command.ErrRoomNotFound) {
			return exitRoomNotFound
		}
		return exitFailure
	}
	return exitOK
}
