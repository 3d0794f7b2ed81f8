package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"recall-game/gateway"
	"recall-game/internal"
	"recall-game/observability"
	"recall-game/runtime"
	"recall-game/runtime/workers"
	"recall-game/storage"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Recall backend terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Room directory (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	rooms := storage.NewRoomRepository(db, logger)
	if config.SeedFilepath != "" {
		seed, err := storage.ReadSeedFile(config.SeedFilepath)
		if err != nil {
			return exitConfig, fmt.Errorf("seed file: %w", err)
		}
		n, err := storage.Seed(rooms, seed)
		if err != nil {
			return exitRuntime, err
		}
		logger.Info("Rooms seeded", "count", n, "file", config.SeedFilepath)
	}

	// 3. Messaging gateway & game backend
	hub := gateway.NewHub(logger, gateway.NewRegistry(), rooms, config.DeliveryTimeout)
	game, err := runtime.InitializeGame(logger, hub)
	if err != nil {
		return exitRuntime, err
	}
	defer game.Cleanup()

	// 4. Health surfaces
	grpcHealth := observability.NewGRPCHealthServer(logger, config.HealthAddress())
	monitor := observability.NewHealthMonitor(logger, game, game, hub)
	debug := internal.NewDebugServer(logger, db, config.DebugAddress(), "/inspect", RoomMapper, monitor.Stats)
	debug.Handle("/health", monitor)

	// 5. Supervision
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		gateway.NewWebsocketServer(logger, hub, config.Address(), config.WebsocketPath, config.SessionBufferSize),
		grpcHealth,
		workers.NewHealthProbeWorker(logger, game, config.HealthInterval, grpcHealth),
		debug,
	)
	logger.Info("Recall game backend ready",
		"websocket", fmt.Sprintf("ws://%s%s", config.Address(), config.WebsocketPath),
		"health", config.HealthAddress(),
		"inspect", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))

	// Run blocks until the signal context is canceled and every worker is gone.
	sup.Run(ctx)

	logger.Info("Shutting down gracefully...")
	game.DetachGateway()
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}
