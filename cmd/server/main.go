package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/notekeeper/internal/config"
	"github.com/iudanet/notekeeper/internal/server"
	"github.com/iudanet/notekeeper/internal/server/handlers"
	"github.com/iudanet/notekeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "notekeeper server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Конфигурация загружается один раз и дальше только передается по ссылке
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))

	// Завершаемся по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWT.Secret),
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
	}

	h := server.Handlers{
		Auth:   handlers.NewAuthHandler(logger, storage, jwtConfig, cfg.BcryptCost),
		Notes:  handlers.NewNotesHandler(logger, storage),
		Health: handlers.NewHealthHandler(logger, Version),
	}

	router := server.NewRouter(logger, jwtConfig, h)
	srv := server.New(logger, cfg.Address, router)

	logger.Info("notekeeper server starting",
		slog.String("version", Version),
		slog.String("addr", cfg.Address),
		slog.String("db", cfg.DatabasePath))

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("Notekeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
