package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"shareit/cmd/bootstrap"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/config"
)

// Applies pending migrations from DB_MIGRATIONS_DIR with the atlas CLI.
func main() {
	if err := run(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := bootstrap.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return db.Migrate(ctx, cfg.DB, logger)
}
