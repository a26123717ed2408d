package db

import (
	"context"
	"log/slog"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending versioned migrations through the atlas CLI.
func Migrate(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.AtlasBinary)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: cfg.MigrationsDir,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	logger.Info("migrations applied",
		slog.Int("applied", len(res.Applied)),
		slog.String("current", res.Current),
		slog.String("target", res.Target),
	)
	return nil
}
