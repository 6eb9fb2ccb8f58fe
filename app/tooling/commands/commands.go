// Package commands implements the sitebook tooling subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/sitebook/infrastructure/postgresdb"
	"github.com/urfave/cli/v3"
)

// AppName namespaces every environment variable the tooling reads, so
// PG_DATABASE_URL is read as SITEBOOK_PG_DATABASE_URL.
const AppName = "SITEBOOK"

// ErrDrift is returned by verify when the bindings disagree with the database.
var ErrDrift = errors.New("bindings drifted from database")

// Root returns the sitebook command with every subcommand attached.
func Root(log *slog.Logger, build string) *cli.Command {
	return &cli.Command{
		Name:    "sitebook",
		Usage:   "migrate, reflect and generate typed bindings for the platform database",
		Version: build,
		Commands: []*cli.Command{
			Migrate(log),
			Reflect(log),
			Generate(log),
			Verify(log),
		},
	}
}

// openPool connects to the database. With SITEBOOK_PG_METRICS set, queries
// are counted and the returned metrics report them when the command ends.
func openPool(ctx context.Context, log *slog.Logger) (*pgxpool.Pool, *queryMetrics, error) {
	cfg, err := loadMetricsConfig()
	if err != nil {
		return nil, nil, err
	}
	metrics, err := newQueryMetrics(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := append([]postgresdb.Option{postgresdb.WithLogger(log)}, metrics.options()...)
	pool, err := postgresdb.NewFromEnv(ctx, AppName, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring postgres support: %w", err)
	}
	log.InfoContext(ctx, "init", "service", "postgres", "database", pool.Config().ConnConfig.Database, "metrics", cfg.Enabled)
	return pool, metrics, nil
}
