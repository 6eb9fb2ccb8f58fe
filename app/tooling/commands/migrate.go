package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jrazmi/sitebook/infrastructure/postgresdb"
	"github.com/jrazmi/sitebook/schema"
	"github.com/urfave/cli/v3"
)

// Migrate applies the embedded schema migrations.
func Migrate(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending schema migrations",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "give up after this long",
				Value: 5 * time.Minute,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			pool, metrics, err := openPool(ctx, log)
			if err != nil {
				return err
			}
			defer pool.Close()
			defer metrics.report(ctx, log)

			log.InfoContext(ctx, "migration started")
			if err := postgresdb.Migrate(ctx, log, pool, schema.MigrationsFS, schema.MigrationsDir); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			log.InfoContext(ctx, "migration completed")
			return nil
		},
	}
}
