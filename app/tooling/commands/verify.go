package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jrazmi/sitebook/core/dbtypes"
	"github.com/jrazmi/sitebook/core/platform"
	"github.com/jrazmi/sitebook/schema/reflector"
	"github.com/urfave/cli/v3"
)

// Verify checks the compiled bindings and, with --live, compares them to a
// fresh reflection of the database.
func Verify(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "check the generated bindings for consistency and drift",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "live", Usage: "also compare against the database"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := dbtypes.Verify(platform.Schema); err != nil {
				return fmt.Errorf("verify bindings: %w", err)
			}
			log.InfoContext(ctx, "bindings consistent",
				"tables", len(platform.Schema.TableNames()),
				"enums", len(platform.Schema.Enums()),
				"functions", len(platform.Schema.Functions()))

			if !cmd.Bool("live") {
				return nil
			}

			pool, metrics, err := openPool(ctx, log)
			if err != nil {
				return err
			}
			defer pool.Close()
			defer metrics.report(ctx, log)

			store := reflector.NewPostgresStore(pool, pool.Config().ConnConfig.Database)
			live, err := reflector.NewReflector(store, reflector.WithLogger(log)).Reflect(ctx, platform.Schema.Name())
			if err != nil {
				return fmt.Errorf("reflect schema: %w", err)
			}

			return reportDrift(ctx, log, reflector.Drift(live, platform.Schema))
		},
	}
}

func reportDrift(ctx context.Context, log *slog.Logger, drift []string) error {
	if len(drift) == 0 {
		log.InfoContext(ctx, "bindings match database")
		return nil
	}
	for _, d := range drift {
		log.WarnContext(ctx, "drift", "detail", d)
	}
	return fmt.Errorf("%w: %d differences", ErrDrift, len(drift))
}
