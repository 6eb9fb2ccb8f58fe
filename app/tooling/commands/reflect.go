package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jrazmi/sitebook/schema/reflector"
	"github.com/jrazmi/sitebook/sdk/environment"
	"github.com/urfave/cli/v3"
)

// Reflect introspects the database and writes <schema>.json and <schema>.sql.
func Reflect(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "reflect",
		Usage: "reflect the live schema to JSON and SQL artifacts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "schema", Usage: "schema to reflect (default $SITEBOOK_REFLECT_SCHEMA or public)"},
			&cli.StringFlag{Name: "output", Usage: "output directory (default $SITEBOOK_REFLECT_OUTPUT_DIR or schema/reflected)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := reflectConfig(cmd)
			if err != nil {
				return err
			}

			pool, metrics, err := openPool(ctx, log)
			if err != nil {
				return err
			}
			defer pool.Close()
			defer metrics.report(ctx, log)

			store := reflector.NewPostgresStore(pool, pool.Config().ConnConfig.Database)
			reflected, err := reflector.NewReflector(store, reflector.WithLogger(log)).Reflect(ctx, cfg.SchemaName)
			if err != nil {
				return fmt.Errorf("reflect schema: %w", err)
			}

			return writeReflection(ctx, log, reflected, cfg.OutputDir)
		},
	}
}

func reflectConfig(cmd *cli.Command) (reflector.Config, error) {
	var cfg reflector.Config
	if err := environment.ParseEnvTags(AppName, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing reflect config: %w", err)
	}
	if cmd.IsSet("schema") {
		cfg.SchemaName = cmd.String("schema")
	}
	if cmd.IsSet("output") {
		cfg.OutputDir = cmd.String("output")
	}
	return cfg, nil
}

func writeReflection(ctx context.Context, log *slog.Logger, reflected *reflector.ReflectedSchema, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	jsonPath := filepath.Join(dir, reflected.SchemaName+".json")
	if err := reflector.WriteJSON(reflected, jsonPath); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	sqlPath := filepath.Join(dir, reflected.SchemaName+".sql")
	if err := reflector.WriteSQL(reflected, sqlPath); err != nil {
		return fmt.Errorf("write sql: %w", err)
	}

	log.InfoContext(ctx, "reflection written",
		"json", jsonPath,
		"sql", sqlPath,
		"tables", len(reflected.Tables),
		"enums", len(reflected.Enums),
		"functions", len(reflected.Functions))
	return nil
}
