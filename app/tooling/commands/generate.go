package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jrazmi/sitebook/app/generators/bindgen"
	"github.com/jrazmi/sitebook/sdk/environment"
	"github.com/urfave/cli/v3"
)

// Generate renders Go bindings from a reflected JSON artifact.
func Generate(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate Go bindings from a reflected schema",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Usage: "reflected JSON file (default $SITEBOOK_GENERATE_INPUT)"},
			&cli.StringFlag{Name: "output", Usage: "package directory to write (default $SITEBOOK_GENERATE_OUTPUT_DIR)"},
			&cli.StringFlag{Name: "package", Usage: "Go package name (default $SITEBOOK_GENERATE_PACKAGE)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var cfg bindgen.Config
			if err := environment.ParseEnvTags(AppName, &cfg); err != nil {
				return fmt.Errorf("parsing generate config: %w", err)
			}
			if cmd.IsSet("input") {
				cfg.InputPath = cmd.String("input")
			}
			if cmd.IsSet("output") {
				cfg.OutputDir = cmd.String("output")
			}
			if cmd.IsSet("package") {
				cfg.PackageName = cmd.String("package")
			}

			log.InfoContext(ctx, "generating bindings", "input", cfg.InputPath, "output", cfg.OutputDir)
			if err := bindgen.New(cfg, log).Generate(); err != nil {
				return fmt.Errorf("generate bindings: %w", err)
			}
			return nil
		},
	}
}
