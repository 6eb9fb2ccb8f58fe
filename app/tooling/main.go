package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jrazmi/sitebook/app/tooling/commands"
	"github.com/jrazmi/sitebook/sdk/environment"
	"github.com/jrazmi/sitebook/sdk/logger"
)

var build = "develop"

func run(ctx context.Context, log *logger.Logger, args []string) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	done := make(chan error, 1)
	go func() {
		done <- commands.Root(log.Logger, build).Run(ctx, args)
	}()

	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		cancel()

		// Give the command a short time to unwind.
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			return fmt.Errorf("shutdown timeout after %s", sig)
		}
	}
}

func main() {
	if err := environment.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.NewFromEnv(commands.AppName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "oh no we couldn't even get logging going:", err)
		os.Exit(1)
	}
	ctx := context.Background()

	if err := run(ctx, log, os.Args); err != nil {
		log.ErrorContext(ctx, "run", "err", err)
		os.Exit(1)
	}
}
