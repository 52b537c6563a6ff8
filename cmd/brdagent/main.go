package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/brdagent/internal/cli"
	"github.com/alexanderramin/brdagent/internal/logging"
	"github.com/alexanderramin/brdagent/internal/orchestrator"
	"github.com/alexanderramin/brdagent/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	// A .env file in the working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger := logging.New(logging.LoadConfig())

	app := &cli.App{
		Config:    orchestrator.LoadConfig(),
		Logger:    logger,
		Observers: []service.UseCaseObserver{service.NewLogUseCaseObserver(logger)},
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
