package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/hrtools/noticedesk/internal/api"
	"github.com/hrtools/noticedesk/internal/cli"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := api.LoadConfig()

	var apiObserver api.Observer = api.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		apiObserver = api.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		API:      api.NewClient(cfg, apiObserver),
		Feed:     service.NewStatusFeed(),
		Observer: useCaseObserver,
		PageSize: contract.DefaultPageSize,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
