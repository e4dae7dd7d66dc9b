package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/preflop-drill/internal/config"
	"github.com/lox/preflop-drill/internal/drill"
	"github.com/lox/preflop-drill/internal/term"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Hands      int    `arg:"" help:"Number of hands to run"`
	Seed       *int64 `help:"RNG seed; hand n is dealt from seed+n-1 for reproducible-but-varied sequences"`
	Timeout    *int   `help:"Seconds to wait per street before auto-advancing (default 600)"`
	Config     string `default:"drill.hcl" help:"Path to optional HCL config file"`
	ShowResult bool   `help:"Describe the final hand after the river"`
	NoColor    bool   `help:"Disable ANSI colors"`
	Debug      bool   `short:"d" help:"Enable debug logging"`
}

func (c *CLI) Validate() error {
	if c.Hands < 1 {
		return fmt.Errorf("hands must be at least 1, got %d", c.Hands)
	}
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("preflop-drill"),
		kong.Description("Button opening-range drill with street-by-street reveals"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(cli.Config)
	kctx.FatalIfErrorf(err)

	logger := setupLogger(&cli, cfg)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	session := &drill.Session{
		Out: os.Stdout,
		Prompter: term.NewKeyWaiter(
			os.Stdin, os.Stdout,
			quartz.NewReal(),
			resolveTimeout(&cli, cfg),
			logger,
		),
		Logger:     logger,
		Hands:      cli.Hands,
		ShowResult: cli.ShowResult || cfg.Drill.ShowResult,
	}
	if cli.Seed != nil {
		session.Seed = *cli.Seed
		session.Seeded = true
	}

	ctx := setupSignalHandler()

	switch err := session.Run(ctx); {
	case err == nil:
	case errors.Is(err, term.ErrInterrupted), errors.Is(err, context.Canceled):
		fmt.Println("\nStopped by user.")
	default:
		logger.Error("session failed", "error", err)
		kctx.Exit(1)
	}
	kctx.Exit(0)
}

// resolveTimeout applies precedence: flag over config file over default
func resolveTimeout(cli *CLI, cfg *config.Config) time.Duration {
	timeout := *cfg.Drill.Timeout
	if cli.Timeout != nil {
		timeout = *cli.Timeout
	}
	return time.Duration(timeout) * time.Second
}

func setupLogger(cli *CLI, cfg *config.Config) *log.Logger {
	level := log.InfoLevel
	if l, err := log.ParseLevel(cfg.Drill.LogLevel); err == nil {
		level = l
	}
	if cli.Debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "drill",
	})
}
