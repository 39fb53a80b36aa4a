package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchthis/internal/config"
	"github.com/mmcdole/watchthis/internal/hasura"
	"github.com/mmcdole/watchthis/internal/log"
	"github.com/mmcdole/watchthis/internal/service"
	"github.com/mmcdole/watchthis/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	var showVersion bool
	var endpoint string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&endpoint, "endpoint", "", "GraphQL endpoint URL (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("watchthis %s\n", Version)
		return
	}

	if err := run(endpoint); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(endpoint string) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if endpoint != "" {
		cfg.Endpoint.URL = endpoint
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging, Version)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting watchthis", "version", Version, "endpoint", cfg.Endpoint.URL)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	client := hasura.NewClient(cfg.Endpoint.URL, cfg.Endpoint.Timeout, logger,
		hasura.WithHeaders(cfg.Endpoint.Headers))
	showSvc := service.NewShowService(client, cfg.Cache.TTL, logger)

	model := tui.NewModel(showSvc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
