package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/streamix/streamix-cli/internal/services"
	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	if os.Getenv("STREAMIX_DEBUG") != "" {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	sessions := shared.NewSessionStore(config.SessionPath())

	opts := services.ClientOpts{
		Tokens:      sessions,
		RequestRate: config.Services.RequestRate,
		OnUnauthorized: func() {
			logger.Warn("session expired, clearing stored credentials")
			if err := sessions.Clear(); err != nil {
				logger.Error("failed to clear session", "err", err)
			}
		},
	}

	authService := services.NewAuthService(config.Services.AuthURL, opts)
	catalogService := services.NewCatalogService(config.Services.MovieURL, config.Services.TVURL, opts)
	interactionService := services.NewInteractionService(config.Services.InteractionURL, opts)

	runner := NewRunner(RunnerOpts{
		Config:       config,
		Auth:         authService,
		Catalog:      catalogService,
		Interactions: interactionService,
		Sessions:     sessions,
		Logger:       logger,
	})

	app := &cli.Command{
		Name:     "streamix",
		Usage:    "Browse and watch the Streamix catalog from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Fatal("not logged in, run 'streamix auth login'")
		}
		logger.Fatalf("application error: %v", err)
	}
}
