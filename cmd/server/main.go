// Package main implements the entry point for the placecards API server,
// a small social photo-cards backend with JWT authentication.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/placecards/placecards-api/internal/config"
	"github.com/placecards/placecards-api/internal/platform/logger"
	"github.com/placecards/placecards-api/internal/platform/postgres"
)

// main initializes configuration, logging, the database connection, and the
// service graph, then runs the HTTP server until a shutdown signal arrives.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func run() error {
	// A local .env file is a development convenience; absence is fine.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"env", cfg.Server.Env,
		"token_carrier", cfg.Auth.TokenCarrier)

	// Establish the database connection
	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	// Bring the schema up to date before serving traffic
	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Wire up stores, services, and handlers
	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	// Serve until a shutdown signal arrives
	return app.startHTTPServer(ctx, app.setupRouter())
}
