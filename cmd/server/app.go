package main

import (
	"database/sql"
	"log/slog"

	"github.com/placecards/placecards-api/internal/config"
	"github.com/placecards/placecards-api/internal/platform/postgres"
	"github.com/placecards/placecards-api/internal/service"
	"github.com/placecards/placecards-api/internal/service/auth"
)

// application holds the fully wired dependency graph for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService  auth.JWTService
	userService service.UserService
	cardService service.CardService
}

// newApplication wires stores and services from the shared database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)

	userService := service.NewUserService(
		userStore,
		jwtService,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
		logger,
	)
	cardService := service.NewCardService(db, cardStore, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		jwtService:  jwtService,
		userService: userService,
		cardService: cardService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
