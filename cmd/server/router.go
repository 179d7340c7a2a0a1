package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/placecards/placecards-api/internal/api"
	"github.com/placecards/placecards-api/internal/api/middleware"
	"github.com/placecards/placecards-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.userService, app.config.Auth, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.logger)
	authMiddleware := middleware.NewAuthMiddleware(app.jwtService, app.config.Auth.TokenCarrier)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public endpoints
	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)
	r.Get("/signout", authHandler.Signout)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/me", userHandler.GetMe)
		r.Patch("/users/me", userHandler.UpdateProfile)
		r.Patch("/users/me/avatar", userHandler.UpdateAvatar)
		r.Get("/users/{userId}", userHandler.GetUser)

		r.Get("/cards", cardHandler.ListCards)
		r.Post("/cards", cardHandler.CreateCard)
		r.Delete("/cards/{cardId}", cardHandler.DeleteCard)
		r.Put("/cards/{cardId}/likes", cardHandler.LikeCard)
		r.Delete("/cards/{cardId}/likes", cardHandler.DislikeCard)
	})

	// Unknown paths still require a valid token; only authenticated
	// callers learn that a route does not exist.
	r.NotFound(authMiddleware.Authenticate(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
		},
	)).ServeHTTP)

	return r
}
