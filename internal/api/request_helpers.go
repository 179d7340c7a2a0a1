package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/placecards/placecards-api/internal/api/shared"
	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/platform/logger"
)

// HandleAPIError maps an internal error to its HTTP status and safe message
// and writes the response. If overrideMessage is non-empty it replaces the
// mapped message; the raw error only ever reaches the logs.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The user ID is placed in the context by the authentication
// middleware; a missing or zero ID means the middleware did not run.
func getUserIDFromContext(r *http.Request) (domain.ID, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok || userID.IsZero() {
		return "", false
	}
	return userID, true
}

// getPathID extracts a 24-character hex identifier from the URL path
// parameters, rejecting missing or malformed values.
func getPathID(r *http.Request, paramName string) (domain.ID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := domain.ParseID(pathParam)
	if err != nil {
		return "", domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handleUserIDAndPathID is a composite helper that extracts both the user ID
// from context and an identifier from the path parameters. It writes an error
// response and returns false if either extraction fails.
func handleUserIDAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	log *slog.Logger,
) (domain.ID, domain.ID, bool) {
	// Get logger from context if not provided
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	// Extract user ID from context
	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authorization required")
		return "", "", false
	}

	// Extract path identifier
	pathID, err := getPathID(r, paramName)
	if err != nil {
		log.Warn("invalid "+paramName,
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return "", "", false
	}

	return userID, pathID, true
}
