package api

import (
	"log/slog"
	"net/http"

	"github.com/placecards/placecards-api/internal/api/middleware"
	"github.com/placecards/placecards-api/internal/api/shared"
	"github.com/placecards/placecards-api/internal/config"
	"github.com/placecards/placecards-api/internal/service"
	"github.com/placecards/placecards-api/internal/service/auth"
)

// AuthHandler handles signup, signin, and signout.
type AuthHandler struct {
	userService service.UserService
	authConfig  config.AuthConfig
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	authConfig config.AuthConfig,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userService: userService,
		authConfig:  authConfig,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.CreateUser(r.Context(), service.CreateUserParams{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// The password hash never leaves the domain layer.
	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// Signin handles POST /signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// Repeated credential failures are an operational signal.
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err,
			shared.WithElevatedLogLevel())
		return
	}

	if h.authConfig.TokenCarrier == config.CarrierCookie {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.AuthCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(auth.TokenLifetime.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Signout handles GET /signout. With the cookie carrier the token cookie is
// cleared; with the bearer carrier the client simply discards its token.
func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	if h.authConfig.TokenCarrier == config.CarrierCookie {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.AuthCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Signed out"})
}
