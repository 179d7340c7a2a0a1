package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/placecards/placecards-api/internal/api/shared"
	"github.com/placecards/placecards-api/internal/config"
	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/redact"
	"github.com/placecards/placecards-api/internal/service/auth"
)

// AuthCookieName is the cookie holding the identity token when the cookie
// carrier is configured.
const AuthCookieName = "jwt"

// AuthMiddleware provides JWT authentication for routes. The token is read
// from the configured carrier: the "jwt" cookie or the Bearer authorization
// header.
type AuthMiddleware struct {
	jwtService auth.JWTService
	carrier    string
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, carrier string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		carrier:    carrier,
	}
}

// Authenticate validates the identity token and adds the user ID to the
// request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.tokenFromRequest(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
			return
		}

		// Validate token
		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		// Add user ID to context
		ctx := shared.WithUserID(r.Context(), claims.UserID)

		// Continue with the authenticated request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest extracts the raw token string from the configured carrier.
func (m *AuthMiddleware) tokenFromRequest(r *http.Request) (string, error) {
	if m.carrier == config.CarrierCookie {
		cookie, err := r.Cookie(AuthCookieName)
		if err != nil || cookie.Value == "" {
			return "", auth.ErrMissingToken
		}
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (domain.ID, bool) {
	return shared.GetUserID(r.Context())
}
