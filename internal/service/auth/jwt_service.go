package auth

import (
	"context"
	"time"

	"github.com/placecards/placecards-api/internal/domain"
)

// TokenLifetime is the fixed validity window of an identity token.
const TokenLifetime = 7 * 24 * time.Hour

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT embedding the user's identity,
	// valid for TokenLifetime from issuance.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID domain.ID) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims containing the user identity if the token is valid,
	// or an error if validation fails (expired, invalid signature, etc.).
	// On success the claims are authoritative for the rest of the request.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID domain.ID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
