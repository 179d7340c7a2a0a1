package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placecards/placecards-api/internal/config"
	"github.com/placecards/placecards-api/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:    "test-secret-key-that-is-32-chars!",
		TokenCarrier: config.CarrierCookie,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := domain.NewID()
	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)

	// Expiry sits the fixed lifetime after issuance.
	assert.WithinDuration(t,
		claims.IssuedAt.Add(TokenLifetime),
		claims.ExpiresAt,
		time.Second)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := domain.NewID()

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signature", func(t *testing.T) {
		other, err := NewJWTService(config.AuthConfig{
			JWTSecret: "another-secret-key-that-is-32-ch!",
		})
		require.NoError(t, err)

		token, err := other.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("correctly signed token without time claims", func(t *testing.T) {
		// Minted outside GenerateToken, so iat and exp are absent. It must
		// fail validation as an invalid token, not panic on the nil dates.
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"uid": userID.String(),
			"sub": userID.String(),
		})
		token, err := raw.SignedString([]byte(testAuthConfig().JWTSecret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		impl := &hmacJWTService{
			signingKey: []byte(testAuthConfig().JWTSecret),
			lifetime:   TokenLifetime,
			timeFunc:   time.Now,
			clockSkew:  0,
		}

		// Issue a token in the past, beyond the lifetime.
		impl.timeFunc = func() time.Time {
			return time.Now().Add(-TokenLifetime - time.Hour)
		}
		token, err := impl.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		// Validate at real present time.
		impl.timeFunc = time.Now
		_, err = impl.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse battery staple")

	assert.NoError(t, verifier.Compare(hash, "correct horse battery staple"))
	assert.Error(t, verifier.Compare(hash, "wrong password"))
}
