package store

import (
	"context"
	"database/sql"

	"github.com/placecards/placecards-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	// Returns ErrInvalidEntity wrapping the domain error if the user is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user includes the password hash for credential checks;
	// callers must not expose it.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users in creation order.
	List(ctx context.Context) ([]*domain.User, error)

	// Update persists changes to an existing user's profile fields
	// (name, about, avatar). The email and password hash are never changed
	// through this method. Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
