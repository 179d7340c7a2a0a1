package store

import (
	"context"
	"database/sql"

	"github.com/placecards/placecards-api/internal/domain"
)

// CardWithOwner pairs a card with its resolved owner profile, matching the
// expanded representation the card listing endpoint returns.
type CardWithOwner struct {
	Card  *domain.Card
	Owner *domain.User
}

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	// Returns ErrInvalidEntity wrapping the domain error if the card is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID, likes included.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id domain.ID) (*domain.Card, error)

	// ListWithOwners returns all cards, newest first, each with its owner
	// profile resolved and its likes set populated.
	ListWithOwners(ctx context.Context) ([]*CardWithOwner, error)

	// Delete removes a card from the store by its ID. Likes rows are removed
	// by the database's cascade rule. Returns ErrCardNotFound if the card
	// does not exist.
	Delete(ctx context.Context, id domain.ID) error

	// AddLike adds userID to the card's likes set. The operation is a single
	// atomic statement with set semantics: adding an existing like is a
	// no-op, and concurrent calls cannot produce duplicates.
	// Returns ErrCardNotFound if the card does not exist.
	AddLike(ctx context.Context, cardID, userID domain.ID) error

	// RemoveLike removes userID from the card's likes set. Removing a like
	// that is not present is a no-op, not an error.
	// Returns ErrCardNotFound if the card does not exist.
	RemoveLike(ctx context.Context, cardID, userID domain.ID) error

	// WithTx returns a new CardStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) CardStore
}
