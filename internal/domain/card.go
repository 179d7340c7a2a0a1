package domain

import (
	"errors"
	"fmt"
	"time"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardOwnerEmpty is returned when a card's owner ID is empty.
	ErrCardOwnerEmpty = errors.New("card owner ID cannot be empty")

	// ErrCardNameLength is returned when a card name is outside [2,30].
	ErrCardNameLength = errors.New("card name must be between 2 and 30 characters")

	// ErrCardLinkInvalid is returned when a card link is not a valid URL.
	ErrCardLinkInvalid = fmt.Errorf("card link must be a valid URL: %w", ErrInvalidURL)
)

// Card represents a place card created by a user. OwnerID is set once at
// creation and never changes; Likes is a set of user IDs with no duplicates.
type Card struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	OwnerID   ID        `json:"owner"`
	Likes     []ID      `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard creates a Card owned by the given user. The owner always comes
// from the authenticated caller, never from client input.
func NewCard(ownerID ID, name, link string) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:        NewID(),
		Name:      name,
		Link:      link,
		OwnerID:   ownerID,
		Likes:     []ID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID.IsZero() {
		return ErrCardIDEmpty
	}

	if c.OwnerID.IsZero() {
		return ErrCardOwnerEmpty
	}

	if !displayFieldInBounds(c.Name) {
		return ErrCardNameLength
	}

	if !ValidURL(c.Link) {
		return ErrCardLinkInvalid
	}

	return nil
}

// LikedBy reports whether the given user is in the card's likes set.
func (c *Card) LikedBy(userID ID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// IsOwnedBy reports whether the given user created the card. Both sides are
// canonical lowercase hex IDs, so plain equality is the ownership check.
func (c *Card) IsOwnedBy(userID ID) bool {
	return c.OwnerID == userID
}
