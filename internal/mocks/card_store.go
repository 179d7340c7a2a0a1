package mocks

import (
	"context"
	"database/sql"

	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/store"
)

// MockCardStore implements store.CardStore for testing
type MockCardStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, card *domain.Card) error
	GetByIDFn        func(ctx context.Context, id domain.ID) (*domain.Card, error)
	ListWithOwnersFn func(ctx context.Context) ([]*store.CardWithOwner, error)
	DeleteFn         func(ctx context.Context, id domain.ID) error
	AddLikeFn        func(ctx context.Context, cardID, userID domain.ID) error
	RemoveLikeFn     func(ctx context.Context, cardID, userID domain.ID) error

	// Data for default implementation
	Cards       map[domain.ID]*domain.Card
	Owners      map[domain.ID]*domain.User
	CreateError error
}

// NewMockCardStore creates a new mock store with initialized defaults
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{
		Cards:  make(map[domain.ID]*domain.Card),
		Owners: make(map[domain.ID]*domain.User),
	}
}

// Create implements the CardStore interface
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Cards[card.ID] = card
	return nil
}

// GetByID implements the CardStore interface
func (m *MockCardStore) GetByID(ctx context.Context, id domain.ID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	card, exists := m.Cards[id]
	if !exists {
		return nil, store.ErrCardNotFound
	}
	return card, nil
}

// ListWithOwners implements the CardStore interface
func (m *MockCardStore) ListWithOwners(ctx context.Context) ([]*store.CardWithOwner, error) {
	if m.ListWithOwnersFn != nil {
		return m.ListWithOwnersFn(ctx)
	}

	cards := make([]*store.CardWithOwner, 0, len(m.Cards))
	for _, card := range m.Cards {
		owner := m.Owners[card.OwnerID]
		if owner == nil {
			owner = &domain.User{ID: card.OwnerID}
		}
		cards = append(cards, &store.CardWithOwner{Card: card, Owner: owner})
	}
	return cards, nil
}

// Delete implements the CardStore interface
func (m *MockCardStore) Delete(ctx context.Context, id domain.ID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Cards[id]; !exists {
		return store.ErrCardNotFound
	}
	delete(m.Cards, id)
	return nil
}

// AddLike implements the CardStore interface. Mirrors the idempotent
// set-add behavior of the real store.
func (m *MockCardStore) AddLike(ctx context.Context, cardID, userID domain.ID) error {
	if m.AddLikeFn != nil {
		return m.AddLikeFn(ctx, cardID, userID)
	}

	card, exists := m.Cards[cardID]
	if !exists {
		return store.ErrCardNotFound
	}
	if !card.LikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return nil
}

// RemoveLike implements the CardStore interface
func (m *MockCardStore) RemoveLike(ctx context.Context, cardID, userID domain.ID) error {
	if m.RemoveLikeFn != nil {
		return m.RemoveLikeFn(ctx, cardID, userID)
	}

	card, exists := m.Cards[cardID]
	if !exists {
		return store.ErrCardNotFound
	}
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	return nil
}

// WithTx implements the CardStore interface for transaction support
func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	// For mock purposes, just return the same mock
	return m
}
