package mocks

import (
	"context"

	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/store"
)

// MockCardService implements service.CardService for testing
type MockCardService struct {
	// Custom behavior functions
	ListCardsFn   func(ctx context.Context) ([]*store.CardWithOwner, error)
	CreateCardFn  func(ctx context.Context, callerID domain.ID, name, link string) (*domain.Card, error)
	DeleteCardFn  func(ctx context.Context, callerID, cardID domain.ID) error
	LikeCardFn    func(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error)
	DislikeCardFn func(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error)

	// Default return values
	Cards        []*store.CardWithOwner
	Card         *domain.Card
	DefaultError error
}

// ListCards implements the CardService.ListCards method
func (m *MockCardService) ListCards(ctx context.Context) ([]*store.CardWithOwner, error) {
	if m.ListCardsFn != nil {
		return m.ListCardsFn(ctx)
	}
	return m.Cards, m.DefaultError
}

// CreateCard implements the CardService.CreateCard method
func (m *MockCardService) CreateCard(
	ctx context.Context,
	callerID domain.ID,
	name, link string,
) (*domain.Card, error) {
	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, callerID, name, link)
	}
	return m.Card, m.DefaultError
}

// DeleteCard implements the CardService.DeleteCard method
func (m *MockCardService) DeleteCard(ctx context.Context, callerID, cardID domain.ID) error {
	if m.DeleteCardFn != nil {
		return m.DeleteCardFn(ctx, callerID, cardID)
	}
	return m.DefaultError
}

// LikeCard implements the CardService.LikeCard method
func (m *MockCardService) LikeCard(
	ctx context.Context,
	callerID, cardID domain.ID,
) (*domain.Card, error) {
	if m.LikeCardFn != nil {
		return m.LikeCardFn(ctx, callerID, cardID)
	}
	return m.Card, m.DefaultError
}

// DislikeCard implements the CardService.DislikeCard method
func (m *MockCardService) DislikeCard(
	ctx context.Context,
	callerID, cardID domain.ID,
) (*domain.Card, error) {
	if m.DislikeCardFn != nil {
		return m.DislikeCardFn(ctx, callerID, cardID)
	}
	return m.Card, m.DefaultError
}
