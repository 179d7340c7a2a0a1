package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/store"
)

// CardService provides card-related operations: listing, creation,
// owner-only deletion, and the idempotent like/dislike set operations.
type CardService interface {
	// ListCards returns all cards, newest first, with owner profiles resolved.
	ListCards(ctx context.Context) ([]*store.CardWithOwner, error)

	// CreateCard creates a card owned by the caller. The owner is always the
	// authenticated caller, never client input.
	CreateCard(ctx context.Context, callerID domain.ID, name, link string) (*domain.Card, error)

	// DeleteCard removes a card. Returns store.ErrCardNotFound if the card
	// does not exist and ErrNotCardOwner if the caller does not own it; a
	// failed ownership check leaves the card untouched.
	DeleteCard(ctx context.Context, callerID domain.ID, cardID domain.ID) error

	// LikeCard adds the caller to the card's likes set and returns the
	// updated card. Liking an already-liked card is a no-op.
	LikeCard(ctx context.Context, callerID domain.ID, cardID domain.ID) (*domain.Card, error)

	// DislikeCard removes the caller from the card's likes set and returns
	// the updated card. Disliking a card the caller never liked is a no-op.
	DislikeCard(ctx context.Context, callerID domain.ID, cardID domain.ID) (*domain.Card, error)
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	cardStore store.CardStore
	logger    *slog.Logger

	// runTx executes a function within a database transaction. Injected so
	// tests can run the function directly against a mock store.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewCardService creates a new CardService backed by the given database
// handle and card store.
func NewCardService(db *sql.DB, cardStore store.CardStore, logger *slog.Logger) CardService {
	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		cardStore: cardStore,
		logger:    logger.With(slog.String("component", "card_service")),
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}
}

// ListCards implements CardService.ListCards
func (s *cardServiceImpl) ListCards(ctx context.Context) ([]*store.CardWithOwner, error) {
	cards, err := s.cardStore.ListWithOwners(ctx)
	if err != nil {
		s.logger.Error("failed to list cards", "error", err)
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// CreateCard implements CardService.CreateCard
func (s *cardServiceImpl) CreateCard(
	ctx context.Context,
	callerID domain.ID,
	name, link string,
) (*domain.Card, error) {
	card, err := domain.NewCard(callerID, name, link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		s.logger.Error("failed to save card", "error", err, "owner_id", callerID)
		return nil, err
	}

	s.logger.Info("card created",
		"card_id", card.ID,
		"owner_id", callerID)

	return card, nil
}

// DeleteCard implements CardService.DeleteCard. The ownership check and the
// delete run in one transaction; a non-owner attempt never removes the card.
func (s *cardServiceImpl) DeleteCard(ctx context.Context, callerID, cardID domain.ID) error {
	return s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		cardStore := s.cardStore.WithTx(tx)

		card, err := cardStore.GetByID(ctx, cardID)
		if err != nil {
			if errors.Is(err, store.ErrCardNotFound) {
				s.logger.Debug("attempted to delete missing card", "card_id", cardID)
			} else {
				s.logger.Error("failed to retrieve card for delete", "error", err, "card_id", cardID)
			}
			return err
		}

		if !card.IsOwnedBy(callerID) {
			s.logger.Warn("non-owner delete attempt",
				"card_id", cardID,
				"owner_id", card.OwnerID,
				"caller_id", callerID)
			return ErrNotCardOwner
		}

		if err := cardStore.Delete(ctx, cardID); err != nil {
			s.logger.Error("failed to delete card", "error", err, "card_id", cardID)
			return err
		}

		s.logger.Info("card deleted", "card_id", cardID, "owner_id", callerID)

		return nil
	})
}

// LikeCard implements CardService.LikeCard
func (s *cardServiceImpl) LikeCard(
	ctx context.Context,
	callerID, cardID domain.ID,
) (*domain.Card, error) {
	if err := s.cardStore.AddLike(ctx, cardID, callerID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			s.logger.Debug("attempted to like missing card", "card_id", cardID)
		} else {
			s.logger.Error("failed to add like", "error", err, "card_id", cardID)
		}
		return nil, err
	}

	return s.cardStore.GetByID(ctx, cardID)
}

// DislikeCard implements CardService.DislikeCard
func (s *cardServiceImpl) DislikeCard(
	ctx context.Context,
	callerID, cardID domain.ID,
) (*domain.Card, error) {
	if err := s.cardStore.RemoveLike(ctx, cardID, callerID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			s.logger.Debug("attempted to dislike missing card", "card_id", cardID)
		} else {
			s.logger.Error("failed to remove like", "error", err, "card_id", cardID)
		}
		return nil, err
	}

	return s.cardStore.GetByID(ctx, cardID)
}
