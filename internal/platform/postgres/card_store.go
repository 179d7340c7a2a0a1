package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
//
// Likes live in a card_likes join table with a composite primary key, so
// the add/remove operations are single atomic statements with set
// semantics; concurrent likes on the same card cannot race into duplicates.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cards (id, name, link, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		card.ID, card.Name, card.Link, card.OwnerID, card.CreatedAt, card.UpdatedAt)
	if err != nil {
		return mapError("card", "create", err)
	}

	s.logger.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", card.OwnerID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id domain.ID) (*domain.Card, error) {
	query := `
		SELECT id, name, link, owner_id, created_at, updated_at
		FROM cards WHERE id = $1`

	var card domain.Card
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.Name, &card.Link, &card.OwnerID,
		&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrCardNotFound
		}
		return nil, mapError("card", "get", err)
	}

	likes, err := s.likesFor(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	card.Likes = likes

	return &card, nil
}

// ListWithOwners implements store.CardStore.ListWithOwners
func (s *PostgresCardStore) ListWithOwners(ctx context.Context) ([]*store.CardWithOwner, error) {
	query := `
		SELECT c.id, c.name, c.link, c.owner_id, c.created_at, c.updated_at,
		       u.id, u.name, u.about, u.avatar, u.email, u.created_at, u.updated_at
		FROM cards c
		JOIN users u ON u.id = c.owner_id
		ORDER BY c.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError("card", "list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cards := []*store.CardWithOwner{}
	byID := map[domain.ID]*domain.Card{}
	for rows.Next() {
		var card domain.Card
		var owner domain.User
		err := rows.Scan(
			&card.ID, &card.Name, &card.Link, &card.OwnerID,
			&card.CreatedAt, &card.UpdatedAt,
			&owner.ID, &owner.Name, &owner.About, &owner.Avatar,
			&owner.Email, &owner.CreatedAt, &owner.UpdatedAt)
		if err != nil {
			return nil, mapError("card", "list", err)
		}
		card.Likes = []domain.ID{}
		byID[card.ID] = &card
		cards = append(cards, &store.CardWithOwner{Card: &card, Owner: &owner})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("card", "list", err)
	}

	if err := s.fillLikes(ctx, byID); err != nil {
		return nil, err
	}

	return cards, nil
}

// Delete implements store.CardStore.Delete. The card_likes rows go with the
// card via the schema's ON DELETE CASCADE.
func (s *PostgresCardStore) Delete(ctx context.Context, id domain.ID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return mapError("card", "delete", err)
	}

	if err := checkRowsAffected(result, store.ErrCardNotFound); err != nil {
		return err
	}

	s.logger.Debug("card deleted", slog.String("card_id", id.String()))
	return nil
}

// AddLike implements store.CardStore.AddLike. ON CONFLICT DO NOTHING gives
// the idempotent set-add in one statement.
func (s *PostgresCardStore) AddLike(ctx context.Context, cardID, userID domain.ID) error {
	query := `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (card_id, user_id) DO NOTHING`

	_, err := s.db.ExecContext(ctx, query, cardID, userID)
	if err != nil {
		// A missing card surfaces as a foreign key violation on card_id.
		if isForeignKeyViolation(err) {
			return store.ErrCardNotFound
		}
		return mapError("card", "add_like", err)
	}

	return nil
}

// RemoveLike implements store.CardStore.RemoveLike. Zero deleted rows is the
// no-op case, not an error; the card itself must still exist.
func (s *PostgresCardStore) RemoveLike(ctx context.Context, cardID, userID domain.ID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`, cardID, userID)
	if err != nil {
		return mapError("card", "remove_like", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// Nothing deleted: distinguish "like was not set" from "card missing".
	var exists bool
	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM cards WHERE id = $1)`, cardID).Scan(&exists)
	if err != nil {
		return mapError("card", "remove_like", err)
	}
	if !exists {
		return store.ErrCardNotFound
	}

	return nil
}

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}

// likesFor loads the likes set of a single card.
func (s *PostgresCardStore) likesFor(ctx context.Context, cardID domain.ID) ([]domain.ID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id FROM card_likes WHERE card_id = $1 ORDER BY liked_at`, cardID)
	if err != nil {
		return nil, mapError("card", "get_likes", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	likes := []domain.ID{}
	for rows.Next() {
		var userID domain.ID
		if err := rows.Scan(&userID); err != nil {
			return nil, mapError("card", "get_likes", err)
		}
		likes = append(likes, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("card", "get_likes", err)
	}

	return likes, nil
}

// fillLikes populates the likes sets of all cards in the map with one query.
func (s *PostgresCardStore) fillLikes(ctx context.Context, cards map[domain.ID]*domain.Card) error {
	if len(cards) == 0 {
		return nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT card_id, user_id FROM card_likes ORDER BY liked_at`)
	if err != nil {
		return mapError("card", "get_likes", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	for rows.Next() {
		var cardID, userID domain.ID
		if err := rows.Scan(&cardID, &userID); err != nil {
			return mapError("card", "get_likes", err)
		}
		if card, ok := cards[cardID]; ok {
			card.Likes = append(card.Likes, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return mapError("card", "get_likes", err)
	}

	return nil
}
