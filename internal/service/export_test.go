package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/placecards/placecards-api/internal/store"
)

// NewTestCardService builds the service with a pass-through transaction
// runner so the mock store sees every call directly.
func NewTestCardService(cardStore store.CardStore) CardService {
	return &cardServiceImpl{
		cardStore: cardStore,
		logger:    slog.Default(),
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return fn(ctx, (*sql.Tx)(nil))
		},
	}
}
