package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placecards/placecards-api/internal/store"
)

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	t.Run("entity-specific not found errors match the generic class", func(t *testing.T) {
		t.Parallel()

		assert.True(t, store.IsNotFoundError(store.ErrUserNotFound))
		assert.True(t, store.IsNotFoundError(store.ErrCardNotFound))
		assert.True(t, store.IsNotFoundError(fmt.Errorf("get card: %w", store.ErrCardNotFound)))
		assert.False(t, store.IsNotFoundError(store.ErrEmailExists))
		assert.False(t, store.IsNotFoundError(errors.New("something else")))
	})

	t.Run("email exists matches the duplicate class", func(t *testing.T) {
		t.Parallel()

		assert.True(t, store.IsDuplicateError(store.ErrEmailExists))
		assert.True(t, store.IsDuplicateError(fmt.Errorf("create user: %w", store.ErrDuplicate)))
		assert.False(t, store.IsDuplicateError(store.ErrUserNotFound))
	})
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := store.NewStoreError("card", "list", "database error", cause)

	assert.Equal(t, "list operation on card failed: database error: connection reset", err.Error())
	assert.ErrorIs(t, err, cause, "Unwrap must expose the original error")

	withoutCause := store.NewStoreError("user", "update", "database error", nil)
	assert.Equal(t, "update operation on user failed: database error", withoutCause.Error())
}
