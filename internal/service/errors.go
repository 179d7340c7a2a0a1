// Package service provides application-level services for managing users and cards.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes in one place.
var (
	// ErrNotCardOwner indicates a card is owned by a different user than the
	// one making the request. Only the owner may delete a card.
	// API layer maps this to HTTP 403 Forbidden.
	ErrNotCardOwner = errors.New("card is owned by another user")
)
