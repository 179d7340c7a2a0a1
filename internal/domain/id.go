package domain

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// IDLength is the number of hex characters in an entity identifier.
const IDLength = 24

// idRawLength is the number of raw bytes behind an ID (4 timestamp + 8 random).
const idRawLength = 12

// ID is the externally visible identifier of a user or card: a lowercase
// 24-character hex string. The only ways to obtain one are NewID and ParseID,
// so two IDs for the same entity always compare equal with ==.
type ID string

// NewID generates a new identifier from the current unix time (first 4 bytes,
// big-endian) followed by 8 cryptographically random bytes. The timestamp
// prefix keeps IDs roughly sortable by creation time.
func NewID() ID {
	b := make([]byte, idRawLength)
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))

	if _, err := rand.Read(b[4:]); err != nil {
		// crypto/rand failing is unrecoverable for ID generation.
		// ALLOW-PANIC: no caller can meaningfully proceed without entropy.
		panic("domain: crypto/rand unavailable: " + err.Error())
	}

	return ID(hex.EncodeToString(b))
}

// ParseID validates and normalizes an identifier received from a client.
// Returns ErrInvalidID if the input is not exactly 24 hex characters.
func ParseID(s string) (ID, error) {
	if len(s) != IDLength {
		return "", ErrInvalidID
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != idRawLength {
		return "", ErrInvalidID
	}
	// Re-encode so uppercase input normalizes to the canonical lowercase form.
	return ID(hex.EncodeToString(raw)), nil
}

// String returns the hex form of the ID.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == ""
}
