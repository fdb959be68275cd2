// Package id generates the identifiers used by every entity.
package id

import (
	"github.com/google/uuid"
)

// ID aliases uuid.UUID so repositories and handlers share one type.
type ID = uuid.UUID

// New returns a UUIDv7. The embedded timestamp keeps ids roughly
// insertion-ordered, which keeps PostgreSQL B-tree pages warm.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does; fall back to V4
		return uuid.New()
	}
	return id
}

// Parse validates and converts a string id.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse panics on a malformed id. For fixtures only.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero id.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether id is the zero id.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
