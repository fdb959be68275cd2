// Package entity provides base types for all domain entities.
package entity

import (
	"context"
	"time"

	"fleetledger/internal/core/id"
)

// Validatable is implemented by all entities that enforce invariants.
type Validatable interface {
	Validate(ctx context.Context) error
}

// Base carries the fields shared by every persisted entity.
// CompanyID is the tenant boundary: every row is owned by exactly one
// company and every query filters on it.
type Base struct {
	ID        id.ID     `db:"id" json:"id"`
	CompanyID id.ID     `db:"company_id" json:"companyId"`

	// Version supports optimistic locking
	Version int `db:"version" json:"version"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBase creates a Base with generated ID and timestamps.
func NewBase(companyID id.ID) Base {
	now := time.Now().UTC()
	return Base{
		ID:        id.New(),
		CompanyID: companyID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
