// Package company defines the tenant boundary of the platform.
// Every transactional record and every aggregation is scoped to exactly
// one company; company id travels through context from the HTTP layer
// and is passed explicitly into every domain service call.
package company

import (
	"context"
	"errors"
	"time"

	"fleetledger/internal/core/id"
)

// Errors for company resolution.
var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyNotActive = errors.New("company is not active")
)

// Company is the tenant record used by the scope middleware.
type Company struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Registry resolves companies for the scope middleware.
type Registry interface {
	// GetByID returns the company or ErrCompanyNotFound.
	GetByID(ctx context.Context, companyID id.ID) (*Company, error)
}

type ctxKey struct{}

// WithCompany stores the resolved company in context.
func WithCompany(ctx context.Context, c *Company) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext retrieves the resolved company from context, or nil.
func FromContext(ctx context.Context) *Company {
	c, _ := ctx.Value(ctxKey{}).(*Company)
	return c
}

// IDFromContext returns the resolved company id or id.Nil().
func IDFromContext(ctx context.Context) id.ID {
	if c := FromContext(ctx); c != nil {
		return c.ID
	}
	return id.Nil()
}
