package entity

import (
	"context"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
)

// Catalog is the base type for reference data: customers, vehicles,
// employees, categories. Reference entities are soft-deletable.
type Catalog struct {
	Base

	// Name is the display name
	Name string `db:"name" json:"name"`

	// DeletionMark indicates soft deletion
	DeletionMark bool `db:"deletion_mark" json:"deletionMark"`
}

// NewCatalog creates a new Catalog owned by the given company.
func NewCatalog(companyID id.ID, name string) Catalog {
	return Catalog{
		Base: NewBase(companyID),
		Name: name,
	}
}

// Validate implements Validatable.
func (c *Catalog) Validate(ctx context.Context) error {
	if id.IsNil(c.CompanyID) {
		return apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
