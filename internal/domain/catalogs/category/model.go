// Package category provides the Category catalog used to classify
// income and expense transactions.
package category

import (
	"context"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
)

// Kind defines which transaction type a category classifies.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// FallbackName labels expenses whose category no longer resolves
// in the expense breakdown report.
const FallbackName = "Other"

// Category classifies income and expense transactions.
type Category struct {
	entity.Catalog

	// Kind is "income" or "expense"
	Kind Kind `db:"kind" json:"kind"`
}

// NewCategory creates a new Category for the given company.
func NewCategory(companyID id.ID, name string, kind Kind) *Category {
	return &Category{
		Catalog: entity.NewCatalog(companyID, name),
		Kind:    kind,
	}
}

// Validate implements entity.Validatable.
func (c *Category) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	switch c.Kind {
	case KindIncome, KindExpense:
	default:
		return apperror.NewValidation("invalid category kind").
			WithDetail("field", "kind").
			WithDetail("value", string(c.Kind))
	}

	return nil
}
