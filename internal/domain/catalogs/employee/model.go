// Package employee provides the Employee catalog.
package employee

import (
	"context"
	"time"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
)

// Employee represents a company employee. The catalog Name field holds
// the full name used as the display field in reports.
type Employee struct {
	entity.Catalog

	// Position is the job title
	Position *string `db:"position" json:"position,omitempty"`

	// HiredAt is the employment start date
	HiredAt *time.Time `db:"hired_at" json:"hiredAt,omitempty"`
}

// NewEmployee creates a new Employee for the given company.
func NewEmployee(companyID id.ID, fullName string) *Employee {
	return &Employee{
		Catalog: entity.NewCatalog(companyID, fullName),
	}
}

// Validate implements entity.Validatable.
func (e *Employee) Validate(ctx context.Context) error {
	if err := e.Catalog.Validate(ctx); err != nil {
		return err
	}

	if e.HiredAt != nil && e.HiredAt.After(time.Now()) {
		return apperror.NewValidation("hire date cannot be in the future").
			WithDetail("field", "hiredAt")
	}

	return nil
}
