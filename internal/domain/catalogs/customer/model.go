// Package customer provides the Customer catalog.
// Customers are the counterparties income is invoiced to.
package customer

import (
	"context"
	"regexp"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
)

var (
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRE = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)
)

// Customer represents a business partner invoiced for income.
type Customer struct {
	entity.Catalog

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// TaxNumber is the customer's tax identification number
	TaxNumber *string `db:"tax_number" json:"taxNumber,omitempty"`

	// Address is a free-form address line
	Address *string `db:"address" json:"address,omitempty"`
}

// NewCustomer creates a new Customer for the given company.
func NewCustomer(companyID id.ID, name string) *Customer {
	return &Customer{
		Catalog: entity.NewCatalog(companyID, name),
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	if c.Phone != nil && *c.Phone != "" && !phoneRE.MatchString(*c.Phone) {
		return apperror.NewValidation("invalid phone format").
			WithDetail("field", "phone")
	}

	return nil
}
