// Package income provides the Income transaction record.
// Income rows are invoiced units of work for a customer; the unpaid
// portion is the customer's receivable.
package income

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/types"
)

// Income represents an invoiced income transaction.
type Income struct {
	entity.Transaction

	// UnitCount is the number of invoiced units (trips, hours, items)
	UnitCount int `db:"unit_count" json:"unitCount"`

	// UnitPrice is the price per unit
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// TotalAmount is the invoiced total
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`

	// IsPaid marks the invoice as settled
	IsPaid bool `db:"is_paid" json:"isPaid"`

	// CustomerID references the invoiced customer
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// CategoryID classifies the income
	CategoryID id.ID `db:"category_id" json:"categoryId"`
}

// NewIncome creates a new Income record.
func NewIncome(companyID id.ID, operationDate time.Time, customerID, categoryID id.ID) *Income {
	return &Income{
		Transaction: entity.NewTransaction(companyID, operationDate),
		CustomerID:  customerID,
		CategoryID:  categoryID,
	}
}

// RecalculateTotal derives TotalAmount from UnitCount and UnitPrice
// when the caller did not supply an explicit total.
func (i *Income) RecalculateTotal() {
	if i.TotalAmount.IsZero() && i.UnitCount > 0 {
		i.TotalAmount = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.UnitCount)))
	}
}

// Validate implements entity.Validatable.
func (i *Income) Validate(ctx context.Context) error {
	if err := i.Transaction.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(i.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}
	if id.IsNil(i.CategoryID) {
		return apperror.NewValidation("category is required").
			WithDetail("field", "categoryId")
	}
	if i.UnitCount < 0 {
		return apperror.NewValidation("unit count cannot be negative").
			WithDetail("field", "unitCount")
	}
	if i.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}
	if i.TotalAmount.IsNegative() {
		return apperror.NewValidation("total amount cannot be negative").
			WithDetail("field", "totalAmount")
	}

	return nil
}
