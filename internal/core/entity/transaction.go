package entity

import (
	"context"
	"time"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
)

// Transaction is the base type for transactional records: income,
// expense and fuel entries. OperationDate is the business-effective
// date of the transaction, distinct from CreatedAt.
type Transaction struct {
	Base

	// OperationDate is the business date used by all reporting windows
	OperationDate time.Time `db:"operation_date" json:"operationDate"`

	// Description is an optional user note
	Description string `db:"description" json:"description,omitempty"`
}

// NewTransaction creates a Transaction owned by the given company.
func NewTransaction(companyID id.ID, operationDate time.Time) Transaction {
	return Transaction{
		Base:          NewBase(companyID),
		OperationDate: operationDate,
	}
}

// Validate implements Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if id.IsNil(t.CompanyID) {
		return apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}
	if t.OperationDate.IsZero() {
		return apperror.NewValidation("operation date is required").
			WithDetail("field", "operationDate")
	}
	return nil
}
