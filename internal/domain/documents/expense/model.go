// Package expense provides the Expense transaction record.
package expense

import (
	"context"
	"time"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/types"
)

// RelatedModel names the kind of entity an expense is attributed to.
type RelatedModel string

const (
	RelatedVehicle  RelatedModel = "vehicle"
	RelatedEmployee RelatedModel = "employee"
	RelatedOther    RelatedModel = "other"
)

// Valid reports whether the related model is a known kind.
func (m RelatedModel) Valid() bool {
	switch m {
	case RelatedVehicle, RelatedEmployee, RelatedOther:
		return true
	}
	return false
}

// Expense represents a company expense transaction.
type Expense struct {
	entity.Transaction

	// Amount is the spent total
	Amount types.Money `db:"amount" json:"amount"`

	// CategoryID classifies the expense
	CategoryID id.ID `db:"category_id" json:"categoryId"`

	// RelatedModel names what the expense is attributed to
	RelatedModel RelatedModel `db:"related_model" json:"relatedModel"`

	// RelatedToID references the attributed vehicle or employee.
	// Nil when RelatedModel is "other".
	RelatedToID *id.ID `db:"related_to_id" json:"relatedToId,omitempty"`
}

// NewExpense creates a new Expense record.
func NewExpense(companyID id.ID, operationDate time.Time, categoryID id.ID, amount types.Money) *Expense {
	return &Expense{
		Transaction:  entity.NewTransaction(companyID, operationDate),
		Amount:       amount,
		CategoryID:   categoryID,
		RelatedModel: RelatedOther,
	}
}

// Validate implements entity.Validatable.
func (e *Expense) Validate(ctx context.Context) error {
	if err := e.Transaction.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(e.CategoryID) {
		return apperror.NewValidation("category is required").
			WithDetail("field", "categoryId")
	}
	if e.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}
	if !e.RelatedModel.Valid() {
		return apperror.NewValidation("unknown related model").
			WithDetail("field", "relatedModel").
			WithDetail("value", string(e.RelatedModel))
	}
	if e.RelatedModel != RelatedOther && (e.RelatedToID == nil || id.IsNil(*e.RelatedToID)) {
		return apperror.NewValidation("related entity is required").
			WithDetail("field", "relatedToId").
			WithDetail("relatedModel", string(e.RelatedModel))
	}
	if e.RelatedModel == RelatedOther && e.RelatedToID != nil {
		return apperror.NewValidation("related entity must be empty for model \"other\"").
			WithDetail("field", "relatedToId")
	}

	return nil
}
