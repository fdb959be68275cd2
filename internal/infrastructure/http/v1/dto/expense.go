package dto

import (
	"time"

	"fleetledger/internal/core/id"
	"fleetledger/internal/core/types"
	"fleetledger/internal/domain/documents/expense"
)

// --- Request DTOs ---

// CreateExpenseRequest is the request body for recording an expense.
type CreateExpenseRequest struct {
	OperationDate time.Time            `json:"operationDate" binding:"required"`
	Description   string               `json:"description"`
	Amount        types.Money          `json:"amount"`
	CategoryID    id.ID                `json:"categoryId" binding:"required"`
	RelatedModel  expense.RelatedModel `json:"relatedModel" binding:"required"`
	RelatedToID   *id.ID               `json:"relatedToId"`
}

// ToEntity converts DTO to domain entity owned by the company.
func (r *CreateExpenseRequest) ToEntity(companyID id.ID) *expense.Expense {
	e := expense.NewExpense(companyID, r.OperationDate, r.CategoryID, r.Amount)
	e.Description = r.Description
	e.RelatedModel = r.RelatedModel
	e.RelatedToID = r.RelatedToID
	return e
}

// UpdateExpenseRequest is the request body for updating an expense.
type UpdateExpenseRequest struct {
	OperationDate time.Time            `json:"operationDate" binding:"required"`
	Description   string               `json:"description"`
	Amount        types.Money          `json:"amount"`
	CategoryID    id.ID                `json:"categoryId" binding:"required"`
	RelatedModel  expense.RelatedModel `json:"relatedModel" binding:"required"`
	RelatedToID   *id.ID               `json:"relatedToId"`
	Version       int                  `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateExpenseRequest) ApplyTo(e *expense.Expense) {
	e.OperationDate = r.OperationDate
	e.Description = r.Description
	e.Amount = r.Amount
	e.CategoryID = r.CategoryID
	e.RelatedModel = r.RelatedModel
	e.RelatedToID = r.RelatedToID
	e.Version = r.Version
}

// --- Response DTOs ---

// ExpenseResponse is the response body for an expense record.
type ExpenseResponse struct {
	TransactionResponse
	Amount       types.Money          `json:"amount"`
	CategoryID   string               `json:"categoryId"`
	RelatedModel expense.RelatedModel `json:"relatedModel"`
	RelatedToID  *string              `json:"relatedToId,omitempty"`
}

// FromExpense creates response DTO from domain entity.
func FromExpense(e *expense.Expense) *ExpenseResponse {
	var relatedTo *string
	if e.RelatedToID != nil {
		s := e.RelatedToID.String()
		relatedTo = &s
	}
	return &ExpenseResponse{
		TransactionResponse: FromTransaction(e.Transaction),
		Amount:              e.Amount,
		CategoryID:          e.CategoryID.String(),
		RelatedModel:        e.RelatedModel,
		RelatedToID:         relatedTo,
	}
}
