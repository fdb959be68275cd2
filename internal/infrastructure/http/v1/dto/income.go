package dto

import (
	"time"

	"fleetledger/internal/core/id"
	"fleetledger/internal/core/types"
	"fleetledger/internal/domain/documents/income"
)

// --- Request DTOs ---

// CreateIncomeRequest is the request body for recording income.
type CreateIncomeRequest struct {
	OperationDate time.Time   `json:"operationDate" binding:"required"`
	Description   string      `json:"description"`
	UnitCount     int         `json:"unitCount"`
	UnitPrice     types.Money `json:"unitPrice"`
	TotalAmount   types.Money `json:"totalAmount"`
	IsPaid        bool        `json:"isPaid"`
	CustomerID    id.ID       `json:"customerId" binding:"required"`
	CategoryID    id.ID       `json:"categoryId" binding:"required"`
}

// ToEntity converts DTO to domain entity owned by the company.
func (r *CreateIncomeRequest) ToEntity(companyID id.ID) *income.Income {
	in := income.NewIncome(companyID, r.OperationDate, r.CustomerID, r.CategoryID)
	in.Description = r.Description
	in.UnitCount = r.UnitCount
	in.UnitPrice = r.UnitPrice
	in.TotalAmount = r.TotalAmount
	in.IsPaid = r.IsPaid
	return in
}

// UpdateIncomeRequest is the request body for updating income.
type UpdateIncomeRequest struct {
	OperationDate time.Time   `json:"operationDate" binding:"required"`
	Description   string      `json:"description"`
	UnitCount     int         `json:"unitCount"`
	UnitPrice     types.Money `json:"unitPrice"`
	TotalAmount   types.Money `json:"totalAmount"`
	IsPaid        bool        `json:"isPaid"`
	CustomerID    id.ID       `json:"customerId" binding:"required"`
	CategoryID    id.ID       `json:"categoryId" binding:"required"`
	Version       int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateIncomeRequest) ApplyTo(in *income.Income) {
	in.OperationDate = r.OperationDate
	in.Description = r.Description
	in.UnitCount = r.UnitCount
	in.UnitPrice = r.UnitPrice
	in.TotalAmount = r.TotalAmount
	in.IsPaid = r.IsPaid
	in.CustomerID = r.CustomerID
	in.CategoryID = r.CategoryID
	in.Version = r.Version
}

// --- Response DTOs ---

// IncomeResponse is the response body for an income record.
type IncomeResponse struct {
	TransactionResponse
	UnitCount   int         `json:"unitCount"`
	UnitPrice   types.Money `json:"unitPrice"`
	TotalAmount types.Money `json:"totalAmount"`
	IsPaid      bool        `json:"isPaid"`
	CustomerID  string      `json:"customerId"`
	CategoryID  string      `json:"categoryId"`
}

// FromIncome creates response DTO from domain entity.
func FromIncome(in *income.Income) *IncomeResponse {
	return &IncomeResponse{
		TransactionResponse: FromTransaction(in.Transaction),
		UnitCount:           in.UnitCount,
		UnitPrice:           in.UnitPrice,
		TotalAmount:         in.TotalAmount,
		IsPaid:              in.IsPaid,
		CustomerID:          in.CustomerID.String(),
		CategoryID:          in.CategoryID.String(),
	}
}
