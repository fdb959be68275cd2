// Package dto provides data transfer objects for the HTTP API.
package dto

import (
	"time"

	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
)

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Base DTOs ---

// BaseResponse contains common response fields.
type BaseResponse struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromBase creates BaseResponse from entity.Base.
func FromBase(b entity.Base) BaseResponse {
	return BaseResponse{
		ID:        b.ID.String(),
		Version:   b.Version,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// CatalogResponse contains common catalog fields.
type CatalogResponse struct {
	BaseResponse
	Name         string `json:"name"`
	DeletionMark bool   `json:"deletionMark"`
}

// FromCatalog creates CatalogResponse from entity.Catalog.
func FromCatalog(c entity.Catalog) CatalogResponse {
	return CatalogResponse{
		BaseResponse: FromBase(c.Base),
		Name:         c.Name,
		DeletionMark: c.DeletionMark,
	}
}

// TransactionResponse contains common transaction fields.
type TransactionResponse struct {
	BaseResponse
	OperationDate time.Time `json:"operationDate"`
	Description   string    `json:"description,omitempty"`
}

// FromTransaction creates TransactionResponse from entity.Transaction.
func FromTransaction(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		BaseResponse:  FromBase(t.Base),
		OperationDate: t.OperationDate,
		Description:   t.Description,
	}
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Deletion ---

// SetDeletionMarkRequest toggles the soft-delete flag.
type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}
