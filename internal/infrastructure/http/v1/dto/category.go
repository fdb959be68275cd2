package dto

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/category"
)

// --- Request DTOs ---

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name string        `json:"name" binding:"required"`
	Kind category.Kind `json:"kind" binding:"required"`
}

// ToEntity converts DTO to domain entity owned by the company.
func (r *CreateCategoryRequest) ToEntity(companyID id.ID) *category.Category {
	return category.NewCategory(companyID, r.Name, r.Kind)
}

// UpdateCategoryRequest is the request body for updating a category.
type UpdateCategoryRequest struct {
	Name    string        `json:"name" binding:"required"`
	Kind    category.Kind `json:"kind" binding:"required"`
	Version int           `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCategoryRequest) ApplyTo(c *category.Category) {
	c.Name = r.Name
	c.Kind = r.Kind
	c.Version = r.Version
}

// --- Response DTOs ---

// CategoryResponse is the response body for a category.
type CategoryResponse struct {
	CatalogResponse
	Kind category.Kind `json:"kind"`
}

// FromCategory creates response DTO from domain entity.
func FromCategory(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Kind:            c.Kind,
	}
}
