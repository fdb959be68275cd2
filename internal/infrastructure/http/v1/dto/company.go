package dto

import (
	"time"

	core "fleetledger/internal/core/company"
)

// --- Request DTOs ---

// CreateCompanyRequest registers a new company.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// SetCompanyActiveRequest toggles a company's active flag.
type SetCompanyActiveRequest struct {
	Active bool `json:"active"`
}

// --- Response DTOs ---

// CompanyResponse is the response body for a company.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromCompany creates response DTO from the company record.
func FromCompany(c *core.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}
