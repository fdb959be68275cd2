package dto

import (
	"time"

	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/employee"
)

// --- Request DTOs ---

// CreateEmployeeRequest is the request body for creating an employee.
type CreateEmployeeRequest struct {
	Name     string     `json:"name" binding:"required"`
	Position *string    `json:"position"`
	HiredAt  *time.Time `json:"hiredAt"`
}

// ToEntity converts DTO to domain entity owned by the company.
func (r *CreateEmployeeRequest) ToEntity(companyID id.ID) *employee.Employee {
	e := employee.NewEmployee(companyID, r.Name)
	e.Position = r.Position
	e.HiredAt = r.HiredAt
	return e
}

// UpdateEmployeeRequest is the request body for updating an employee.
type UpdateEmployeeRequest struct {
	Name     string     `json:"name" binding:"required"`
	Position *string    `json:"position"`
	HiredAt  *time.Time `json:"hiredAt"`
	Version  int        `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateEmployeeRequest) ApplyTo(e *employee.Employee) {
	e.Name = r.Name
	e.Position = r.Position
	e.HiredAt = r.HiredAt
	e.Version = r.Version
}

// --- Response DTOs ---

// EmployeeResponse is the response body for an employee.
type EmployeeResponse struct {
	CatalogResponse
	Position *string    `json:"position,omitempty"`
	HiredAt  *time.Time `json:"hiredAt,omitempty"`
}

// FromEmployee creates response DTO from domain entity.
func FromEmployee(e *employee.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		CatalogResponse: FromCatalog(e.Catalog),
		Position:        e.Position,
		HiredAt:         e.HiredAt,
	}
}
