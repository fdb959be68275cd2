package dto

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/customer"
)

// --- Request DTOs ---

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	TaxNumber *string `json:"taxNumber"`
	Address   *string `json:"address"`
}

// ToEntity converts DTO to domain entity owned by the company.
func (r *CreateCustomerRequest) ToEntity(companyID id.ID) *customer.Customer {
	c := customer.NewCustomer(companyID, r.Name)
	c.Phone = r.Phone
	c.Email = r.Email
	c.TaxNumber = r.TaxNumber
	c.Address = r.Address
	return c
}

// UpdateCustomerRequest is the request body for updating a customer.
type UpdateCustomerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	TaxNumber *string `json:"taxNumber"`
	Address   *string `json:"address"`
	Version   int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	c.Name = r.Name
	c.Phone = r.Phone
	c.Email = r.Email
	c.TaxNumber = r.TaxNumber
	c.Address = r.Address
	c.Version = r.Version
}

// --- Response DTOs ---

// CustomerResponse is the response body for a customer.
type CustomerResponse struct {
	CatalogResponse
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	TaxNumber *string `json:"taxNumber,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// FromCustomer creates response DTO from domain entity.
func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Phone:           c.Phone,
		Email:           c.Email,
		TaxNumber:       c.TaxNumber,
		Address:         c.Address,
	}
}
