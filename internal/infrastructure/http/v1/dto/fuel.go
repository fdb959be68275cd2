package dto

import (
	"time"

	"fleetledger/internal/core/id"
	"fleetledger/internal/core/types"
	"fleetledger/internal/domain/documents/fuel"
)

// --- Request DTOs ---

// CreateFuelPurchaseRequest is the request body for recording a fuel purchase.
type CreateFuelPurchaseRequest struct {
	OperationDate time.Time   `json:"operationDate" binding:"required"`
	Description   string      `json:"description"`
	TotalPrice    types.Money `json:"totalPrice"`
	VehicleID     id.ID       `json:"vehicleId" binding:"required"`
}

// ToEntity converts DTO to domain entity owned by the company.
func (r *CreateFuelPurchaseRequest) ToEntity(companyID id.ID) *fuel.Purchase {
	p := fuel.NewPurchase(companyID, r.OperationDate, r.VehicleID, r.TotalPrice)
	p.Description = r.Description
	return p
}

// UpdateFuelPurchaseRequest is the request body for updating a fuel purchase.
type UpdateFuelPurchaseRequest struct {
	OperationDate time.Time   `json:"operationDate" binding:"required"`
	Description   string      `json:"description"`
	TotalPrice    types.Money `json:"totalPrice"`
	VehicleID     id.ID       `json:"vehicleId" binding:"required"`
	Version       int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateFuelPurchaseRequest) ApplyTo(p *fuel.Purchase) {
	p.OperationDate = r.OperationDate
	p.Description = r.Description
	p.TotalPrice = r.TotalPrice
	p.VehicleID = r.VehicleID
	p.Version = r.Version
}

// --- Response DTOs ---

// FuelPurchaseResponse is the response body for a fuel purchase record.
type FuelPurchaseResponse struct {
	TransactionResponse
	TotalPrice types.Money `json:"totalPrice"`
	VehicleID  string      `json:"vehicleId"`
}

// FromFuelPurchase creates response DTO from domain entity.
func FromFuelPurchase(p *fuel.Purchase) *FuelPurchaseResponse {
	return &FuelPurchaseResponse{
		TransactionResponse: FromTransaction(p.Transaction),
		TotalPrice:          p.TotalPrice,
		VehicleID:           p.VehicleID.String(),
	}
}
