package dto

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/vehicle"
)

// --- Request DTOs ---

// CreateVehicleRequest is the request body for creating a vehicle.
type CreateVehicleRequest struct {
	Name        string  `json:"name" binding:"required"`
	PlateNumber string  `json:"plateNumber" binding:"required"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
}

// ToEntity converts DTO to domain entity owned by the company.
func (r *CreateVehicleRequest) ToEntity(companyID id.ID) *vehicle.Vehicle {
	v := vehicle.NewVehicle(companyID, r.Name, r.PlateNumber)
	v.Model = r.Model
	v.Year = r.Year
	return v
}

// UpdateVehicleRequest is the request body for updating a vehicle.
type UpdateVehicleRequest struct {
	Name        string  `json:"name" binding:"required"`
	PlateNumber string  `json:"plateNumber" binding:"required"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
	Version     int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateVehicleRequest) ApplyTo(v *vehicle.Vehicle) {
	v.Name = r.Name
	v.PlateNumber = r.PlateNumber
	v.Model = r.Model
	v.Year = r.Year
	v.Version = r.Version
}

// --- Response DTOs ---

// VehicleResponse is the response body for a vehicle.
type VehicleResponse struct {
	CatalogResponse
	PlateNumber string  `json:"plateNumber"`
	Model       *string `json:"model,omitempty"`
	Year        *int    `json:"year,omitempty"`
}

// FromVehicle creates response DTO from domain entity.
func FromVehicle(v *vehicle.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		CatalogResponse: FromCatalog(v.Catalog),
		PlateNumber:     v.PlateNumber,
		Model:           v.Model,
		Year:            v.Year,
	}
}
