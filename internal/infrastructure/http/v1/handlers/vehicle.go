package handlers

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/vehicle"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// VehicleHTTPHandler is the concrete catalog handler for vehicles.
type VehicleHTTPHandler = CatalogHandler[
	*vehicle.Vehicle,
	dto.CreateVehicleRequest,
	dto.UpdateVehicleRequest,
]

// NewVehicleHandler wires the vehicle service into the generic catalog
// handler. The vehicle service is passed whole so plate uniqueness
// checks on Create/Update stay in force.
func NewVehicleHandler(base *BaseHandler, service *vehicle.Service) *VehicleHTTPHandler {
	config := CatalogHandlerConfig[
		*vehicle.Vehicle,
		dto.CreateVehicleRequest,
		dto.UpdateVehicleRequest,
	]{
		Service:    service,
		EntityName: "vehicle",

		MapCreateDTO: func(req dto.CreateVehicleRequest, companyID id.ID) *vehicle.Vehicle {
			return req.ToEntity(companyID)
		},

		MapUpdateDTO: func(req dto.UpdateVehicleRequest, existing *vehicle.Vehicle) *vehicle.Vehicle {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *vehicle.Vehicle) any {
			return dto.FromVehicle(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
