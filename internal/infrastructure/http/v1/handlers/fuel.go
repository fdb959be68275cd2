package handlers

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/documents/fuel"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// FuelHTTPHandler is the concrete document handler for fuel purchases.
type FuelHTTPHandler = DocumentHandler[
	*fuel.Purchase,
	dto.CreateFuelPurchaseRequest,
	dto.UpdateFuelPurchaseRequest,
]

// NewFuelHandler wires the fuel service into the generic document
// handler.
func NewFuelHandler(base *BaseHandler, service *fuel.Service) *FuelHTTPHandler {
	config := DocumentHandlerConfig[
		*fuel.Purchase,
		dto.CreateFuelPurchaseRequest,
		dto.UpdateFuelPurchaseRequest,
	]{
		Service:    service,
		EntityName: "fuel_purchase",

		MapCreateDTO: func(req dto.CreateFuelPurchaseRequest, companyID id.ID) *fuel.Purchase {
			return req.ToEntity(companyID)
		},

		MapUpdateDTO: func(req dto.UpdateFuelPurchaseRequest, existing *fuel.Purchase) *fuel.Purchase {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *fuel.Purchase) any {
			return dto.FromFuelPurchase(entity)
		},
	}

	return NewDocumentHandler(base, config)
}
