package handlers

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/customer"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// CustomerHTTPHandler is the concrete catalog handler for customers.
type CustomerHTTPHandler = CatalogHandler[
	*customer.Customer,
	dto.CreateCustomerRequest,
	dto.UpdateCustomerRequest,
]

// NewCustomerHandler wires the customer service into the generic
// catalog handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHTTPHandler {
	config := CatalogHandlerConfig[
		*customer.Customer,
		dto.CreateCustomerRequest,
		dto.UpdateCustomerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "customer",

		MapCreateDTO: func(req dto.CreateCustomerRequest, companyID id.ID) *customer.Customer {
			return req.ToEntity(companyID)
		},

		MapUpdateDTO: func(req dto.UpdateCustomerRequest, existing *customer.Customer) *customer.Customer {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *customer.Customer) any {
			return dto.FromCustomer(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
