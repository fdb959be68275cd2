package handlers

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/employee"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// EmployeeHTTPHandler is the concrete catalog handler for employees.
type EmployeeHTTPHandler = CatalogHandler[
	*employee.Employee,
	dto.CreateEmployeeRequest,
	dto.UpdateEmployeeRequest,
]

// NewEmployeeHandler wires the employee service into the generic
// catalog handler.
func NewEmployeeHandler(base *BaseHandler, service *employee.Service) *EmployeeHTTPHandler {
	config := CatalogHandlerConfig[
		*employee.Employee,
		dto.CreateEmployeeRequest,
		dto.UpdateEmployeeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "employee",

		MapCreateDTO: func(req dto.CreateEmployeeRequest, companyID id.ID) *employee.Employee {
			return req.ToEntity(companyID)
		},

		MapUpdateDTO: func(req dto.UpdateEmployeeRequest, existing *employee.Employee) *employee.Employee {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *employee.Employee) any {
			return dto.FromEmployee(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
