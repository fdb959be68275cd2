package handlers

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/documents/income"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// IncomeHTTPHandler is the concrete document handler for income records.
type IncomeHTTPHandler = DocumentHandler[
	*income.Income,
	dto.CreateIncomeRequest,
	dto.UpdateIncomeRequest,
]

// NewIncomeHandler wires the income service into the generic document
// handler. The income service is passed whole so reference checks and
// total derivation on Create/Update stay in force.
func NewIncomeHandler(base *BaseHandler, service *income.Service) *IncomeHTTPHandler {
	config := DocumentHandlerConfig[
		*income.Income,
		dto.CreateIncomeRequest,
		dto.UpdateIncomeRequest,
	]{
		Service:    service,
		EntityName: "income",

		MapCreateDTO: func(req dto.CreateIncomeRequest, companyID id.ID) *income.Income {
			return req.ToEntity(companyID)
		},

		MapUpdateDTO: func(req dto.UpdateIncomeRequest, existing *income.Income) *income.Income {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *income.Income) any {
			return dto.FromIncome(entity)
		},
	}

	return NewDocumentHandler(base, config)
}
