package handlers

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/documents/expense"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// ExpenseHTTPHandler is the concrete document handler for expenses.
type ExpenseHTTPHandler = DocumentHandler[
	*expense.Expense,
	dto.CreateExpenseRequest,
	dto.UpdateExpenseRequest,
]

// NewExpenseHandler wires the expense service into the generic document
// handler.
func NewExpenseHandler(base *BaseHandler, service *expense.Service) *ExpenseHTTPHandler {
	config := DocumentHandlerConfig[
		*expense.Expense,
		dto.CreateExpenseRequest,
		dto.UpdateExpenseRequest,
	]{
		Service:    service,
		EntityName: "expense",

		MapCreateDTO: func(req dto.CreateExpenseRequest, companyID id.ID) *expense.Expense {
			return req.ToEntity(companyID)
		},

		MapUpdateDTO: func(req dto.UpdateExpenseRequest, existing *expense.Expense) *expense.Expense {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *expense.Expense) any {
			return dto.FromExpense(entity)
		},
	}

	return NewDocumentHandler(base, config)
}
