package handlers

import (
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/category"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// CategoryHTTPHandler is the concrete catalog handler for categories.
type CategoryHTTPHandler = CatalogHandler[
	*category.Category,
	dto.CreateCategoryRequest,
	dto.UpdateCategoryRequest,
]

// NewCategoryHandler wires the category service into the generic
// catalog handler.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHTTPHandler {
	config := CatalogHandlerConfig[
		*category.Category,
		dto.CreateCategoryRequest,
		dto.UpdateCategoryRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "category",

		MapCreateDTO: func(req dto.CreateCategoryRequest, companyID id.ID) *category.Category {
			return req.ToEntity(companyID)
		},

		MapUpdateDTO: func(req dto.UpdateCategoryRequest, existing *category.Category) *category.Category {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *category.Category) any {
			return dto.FromCategory(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
