package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// CatalogService defines the interface that services must implement for
// CatalogHandler. Satisfied by domain.CatalogService and the per-entity
// wrappers that override Create/Update.
type CatalogService[T any] interface {
	Create(ctx context.Context, e T) error
	Update(ctx context.Context, e T) error
	GetByID(ctx context.Context, companyID, entityID id.ID) (T, error)
	Delete(ctx context.Context, companyID, entityID id.ID) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error)
}

// CatalogHandler provides generic HTTP handlers for catalog entities.
// The company id always comes from the scope middleware, never from the
// request body.
type CatalogHandler[T any, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    CatalogService[T]
	entityName string

	// Mapper functions
	mapCreateDTO func(dto CreateDTO, companyID id.ID) T
	mapUpdateDTO func(dto UpdateDTO, existing T) T
	mapToDTO     func(entity T) any
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T any, CreateDTO any, UpdateDTO any] struct {
	Service      CatalogService[T]
	EntityName   string
	MapCreateDTO func(dto CreateDTO, companyID id.ID) T
	MapUpdateDTO func(dto UpdateDTO, existing T) T
	MapToDTO     func(entity T) any
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T any, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, CreateDTO, UpdateDTO],
) *CatalogHandler[T, CreateDTO, UpdateDTO] {
	return &CatalogHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		entityName:   cfg.EntityName,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{entity} - list with filtering and pagination.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.ListFilter{
		CompanyID:      h.CompanyID(c),
		Search:         c.Query("search"),
		OrderBy:        c.DefaultQuery("orderBy", "name"),
		IncludeDeleted: c.Query("includeDeleted") == "true",
		Limit:          h.ParseIntQuery(c, "limit", 50),
		Offset:         h.ParseIntQuery(c, "offset", 0),
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = h.mapToDTO(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /{entity}/:id - get single entity.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	entity, err := h.service.GetByID(ctx, h.CompanyID(c), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mapToDTO(entity))
}

// Create handles POST /{entity} - create new entity.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	entity := h.mapCreateDTO(req, h.CompanyID(c))

	if err := h.service.Create(ctx, entity); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.mapToDTO(entity))
}

// Update handles PUT /{entity}/:id - update existing entity.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, h.CompanyID(c), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdateDTO(req, existing)

	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mapToDTO(updated))
}

// Delete handles DELETE /{entity}/:id - soft delete entity.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, h.CompanyID(c), entityID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
