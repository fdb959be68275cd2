package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// dateOnly is the wire format for date query parameters.
const dateOnly = "2006-01-02"

// DocumentService defines the interface that services must implement
// for DocumentHandler.
type DocumentService[T any] interface {
	Create(ctx context.Context, e T) error
	Update(ctx context.Context, e T) error
	GetByID(ctx context.Context, companyID, entityID id.ID) (T, error)
	Delete(ctx context.Context, companyID, entityID id.ID) error
	List(ctx context.Context, filter domain.DocumentFilter) (domain.ListResult[T], error)
}

// DocumentHandler provides generic HTTP handlers for transaction records.
type DocumentHandler[T any, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    DocumentService[T]
	entityName string

	// Mapper functions
	mapCreateDTO func(dto CreateDTO, companyID id.ID) T
	mapUpdateDTO func(dto UpdateDTO, existing T) T
	mapToDTO     func(entity T) any
}

// DocumentHandlerConfig configures the document handler.
type DocumentHandlerConfig[T any, CreateDTO any, UpdateDTO any] struct {
	Service      DocumentService[T]
	EntityName   string
	MapCreateDTO func(dto CreateDTO, companyID id.ID) T
	MapUpdateDTO func(dto UpdateDTO, existing T) T
	MapToDTO     func(entity T) any
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler[T any, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg DocumentHandlerConfig[T, CreateDTO, UpdateDTO],
) *DocumentHandler[T, CreateDTO, UpdateDTO] {
	return &DocumentHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		entityName:   cfg.EntityName,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{entity} - list with date window and pagination.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DocumentFilter{
		CompanyID: h.CompanyID(c),
		Limit:     h.ParseIntQuery(c, "limit", 50),
		Offset:    h.ParseIntQuery(c, "offset", 0),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(dateOnly, from)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid from date, expected YYYY-MM-DD"))
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(dateOnly, to)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid to date, expected YYYY-MM-DD"))
			return
		}
		filter.To = &t
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

// Get handles GET /{entity}/:id
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, h.CompanyID(c), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mapToDTO(doc))
}

// Create handles POST /{entity}
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	doc := h.mapCreateDTO(req, h.CompanyID(c))

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.mapToDTO(doc))
}

// Update handles PUT /{entity}/:id
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, h.CompanyID(c), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc = h.mapUpdateDTO(req, doc)

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mapToDTO(doc))
}

// Delete handles DELETE /{entity}/:id - hard delete.
func (h *DocumentHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, h.CompanyID(c), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
