package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/core/apperror"
	core "fleetledger/internal/core/company"
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/company"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

// CompanyHandler handles company administration endpoints.
type CompanyHandler struct {
	*BaseHandler
	service *company.Service
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(base *BaseHandler, service *company.Service) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCompany(created))
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.CompanyResponse, len(companies))
	for i, cmp := range companies {
		items[i] = dto.FromCompany(cmp)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SetActive handles POST /companies/:id/active
func (h *CompanyHandler) SetActive(c *gin.Context) {
	companyID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetCompanyActiveRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetActive(c.Request.Context(), companyID, req.Active); err != nil {
		if errors.Is(err, core.ErrCompanyNotFound) {
			h.Error(c, apperror.NewNotFound("company", companyID.String()))
			return
		}
		h.Error(c, err)
		return
	}

	h.Success(c, "company active flag updated")
}

// RegisterRoutes registers company administration routes.
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.POST("/:id/active", h.SetActive)
}
