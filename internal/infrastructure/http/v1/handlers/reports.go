package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/reports"
	"fleetledger/internal/infrastructure/export"
	"fleetledger/internal/infrastructure/http/v1/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service  *reports.Service
	exporter *export.ExcelExporter
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service, exporter *export.ExcelExporter) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
		exporter:    exporter,
	}
}

// GetDashboardStats handles GET /reports/dashboard-stats
func (h *ReportsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context(), h.CompanyID(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetMonthlySummary handles GET /reports/monthly-summary
func (h *ReportsHandler) GetMonthlySummary(c *gin.Context) {
	var req dto.MonthlySummaryRequest
	if !h.BindQuery(c, &req) {
		return
	}

	items, err := h.service.MonthlySummary(c.Request.Context(), h.CompanyID(c), req.Year)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetDetailedSummary handles GET /reports/detailed-summary
func (h *ReportsHandler) GetDetailedSummary(c *gin.Context) {
	begin, end, ok := h.parseWindow(c)
	if !ok {
		return
	}

	report, err := h.service.DetailedSummary(c.Request.Context(), h.CompanyID(c), begin, end)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCustomerIncomeSummary handles GET /reports/customer-income-summary/:customerId
func (h *ReportsHandler) GetCustomerIncomeSummary(c *gin.Context) {
	customerID, err := id.Parse(c.Param("customerId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid customer id format"))
		return
	}

	summary, err := h.service.CustomerIncomeSummary(c.Request.Context(), h.CompanyID(c), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetVehicleFuelReport handles GET /reports/vehicle-fuel-report
func (h *ReportsHandler) GetVehicleFuelReport(c *gin.Context) {
	var req dto.VehicleFuelReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	report, err := h.service.VehicleFuelReport(c.Request.Context(), h.CompanyID(c), req.Year, req.Month)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportFinancialSummary handles GET /reports/export-financial-summary
// and streams the detailed summary as an xlsx workbook.
func (h *ReportsHandler) ExportFinancialSummary(c *gin.Context) {
	begin, end, ok := h.parseWindow(c)
	if !ok {
		return
	}

	report, err := h.service.DetailedSummary(c.Request.Context(), h.CompanyID(c), begin, end)
	if err != nil {
		h.Error(c, err)
		return
	}

	buf, err := h.exporter.FinancialSummary(report)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	filename := fmt.Sprintf("financial-summary_%s_%s.xlsx",
		report.StartDate.Format(dateOnly), report.EndDate.Format(dateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// parseWindow reads optional beginDate/endDate query parameters.
// The both-or-neither rule is enforced by the report service.
func (h *ReportsHandler) parseWindow(c *gin.Context) (begin, end *time.Time, ok bool) {
	var req dto.DetailedSummaryRequest
	if !h.BindQuery(c, &req) {
		return nil, nil, false
	}

	if req.BeginDate != "" {
		t, err := time.Parse(dateOnly, req.BeginDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid beginDate, expected YYYY-MM-DD"))
			return nil, nil, false
		}
		begin = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse(dateOnly, req.EndDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid endDate, expected YYYY-MM-DD"))
			return nil, nil, false
		}
		end = &t
	}

	return begin, end, true
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard-stats", h.GetDashboardStats)
	rg.GET("/monthly-summary", h.GetMonthlySummary)
	rg.GET("/detailed-summary", h.GetDetailedSummary)
	rg.GET("/customer-income-summary/:customerId", h.GetCustomerIncomeSummary)
	rg.GET("/vehicle-fuel-report", h.GetVehicleFuelReport)
	rg.GET("/export-financial-summary", h.ExportFinancialSummary)
}
