package v1

import (
	"github.com/gin-gonic/gin"

	corecompany "fleetledger/internal/core/company"
	"fleetledger/internal/domain/auth"
	"fleetledger/internal/domain/catalogs/category"
	"fleetledger/internal/domain/catalogs/company"
	"fleetledger/internal/domain/catalogs/customer"
	"fleetledger/internal/domain/catalogs/employee"
	"fleetledger/internal/domain/catalogs/vehicle"
	"fleetledger/internal/domain/documents/expense"
	"fleetledger/internal/domain/documents/fuel"
	"fleetledger/internal/domain/documents/income"
	"fleetledger/internal/domain/reports"
	"fleetledger/internal/infrastructure/export"
	"fleetledger/internal/infrastructure/http/v1/handlers"
	"fleetledger/internal/infrastructure/http/v1/middleware"
	"fleetledger/internal/infrastructure/storage/postgres"
	"fleetledger/pkg/logger"
)

// RouterConfig holds all dependencies the API surface needs.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// CompanyRegistry resolves the X-Company-ID header
	CompanyRegistry corecompany.Registry

	// Services
	AuthService     *auth.Service
	CompanyService  *company.Service
	CustomerService *customer.Service
	VehicleService  *vehicle.Service
	EmployeeService *employee.Service
	CategoryService *category.Service
	IncomeService   *income.Service
	ExpenseService  *expense.Service
	FuelService     *fuel.Service
	ReportService   *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth, no company required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	healthHandler.RegisterRoutes(router.Group("/health"))

	baseHandler := handlers.NewBaseHandler()

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, baseHandler, cfg)
		registerCompanyRoutes(v1, baseHandler, cfg)

		// Protected endpoints - CompanyScope runs first, then Auth,
		// so the token's company claim is checked against the header.
		protected := v1.Group("")
		protected.Use(middleware.CompanyScope(cfg.CompanyRegistry))
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, baseHandler, cfg)
		registerDocumentRoutes(protected, baseHandler, cfg)
		registerReportRoutes(protected, baseHandler, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	publicAuth := rg.Group("/auth")

	// Protected auth endpoints (JWT required, no company scope)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerCompanyRoutes registers company administration endpoints.
// Company management is cross-tenant, so it sits outside CompanyScope
// and requires an admin token.
func registerCompanyRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.CompanyService == nil {
		return
	}

	handler := handlers.NewCompanyHandler(base, cfg.CompanyService)

	companies := rg.Group("/companies")
	companies.Use(middleware.Auth(cfg.JWTValidator))
	companies.Use(middleware.RequireAdmin())

	handler.RegisterRoutes(companies)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")

	RegisterCatalogRoutes(catalogs.Group("/customers"), handlers.NewCustomerHandler(base, cfg.CustomerService))
	RegisterCatalogRoutes(catalogs.Group("/vehicles"), handlers.NewVehicleHandler(base, cfg.VehicleService))
	RegisterCatalogRoutes(catalogs.Group("/employees"), handlers.NewEmployeeHandler(base, cfg.EmployeeService))
	RegisterCatalogRoutes(catalogs.Group("/categories"), handlers.NewCategoryHandler(base, cfg.CategoryService))
}

// registerDocumentRoutes registers transaction record endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	docs := rg.Group("/documents")

	RegisterDocumentRoutes(docs.Group("/incomes"), handlers.NewIncomeHandler(base, cfg.IncomeService))
	RegisterDocumentRoutes(docs.Group("/expenses"), handlers.NewExpenseHandler(base, cfg.ExpenseService))
	RegisterDocumentRoutes(docs.Group("/fuel-purchases"), handlers.NewFuelHandler(base, cfg.FuelService))
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewReportsHandler(base, cfg.ReportService, export.NewExcelExporter())
	handler.RegisterRoutes(rg.Group("/reports"))
}
