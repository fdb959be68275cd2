// Package main is the entry point for the fleetledger API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	v1 "fleetledger/internal/infrastructure/http/v1"
	"fleetledger/internal/infrastructure/storage/postgres"
	"fleetledger/internal/infrastructure/storage/postgres/auth_repo"
	"fleetledger/internal/infrastructure/storage/postgres/catalog_repo"
	"fleetledger/internal/infrastructure/storage/postgres/document_repo"
	"fleetledger/internal/infrastructure/storage/postgres/report_repo"
	"fleetledger/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting fleetledger server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- JWT and auth ---
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(mustEnv("JWT_SECRET")))
	authService := auth.NewService(
		auth_repo.NewUserRepo(txManager),
		txManager,
		jwtService,
		auth.DefaultServiceConfig(),
	)

	// --- Company registry ---
	companyService := company.NewService(catalog_repo.NewCompanyRepo(txManager), txManager)

	// --- Catalogs ---
	customerRepo := catalog_repo.NewCustomerRepo(txManager)
	vehicleRepo := catalog_repo.NewVehicleRepo(txManager)
	employeeRepo := catalog_repo.NewEmployeeRepo(txManager)
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)

	customerService := customer.NewService(customerRepo, txManager, auditService)
	vehicleService := vehicle.NewService(vehicleRepo, txManager, auditService)
	employeeService := employee.NewService(employeeRepo, txManager, auditService)
	categoryService := category.NewService(categoryRepo, txManager, auditService)

	// --- Documents ---
	incomeService := income.NewService(
		document_repo.NewIncomeRepo(txManager),
		customerRepo, categoryRepo,
		txManager, auditService,
	)
	expenseService := expense.NewService(
		document_repo.NewExpenseRepo(txManager),
		categoryRepo, vehicleRepo, employeeRepo,
		txManager, auditService,
	)
	fuelService := fuel.NewService(
		document_repo.NewFuelRepo(txManager),
		vehicleRepo,
		txManager, auditService,
	)

	// --- Reports ---
	timezone := getEnv("REPORT_TIMEZONE", reports.DefaultTimezone)
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatalw("invalid REPORT_TIMEZONE", "timezone", timezone, "error", err)
	}

	reportService := reports.NewService(reports.Config{
		Repo:      report_repo.NewReportRepo(txManager, timezone),
		Customers: customerRepo,
		Location:  location,
	})

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:            pool,
		Logger:          log,
		JWTValidator:    jwtService,
		CompanyRegistry: companyService,
		AuthService:     authService,
		CompanyService:  companyService,
		CustomerService: customerService,
		VehicleService:  vehicleService,
		EmployeeService: employeeService,
		CategoryService: categoryService,
		IncomeService:   incomeService,
		ExpenseService:  expenseService,
		FuelService:     fuelService,
		ReportService:   reportService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port, "timezone", timezone)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
