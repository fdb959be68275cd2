// Package main provides a CLI tool for seeding the database with
// initial data: a company, an admin user and default categories.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	core "fleetledger/internal/core/company"
	"fleetledger/internal/domain/auth"
	"fleetledger/internal/domain/catalogs/category"
	"fleetledger/internal/domain/catalogs/company"
	"fleetledger/internal/infrastructure/storage/postgres"
	"fleetledger/internal/infrastructure/storage/postgres/auth_repo"
	"fleetledger/internal/infrastructure/storage/postgres/catalog_repo"
	"fleetledger/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	seeded, created, err := seedCompany(ctx, txManager, log)
	if err != nil {
		log.Fatalw("failed to seed company", "error", err)
	}

	if err := seedAdminUser(ctx, txManager, seeded, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	// Categories are only seeded together with a fresh company so
	// reruns stay idempotent.
	if created {
		if err := seedCategories(ctx, txManager, seeded, log); err != nil {
			log.Fatalw("failed to seed categories", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedCompany(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) (*core.Company, bool, error) {
	name := os.Getenv("COMPANY_NAME")
	if name == "" {
		name = "Demo Fleet"
	}

	service := company.NewService(catalog_repo.NewCompanyRepo(txManager), txManager)

	existing, err := service.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list companies: %w", err)
	}
	for _, c := range existing {
		if c.Name == name {
			log.Infow("company already exists", "name", name, "company_id", c.ID)
			return c, false, nil
		}
	}

	created, err := service.Create(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("create company: %w", err)
	}

	log.Infow("company created", "name", name, "company_id", created.ID)
	return created, true, nil
}

func seedAdminUser(ctx context.Context, txManager *postgres.TxManager, c *core.Company, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@fleetledger.io"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	userRepo := auth_repo.NewUserRepo(txManager)

	exists, err := userRepo.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		return fmt.Errorf("check admin exists: %w", err)
	}
	if exists {
		log.Infow("admin user already exists", "email", adminEmail)
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := auth.NewUser(c.ID, adminEmail, string(passwordHash))
	user.FullName = "System Admin"
	user.IsAdmin = true

	err = txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", user.ID)
	return nil
}

func seedCategories(ctx context.Context, txManager *postgres.TxManager, c *core.Company, log *logger.Logger) error {
	repo := catalog_repo.NewCategoryRepo(txManager)
	service := category.NewService(repo, txManager, nil)

	defaults := []struct {
		name string
		kind category.Kind
	}{
		{"Freight", category.KindIncome},
		{"Passenger Transport", category.KindIncome},
		{"Fuel", category.KindExpense},
		{"Maintenance", category.KindExpense},
		{"Insurance", category.KindExpense},
		{"Salaries", category.KindExpense},
		{category.FallbackName, category.KindExpense},
	}

	for _, d := range defaults {
		err := service.Create(ctx, category.NewCategory(c.ID, d.name, d.kind))
		if err != nil {
			return fmt.Errorf("create category %q: %w", d.name, err)
		}
	}

	log.Infow("default categories created", "count", len(defaults), "company_id", c.ID)
	return nil
}
