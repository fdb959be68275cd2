package category

import (
	"fleetledger/internal/core/tx"
	"fleetledger/internal/domain"
)

// Service provides business logic for the Category catalog.
type Service struct {
	*domain.CatalogService[*Category]
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository, txm tx.Manager, audit domain.AuditLogger) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
		Repo:       repo,
		TxManager:  txm,
		Audit:      audit,
		EntityName: "category",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
