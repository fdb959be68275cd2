package employee

import (
	"fleetledger/internal/core/tx"
	"fleetledger/internal/domain"
)

// Service provides business logic for the Employee catalog.
type Service struct {
	*domain.CatalogService[*Employee]
	repo Repository
}

// NewService creates a new Employee service.
func NewService(repo Repository, txm tx.Manager, audit domain.AuditLogger) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Employee]{
		Repo:       repo,
		TxManager:  txm,
		Audit:      audit,
		EntityName: "employee",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
