package customer

import (
	"fleetledger/internal/core/tx"
	"fleetledger/internal/domain"
)

// Service provides business logic for the Customer catalog.
type Service struct {
	*domain.CatalogService[*Customer]
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository, txm tx.Manager, audit domain.AuditLogger) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txm,
		Audit:      audit,
		EntityName: "customer",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
