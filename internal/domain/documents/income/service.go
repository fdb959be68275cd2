package income

import (
	"context"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/tx"
	"fleetledger/internal/domain"
)

// Service provides business operations for income records.
type Service struct {
	*domain.DocumentService[*Income]
	customers  domain.ExistenceChecker
	categories domain.ExistenceChecker
}

// NewService creates a new Income service.
func NewService(
	repo Repository,
	customers domain.ExistenceChecker,
	categories domain.ExistenceChecker,
	txm tx.Manager,
	audit domain.AuditLogger,
) *Service {
	base := domain.NewDocumentService(domain.DocumentServiceConfig[*Income]{
		Repo:       repo,
		TxManager:  txm,
		Audit:      audit,
		EntityName: "income",
	})
	return &Service{
		DocumentService: base,
		customers:       customers,
		categories:      categories,
	}
}

// Create derives the total, checks references and persists the record.
func (s *Service) Create(ctx context.Context, in *Income) error {
	in.RecalculateTotal()
	if err := s.checkReferences(ctx, in); err != nil {
		return err
	}
	return s.DocumentService.Create(ctx, in)
}

// Update derives the total, checks references and persists the record.
func (s *Service) Update(ctx context.Context, in *Income) error {
	in.RecalculateTotal()
	if err := s.checkReferences(ctx, in); err != nil {
		return err
	}
	return s.DocumentService.Update(ctx, in)
}

// checkReferences ensures customer and category belong to the company.
// References from another tenant must be rejected, not silently stored.
func (s *Service) checkReferences(ctx context.Context, in *Income) error {
	ok, err := s.customers.Exists(ctx, in.CompanyID, in.CustomerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("customer", in.CustomerID.String())
	}

	ok, err = s.categories.Exists(ctx, in.CompanyID, in.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("category", in.CategoryID.String())
	}

	return nil
}
