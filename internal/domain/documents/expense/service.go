package expense

import (
	"context"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/tx"
	"fleetledger/internal/domain"
)

// Service provides business operations for expense records.
type Service struct {
	*domain.DocumentService[*Expense]
	categories domain.ExistenceChecker
	vehicles   domain.ExistenceChecker
	employees  domain.ExistenceChecker
}

// NewService creates a new Expense service.
func NewService(
	repo Repository,
	categories domain.ExistenceChecker,
	vehicles domain.ExistenceChecker,
	employees domain.ExistenceChecker,
	txm tx.Manager,
	audit domain.AuditLogger,
) *Service {
	base := domain.NewDocumentService(domain.DocumentServiceConfig[*Expense]{
		Repo:       repo,
		TxManager:  txm,
		Audit:      audit,
		EntityName: "expense",
	})
	return &Service{
		DocumentService: base,
		categories:      categories,
		vehicles:        vehicles,
		employees:       employees,
	}
}

// Create checks references and persists the record.
func (s *Service) Create(ctx context.Context, e *Expense) error {
	if err := s.checkReferences(ctx, e); err != nil {
		return err
	}
	return s.DocumentService.Create(ctx, e)
}

// Update checks references and persists the record.
func (s *Service) Update(ctx context.Context, e *Expense) error {
	if err := s.checkReferences(ctx, e); err != nil {
		return err
	}
	return s.DocumentService.Update(ctx, e)
}

func (s *Service) checkReferences(ctx context.Context, e *Expense) error {
	ok, err := s.categories.Exists(ctx, e.CompanyID, e.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("category", e.CategoryID.String())
	}

	if e.RelatedToID == nil {
		return nil
	}

	switch e.RelatedModel {
	case RelatedVehicle:
		ok, err = s.vehicles.Exists(ctx, e.CompanyID, *e.RelatedToID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewNotFound("vehicle", e.RelatedToID.String())
		}
	case RelatedEmployee:
		ok, err = s.employees.Exists(ctx, e.CompanyID, *e.RelatedToID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewNotFound("employee", e.RelatedToID.String())
		}
	}

	return nil
}
