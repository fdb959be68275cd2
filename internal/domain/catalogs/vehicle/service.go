package vehicle

import (
	"context"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/tx"
	"fleetledger/internal/domain"
)

// Service provides business logic for the Vehicle catalog.
type Service struct {
	*domain.CatalogService[*Vehicle]
	repo Repository
}

// NewService creates a new Vehicle service.
func NewService(repo Repository, txm tx.Manager, audit domain.AuditLogger) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Vehicle]{
		Repo:       repo,
		TxManager:  txm,
		Audit:      audit,
		EntityName: "vehicle",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// Create checks plate uniqueness before delegating to the base service.
func (s *Service) Create(ctx context.Context, v *Vehicle) error {
	if err := s.checkPlateUnique(ctx, v); err != nil {
		return err
	}
	return s.CatalogService.Create(ctx, v)
}

// Update checks plate uniqueness before delegating to the base service.
func (s *Service) Update(ctx context.Context, v *Vehicle) error {
	if err := s.checkPlateUnique(ctx, v); err != nil {
		return err
	}
	return s.CatalogService.Update(ctx, v)
}

func (s *Service) checkPlateUnique(ctx context.Context, v *Vehicle) error {
	existing, err := s.repo.FindByPlate(ctx, v.CompanyID, normalizePlate(v.PlateNumber))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != v.ID {
		return apperror.NewConflict("vehicle with this plate number already exists").
			WithDetail("plateNumber", v.PlateNumber)
	}
	return nil
}
