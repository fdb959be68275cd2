package fuel

import (
	"context"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/tx"
	"fleetledger/internal/domain"
)

// Service provides business operations for fuel purchases.
type Service struct {
	*domain.DocumentService[*Purchase]
	vehicles domain.ExistenceChecker
}

// NewService creates a new fuel purchase service.
func NewService(
	repo Repository,
	vehicles domain.ExistenceChecker,
	txm tx.Manager,
	audit domain.AuditLogger,
) *Service {
	base := domain.NewDocumentService(domain.DocumentServiceConfig[*Purchase]{
		Repo:       repo,
		TxManager:  txm,
		Audit:      audit,
		EntityName: "fuel_purchase",
	})
	return &Service{
		DocumentService: base,
		vehicles:        vehicles,
	}
}

// Create checks the vehicle reference and persists the record.
func (s *Service) Create(ctx context.Context, p *Purchase) error {
	if err := s.checkVehicle(ctx, p); err != nil {
		return err
	}
	return s.DocumentService.Create(ctx, p)
}

// Update checks the vehicle reference and persists the record.
func (s *Service) Update(ctx context.Context, p *Purchase) error {
	if err := s.checkVehicle(ctx, p); err != nil {
		return err
	}
	return s.DocumentService.Update(ctx, p)
}

func (s *Service) checkVehicle(ctx context.Context, p *Purchase) error {
	ok, err := s.vehicles.Exists(ctx, p.CompanyID, p.VehicleID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("vehicle", p.VehicleID.String())
	}
	return nil
}
