package vehicle

import (
	"context"

	"fleetledger/internal/core/id"
	"fleetledger/internal/domain"
)

// Repository defines the interface for Vehicle persistence.
type Repository interface {
	domain.CatalogRepository[*Vehicle]

	// FindByPlate retrieves a vehicle by plate number (unique within company).
	FindByPlate(ctx context.Context, companyID id.ID, plate string) (*Vehicle, error)
}
