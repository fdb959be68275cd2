package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/vehicle"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// VehicleRepo implements vehicle.Repository.
type VehicleRepo struct {
	*BaseCatalogRepo[*vehicle.Vehicle]
}

// NewVehicleRepo creates a new vehicle repository.
func NewVehicleRepo(txManager *postgres.TxManager) *VehicleRepo {
	return &VehicleRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"cat_vehicles",
			postgres.ExtractDBColumns[vehicle.Vehicle](),
			func() *vehicle.Vehicle { return &vehicle.Vehicle{} },
		),
	}
}

// FindByPlate retrieves a vehicle by its plate number within the company.
func (r *VehicleRepo) FindByPlate(ctx context.Context, companyID id.ID, plate string) (*vehicle.Vehicle, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[vehicle.Vehicle]()...).
		From("cat_vehicles").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"plate_number": plate}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}

var _ vehicle.Repository = (*VehicleRepo)(nil)
