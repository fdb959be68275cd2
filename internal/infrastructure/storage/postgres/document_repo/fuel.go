package document_repo

import (
	"fleetledger/internal/domain/documents/fuel"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// FuelRepo implements fuel.Repository.
type FuelRepo struct {
	*BaseDocumentRepo[*fuel.Purchase]
}

// NewFuelRepo creates a new fuel purchase repository.
func NewFuelRepo(txManager *postgres.TxManager) *FuelRepo {
	return &FuelRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			"doc_fuel_purchases",
			postgres.ExtractDBColumns[fuel.Purchase](),
			func() *fuel.Purchase { return &fuel.Purchase{} },
		),
	}
}

var _ fuel.Repository = (*FuelRepo)(nil)
