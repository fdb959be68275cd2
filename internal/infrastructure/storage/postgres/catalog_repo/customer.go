package catalog_repo

import (
	"fleetledger/internal/domain/catalogs/customer"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txManager *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"cat_customers",
			postgres.ExtractDBColumns[customer.Customer](),
			func() *customer.Customer { return &customer.Customer{} },
		),
	}
}

var _ customer.Repository = (*CustomerRepo)(nil)
