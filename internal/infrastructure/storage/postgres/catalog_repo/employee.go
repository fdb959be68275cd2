package catalog_repo

import (
	"fleetledger/internal/domain/catalogs/employee"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// EmployeeRepo implements employee.Repository.
type EmployeeRepo struct {
	*BaseCatalogRepo[*employee.Employee]
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(txManager *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"cat_employees",
			postgres.ExtractDBColumns[employee.Employee](),
			func() *employee.Employee { return &employee.Employee{} },
		),
	}
}

var _ employee.Repository = (*EmployeeRepo)(nil)
