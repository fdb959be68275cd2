package catalog_repo

import (
	"fleetledger/internal/domain/catalogs/category"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	*BaseCatalogRepo[*category.Category]
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txManager *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"cat_categories",
			postgres.ExtractDBColumns[category.Category](),
			func() *category.Category { return &category.Category{} },
		),
	}
}

var _ category.Repository = (*CategoryRepo)(nil)
