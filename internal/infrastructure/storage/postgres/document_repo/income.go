package document_repo

import (
	"fleetledger/internal/domain/documents/income"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// IncomeRepo implements income.Repository.
type IncomeRepo struct {
	*BaseDocumentRepo[*income.Income]
}

// NewIncomeRepo creates a new income repository.
func NewIncomeRepo(txManager *postgres.TxManager) *IncomeRepo {
	return &IncomeRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			"doc_incomes",
			postgres.ExtractDBColumns[income.Income](),
			func() *income.Income { return &income.Income{} },
		),
	}
}

var _ income.Repository = (*IncomeRepo)(nil)
