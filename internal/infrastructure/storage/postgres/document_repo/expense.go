package document_repo

import (
	"fleetledger/internal/domain/documents/expense"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// ExpenseRepo implements expense.Repository.
type ExpenseRepo struct {
	*BaseDocumentRepo[*expense.Expense]
}

// NewExpenseRepo creates a new expense repository.
func NewExpenseRepo(txManager *postgres.TxManager) *ExpenseRepo {
	return &ExpenseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			"doc_expenses",
			postgres.ExtractDBColumns[expense.Expense](),
			func() *expense.Expense { return &expense.Expense{} },
		),
	}
}

var _ expense.Repository = (*ExpenseRepo)(nil)
