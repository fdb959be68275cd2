package expense

import (
	"fleetledger/internal/domain"
)

// Repository defines the interface for Expense persistence.
type Repository interface {
	domain.DocumentRepository[*Expense]
}
