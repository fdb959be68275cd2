package income

import (
	"fleetledger/internal/domain"
)

// Repository defines the interface for Income persistence.
type Repository interface {
	domain.DocumentRepository[*Income]
}
