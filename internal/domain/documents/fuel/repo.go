package fuel

import (
	"fleetledger/internal/domain"
)

// Repository defines the interface for fuel purchase persistence.
type Repository interface {
	domain.DocumentRepository[*Purchase]
}
