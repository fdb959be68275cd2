package entity

import "fleetledger/internal/core/id"

// GetID returns the entity id (Identifiable interface).
func (b *Base) GetID() id.ID { return b.ID }

// GetCompanyID returns the owning company id (Identifiable interface).
func (b *Base) GetCompanyID() id.ID { return b.CompanyID }
