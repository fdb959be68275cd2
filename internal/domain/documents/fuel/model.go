// Package fuel provides the fuel purchase record.
package fuel

import (
	"context"
	"time"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/types"
)

// Purchase represents a single fuel fill-up for a vehicle.
type Purchase struct {
	entity.Transaction

	// TotalPrice is the amount paid at the pump
	TotalPrice types.Money `db:"total_price" json:"totalPrice"`

	// VehicleID references the fueled vehicle
	VehicleID id.ID `db:"vehicle_id" json:"vehicleId"`
}

// NewPurchase creates a new fuel purchase record.
func NewPurchase(companyID id.ID, operationDate time.Time, vehicleID id.ID, totalPrice types.Money) *Purchase {
	return &Purchase{
		Transaction: entity.NewTransaction(companyID, operationDate),
		TotalPrice:  totalPrice,
		VehicleID:   vehicleID,
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Transaction.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.VehicleID) {
		return apperror.NewValidation("vehicle is required").
			WithDetail("field", "vehicleId")
	}
	if p.TotalPrice.IsNegative() {
		return apperror.NewValidation("total price cannot be negative").
			WithDetail("field", "totalPrice")
	}

	return nil
}
