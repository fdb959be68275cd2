// Package vehicle provides the Vehicle catalog.
// Vehicles are the assets fuel entries are recorded against.
package vehicle

import (
	"context"
	"regexp"
	"strings"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/entity"
	"fleetledger/internal/core/id"
)

// plateRE accepts common plate formats: letters, digits, spaces and dashes.
var plateRE = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 -]{1,14}$`)

// Vehicle represents a company vehicle.
type Vehicle struct {
	entity.Catalog

	// PlateNumber is the registration plate, unique within the company
	PlateNumber string `db:"plate_number" json:"plateNumber"`

	// Model is the make/model description
	Model *string `db:"model" json:"model,omitempty"`

	// Year is the production year
	Year *int `db:"year" json:"year,omitempty"`
}

// NewVehicle creates a new Vehicle for the given company.
func NewVehicle(companyID id.ID, name, plateNumber string) *Vehicle {
	return &Vehicle{
		Catalog:     entity.NewCatalog(companyID, name),
		PlateNumber: normalizePlate(plateNumber),
	}
}

// Validate implements entity.Validatable.
func (v *Vehicle) Validate(ctx context.Context) error {
	if err := v.Catalog.Validate(ctx); err != nil {
		return err
	}

	plate := normalizePlate(v.PlateNumber)
	if plate == "" {
		return apperror.NewValidation("plate number is required").
			WithDetail("field", "plateNumber")
	}
	if !plateRE.MatchString(plate) {
		return apperror.NewValidation("invalid plate number format").
			WithDetail("field", "plateNumber").
			WithDetail("value", v.PlateNumber)
	}
	v.PlateNumber = plate

	return nil
}

func normalizePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
