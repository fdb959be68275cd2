package reports

import (
	"context"

	"fleetledger/internal/core/id"
)

// Totals is the result of a sum/count aggregation over one collection.
// Empty result sets resolve to zero values, never an error.
type Totals struct {
	Sum   float64
	Count int64
}

// MonthTotal is one (year, month) group's summed amount.
type MonthTotal struct {
	Year  int
	Month int
	Total float64
}

// CategoryTotal is one expense category's summed amount.
type CategoryTotal struct {
	Category string
	Total    float64
}

// CustomerTotals aggregates a customer's income rows within a window.
type CustomerTotals struct {
	Invoiced  float64
	Paid      float64
	UnitCount int64
}

// VehicleFuelTotal is one vehicle's fuel spend within a window.
// Rows whose vehicle no longer resolves are not represented here.
type VehicleFuelTotal struct {
	VehicleID   id.ID
	PlateNumber string
	Total       float64
	Count       int64
}

// Repository executes the aggregation primitives the calculators are
// built from. Every query filters on companyID; a nil window means
// all time. Month grouping happens in the resolver's timezone, which
// the repository receives at construction.
type Repository interface {
	IncomeTotals(ctx context.Context, companyID id.ID, window *DateRange) (Totals, error)
	ExpenseTotals(ctx context.Context, companyID id.ID, window *DateRange) (Totals, error)
	FuelTotals(ctx context.Context, companyID id.ID, window *DateRange) (Totals, error)

	CountCustomers(ctx context.Context, companyID id.ID) (int64, error)
	CountVehicles(ctx context.Context, companyID id.ID) (int64, error)
	CountEmployees(ctx context.Context, companyID id.ID) (int64, error)

	ExpenseByCategory(ctx context.Context, companyID id.ID, window DateRange) ([]CategoryTotal, error)

	IncomeByMonth(ctx context.Context, companyID id.ID, window DateRange) ([]MonthTotal, error)
	ExpenseByMonth(ctx context.Context, companyID id.ID, window DateRange) ([]MonthTotal, error)
	FuelByMonth(ctx context.Context, companyID id.ID, window DateRange) ([]MonthTotal, error)

	CustomerIncomeTotals(ctx context.Context, companyID, customerID id.ID, window DateRange) (CustomerTotals, error)

	FuelByVehicle(ctx context.Context, companyID id.ID, window DateRange) ([]VehicleFuelTotal, error)
}
