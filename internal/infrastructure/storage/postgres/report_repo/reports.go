// Package report_repo provides the PostgreSQL aggregation backend for
// the reporting engine. Every query filters on company_id; month
// grouping happens in the configured reporting timezone.
package report_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/catalogs/category"
	"fleetledger/internal/domain/reports"
	"fleetledger/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txManager *postgres.TxManager

	// timezone is the IANA zone month buckets are computed in
	timezone string
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager, timezone string) *ReportRepo {
	if timezone == "" {
		timezone = reports.DefaultTimezone
	}
	return &ReportRepo{
		txManager: txManager,
		timezone:  timezone,
	}
}

func (r *ReportRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

// sumAndCount is the aggregation primitive every report is built from:
// one sum plus one row count over a company-scoped, optionally
// date-bounded table. Empty result sets come back as zeros.
func (r *ReportRepo) sumAndCount(ctx context.Context, table, amountCol string, companyID id.ID, window *reports.DateRange) (reports.Totals, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(%s), 0)::float8, COUNT(*)
		FROM %s
		WHERE company_id = $1
	`, amountCol, table)
	args := []any{companyID}

	if window != nil {
		query += " AND operation_date >= $2 AND operation_date <= $3"
		args = append(args, window.Begin, window.End)
	}

	var totals reports.Totals
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&totals.Sum, &totals.Count); err != nil {
		return reports.Totals{}, fmt.Errorf("aggregate %s: %w", table, err)
	}

	return totals, nil
}

// IncomeTotals sums invoiced income for the window (nil means all time).
func (r *ReportRepo) IncomeTotals(ctx context.Context, companyID id.ID, window *reports.DateRange) (reports.Totals, error) {
	return r.sumAndCount(ctx, "doc_incomes", "total_amount", companyID, window)
}

// ExpenseTotals sums expenses for the window.
func (r *ReportRepo) ExpenseTotals(ctx context.Context, companyID id.ID, window *reports.DateRange) (reports.Totals, error) {
	return r.sumAndCount(ctx, "doc_expenses", "amount", companyID, window)
}

// FuelTotals sums fuel purchases for the window.
func (r *ReportRepo) FuelTotals(ctx context.Context, companyID id.ID, window *reports.DateRange) (reports.Totals, error) {
	return r.sumAndCount(ctx, "doc_fuel_purchases", "total_price", companyID, window)
}

func (r *ReportRepo) countCatalog(ctx context.Context, table string, companyID id.ID) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE company_id = $1 AND deletion_mark = false
	`, table)

	var count int64
	if err := r.querier(ctx).QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}

	return count, nil
}

// CountCustomers counts the company's active customers.
func (r *ReportRepo) CountCustomers(ctx context.Context, companyID id.ID) (int64, error) {
	return r.countCatalog(ctx, "cat_customers", companyID)
}

// CountVehicles counts the company's active vehicles.
func (r *ReportRepo) CountVehicles(ctx context.Context, companyID id.ID) (int64, error) {
	return r.countCatalog(ctx, "cat_vehicles", companyID)
}

// CountEmployees counts the company's active employees.
func (r *ReportRepo) CountEmployees(ctx context.Context, companyID id.ID) (int64, error) {
	return r.countCatalog(ctx, "cat_employees", companyID)
}

// ExpenseByCategory groups window expenses by category name. Expenses
// whose category no longer resolves land in the fallback bucket.
func (r *ReportRepo) ExpenseByCategory(ctx context.Context, companyID id.ID, window reports.DateRange) ([]reports.CategoryTotal, error) {
	query := `
		SELECT COALESCE(c.name, $4) AS category,
			   SUM(e.amount)::float8 AS total
		FROM doc_expenses e
		LEFT JOIN cat_categories c
			ON e.category_id = c.id AND c.company_id = e.company_id
		WHERE e.company_id = $1
		  AND e.operation_date >= $2 AND e.operation_date <= $3
		GROUP BY 1
		ORDER BY total DESC
	`

	var items []reports.CategoryTotal
	err := pgxscan.Select(ctx, r.querier(ctx), &items, query,
		companyID, window.Begin, window.End, category.FallbackName)
	if err != nil {
		return nil, fmt.Errorf("expense by category: %w", err)
	}

	return items, nil
}

func (r *ReportRepo) byMonth(ctx context.Context, table, amountCol string, companyID id.ID, window reports.DateRange) ([]reports.MonthTotal, error) {
	query := fmt.Sprintf(`
		SELECT EXTRACT(YEAR FROM operation_date AT TIME ZONE $4)::int AS year,
			   EXTRACT(MONTH FROM operation_date AT TIME ZONE $4)::int AS month,
			   SUM(%s)::float8 AS total
		FROM %s
		WHERE company_id = $1
		  AND operation_date >= $2 AND operation_date <= $3
		GROUP BY 1, 2
		ORDER BY 1, 2
	`, amountCol, table)

	var items []reports.MonthTotal
	err := pgxscan.Select(ctx, r.querier(ctx), &items, query,
		companyID, window.Begin, window.End, r.timezone)
	if err != nil {
		return nil, fmt.Errorf("%s by month: %w", table, err)
	}

	return items, nil
}

// IncomeByMonth groups window income by calendar month.
func (r *ReportRepo) IncomeByMonth(ctx context.Context, companyID id.ID, window reports.DateRange) ([]reports.MonthTotal, error) {
	return r.byMonth(ctx, "doc_incomes", "total_amount", companyID, window)
}

// ExpenseByMonth groups window expenses by calendar month.
func (r *ReportRepo) ExpenseByMonth(ctx context.Context, companyID id.ID, window reports.DateRange) ([]reports.MonthTotal, error) {
	return r.byMonth(ctx, "doc_expenses", "amount", companyID, window)
}

// FuelByMonth groups window fuel purchases by calendar month.
func (r *ReportRepo) FuelByMonth(ctx context.Context, companyID id.ID, window reports.DateRange) ([]reports.MonthTotal, error) {
	return r.byMonth(ctx, "doc_fuel_purchases", "total_price", companyID, window)
}

// CustomerIncomeTotals aggregates one customer's income in the window.
func (r *ReportRepo) CustomerIncomeTotals(ctx context.Context, companyID, customerID id.ID, window reports.DateRange) (reports.CustomerTotals, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)::float8,
			   COALESCE(SUM(total_amount) FILTER (WHERE is_paid), 0)::float8,
			   COALESCE(SUM(unit_count), 0)::bigint
		FROM doc_incomes
		WHERE company_id = $1
		  AND customer_id = $2
		  AND operation_date >= $3 AND operation_date <= $4
	`

	var totals reports.CustomerTotals
	err := r.querier(ctx).QueryRow(ctx, query, companyID, customerID, window.Begin, window.End).
		Scan(&totals.Invoiced, &totals.Paid, &totals.UnitCount)
	if err != nil {
		return reports.CustomerTotals{}, fmt.Errorf("customer income totals: %w", err)
	}

	return totals, nil
}

// FuelByVehicle groups window fuel purchases per vehicle. The inner
// join drops rows whose vehicle no longer resolves.
func (r *ReportRepo) FuelByVehicle(ctx context.Context, companyID id.ID, window reports.DateRange) ([]reports.VehicleFuelTotal, error) {
	query := `
		SELECT f.vehicle_id,
			   v.plate_number,
			   SUM(f.total_price)::float8 AS total,
			   COUNT(*) AS count
		FROM doc_fuel_purchases f
		JOIN cat_vehicles v
			ON f.vehicle_id = v.id AND v.company_id = f.company_id
		WHERE f.company_id = $1
		  AND f.operation_date >= $2 AND f.operation_date <= $3
		GROUP BY f.vehicle_id, v.plate_number
		ORDER BY total DESC
	`

	var items []reports.VehicleFuelTotal
	err := pgxscan.Select(ctx, r.querier(ctx), &items, query,
		companyID, window.Begin, window.End)
	if err != nil {
		return nil, fmt.Errorf("fuel by vehicle: %w", err)
	}

	return items, nil
}

var _ reports.Repository = (*ReportRepo)(nil)
