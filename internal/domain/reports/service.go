// Package reports implements the financial reporting engine: dashboard
// KPIs, yearly monthly breakdowns, period summaries with category
// breakdowns and trends, customer receivables and vehicle fuel rankings.
//
// Every calculator takes the company id as an explicit parameter and
// fans independent aggregations out through an error group, so a failed
// or cancelled sub-query stops the rest of the request.
package reports

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/types"
	"fleetledger/internal/domain"
)

// Config configures the report service.
type Config struct {
	Repo      Repository
	Customers domain.ExistenceChecker

	// Location is the month-grouping timezone. Defaults to
	// DefaultTimezone when nil.
	Location *time.Location

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service computes financial reports for one company at a time.
type Service struct {
	repo      Repository
	customers domain.ExistenceChecker
	resolver  *Resolver
	now       func() time.Time
}

// NewService creates a new report service.
func NewService(cfg Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
		if loc == nil {
			loc = time.UTC
		}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:      cfg.Repo,
		customers: cfg.Customers,
		resolver:  NewResolver(loc),
		now:       now,
	}
}

// Resolver exposes the date window resolver, for the HTTP layer.
func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// DashboardStats builds the KPI snapshot: all-time totals, current
// month totals and entity counts.
func (s *Service) DashboardStats(ctx context.Context, companyID id.ID) (*DashboardStats, error) {
	if id.IsNil(companyID) {
		return nil, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}

	month := s.resolver.CurrentMonth(s.now())

	var (
		allIncome, allExpense, allFuel Totals
		monIncome, monExpense, monFuel Totals
		customers, vehicles, employees int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { allIncome, err = s.repo.IncomeTotals(ctx, companyID, nil); return })
	g.Go(func() (err error) { allExpense, err = s.repo.ExpenseTotals(ctx, companyID, nil); return })
	g.Go(func() (err error) { allFuel, err = s.repo.FuelTotals(ctx, companyID, nil); return })
	g.Go(func() (err error) { monIncome, err = s.repo.IncomeTotals(ctx, companyID, &month); return })
	g.Go(func() (err error) { monExpense, err = s.repo.ExpenseTotals(ctx, companyID, &month); return })
	g.Go(func() (err error) { monFuel, err = s.repo.FuelTotals(ctx, companyID, &month); return })
	g.Go(func() (err error) { customers, err = s.repo.CountCustomers(ctx, companyID); return })
	g.Go(func() (err error) { vehicles, err = s.repo.CountVehicles(ctx, companyID); return })
	g.Go(func() (err error) { employees, err = s.repo.CountEmployees(ctx, companyID); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalIncome:         allIncome.Sum,
		TotalExpense:        allExpense.Sum,
		TotalFuel:           allFuel.Sum,
		NetProfit:           allIncome.Sum - allExpense.Sum - allFuel.Sum,
		TotalCustomers:      customers,
		TotalVehicles:       vehicles,
		TotalEmployees:      employees,
		MonthlyTransactions: monIncome.Count + monExpense.Count + monFuel.Count,
		MonthlyIncome:       monIncome.Sum,
		MonthlyExpense:      monExpense.Sum,
	}, nil
}

// DetailedSummary builds the period summary for an arbitrary window.
// Absent dates default to the current calendar month.
func (s *Service) DetailedSummary(ctx context.Context, companyID id.ID, begin, end *time.Time) (*DetailedReport, error) {
	if id.IsNil(companyID) {
		return nil, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}

	window, err := s.resolver.Resolve(s.now(), begin, end)
	if err != nil {
		return nil, err
	}
	withTrends := window.MonthsSpanned() > 1

	var (
		income, expense, fuel Totals
		byCategory            []CategoryTotal
		incomeByMonth         []MonthTotal
		expenseByMonth        []MonthTotal
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { income, err = s.repo.IncomeTotals(ctx, companyID, &window); return })
	g.Go(func() (err error) { expense, err = s.repo.ExpenseTotals(ctx, companyID, &window); return })
	g.Go(func() (err error) { fuel, err = s.repo.FuelTotals(ctx, companyID, &window); return })
	g.Go(func() (err error) { byCategory, err = s.repo.ExpenseByCategory(ctx, companyID, window); return })
	if withTrends {
		g.Go(func() (err error) { incomeByMonth, err = s.repo.IncomeByMonth(ctx, companyID, window); return })
		g.Go(func() (err error) { expenseByMonth, err = s.repo.ExpenseByMonth(ctx, companyID, window); return })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	netProfit := income.Sum - expense.Sum - fuel.Sum

	// Zero income short-circuits the margin so it never divides by zero.
	margin := 0.0
	if income.Sum > 0 {
		margin = types.Round2(netProfit / income.Sum * 100)
	}

	return &DetailedReport{
		StartDate:         window.Begin,
		EndDate:           window.End,
		TotalIncome:       income.Sum,
		TotalExpense:      expense.Sum,
		TotalFuel:         fuel.Sum,
		NetProfit:         netProfit,
		ProfitMargin:      margin,
		TotalTransactions: income.Count + expense.Count + fuel.Count,
		ExpenseBreakdown:  buildExpenseBreakdown(byCategory, expense.Sum),
		MonthlyTrends:     buildMonthlyTrends(incomeByMonth, expenseByMonth),
	}, nil
}

// buildExpenseBreakdown computes each category's share of the window's
// total expense, sorted descending by amount.
func buildExpenseBreakdown(byCategory []CategoryTotal, totalExpense float64) []ExpenseBreakdownEntry {
	entries := make([]ExpenseBreakdownEntry, 0, len(byCategory))
	for _, ct := range byCategory {
		pct := 0.0
		if totalExpense > 0 {
			pct = types.Round2(ct.Total / totalExpense * 100)
		}
		entries = append(entries, ExpenseBreakdownEntry{
			Category:   ct.Category,
			Amount:     ct.Total,
			Percentage: pct,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})
	return entries
}

// buildMonthlyTrends merges income and expense month groups into one
// chronological series with per-month profit.
func buildMonthlyTrends(income, expense []MonthTotal) []MonthlyTrendEntry {
	if len(income) == 0 && len(expense) == 0 {
		return []MonthlyTrendEntry{}
	}

	byKey := make(map[int]*MonthlyTrendEntry)
	add := func(mt MonthTotal, assign func(e *MonthlyTrendEntry, total float64)) {
		key := mt.Year*12 + mt.Month
		e, ok := byKey[key]
		if !ok {
			e = &MonthlyTrendEntry{
				Year:      mt.Year,
				Month:     mt.Month,
				MonthName: time.Month(mt.Month).String(),
			}
			byKey[key] = e
		}
		assign(e, mt.Total)
	}
	for _, mt := range income {
		add(mt, func(e *MonthlyTrendEntry, total float64) { e.Income = total })
	}
	for _, mt := range expense {
		add(mt, func(e *MonthlyTrendEntry, total float64) { e.Expense = total })
	}

	trends := make([]MonthlyTrendEntry, 0, len(byKey))
	for _, e := range byKey {
		e.Profit = e.Income - e.Expense
		trends = append(trends, *e)
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Year*12+trends[i].Month < trends[j].Year*12+trends[j].Month
	})
	return trends
}

// MonthlySummary builds the 12-slot yearly breakdown. A zero year
// defaults to the current year.
func (s *Service) MonthlySummary(ctx context.Context, companyID id.ID, year int) ([]MonthlyReportItem, error) {
	if id.IsNil(companyID) {
		return nil, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}
	if year == 0 {
		year = s.now().In(s.resolver.Location()).Year()
	}
	if year < 1 {
		return nil, apperror.NewValidation("year must be positive").WithDetail("year", year)
	}

	window := s.resolver.Year(year)

	var incomeM, expenseM, fuelM []MonthTotal
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { incomeM, err = s.repo.IncomeByMonth(ctx, companyID, window); return })
	g.Go(func() (err error) { expenseM, err = s.repo.ExpenseByMonth(ctx, companyID, window); return })
	g.Go(func() (err error) { fuelM, err = s.repo.FuelByMonth(ctx, companyID, window); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// All 12 slots exist even for a year without a single transaction.
	items := make([]MonthlyReportItem, 12)
	for i := range items {
		items[i].MonthName = time.Month(i + 1).String()
	}
	overlay := func(groups []MonthTotal, assign func(item *MonthlyReportItem, total float64)) {
		for _, mt := range groups {
			if mt.Year != year || mt.Month < 1 || mt.Month > 12 {
				continue
			}
			assign(&items[mt.Month-1], mt.Total)
		}
	}
	overlay(incomeM, func(item *MonthlyReportItem, total float64) { item.TotalIncome = total })
	overlay(expenseM, func(item *MonthlyReportItem, total float64) { item.TotalExpense = total })
	overlay(fuelM, func(item *MonthlyReportItem, total float64) { item.TotalFuel = total })

	return items, nil
}

// CustomerIncomeSummary builds a customer's receivable position for the
// current calendar month. An unknown customer is a not-found error, a
// known customer with no rows this month yields zeros.
func (s *Service) CustomerIncomeSummary(ctx context.Context, companyID, customerID id.ID) (*CustomerIncomeSummary, error) {
	if id.IsNil(companyID) {
		return nil, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}
	if id.IsNil(customerID) {
		return nil, apperror.NewValidation("customer is required").WithDetail("field", "customerId")
	}

	ok, err := s.customers.Exists(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewNotFound("customer", customerID.String())
	}

	window := s.resolver.CurrentMonth(s.now())
	totals, err := s.repo.CustomerIncomeTotals(ctx, companyID, customerID, window)
	if err != nil {
		return nil, err
	}

	return &CustomerIncomeSummary{
		CustomerID:          customerID,
		TotalInvoiced:       totals.Invoiced,
		TotalPaid:           totals.Paid,
		RemainingReceivable: totals.Invoiced - totals.Paid,
		TotalCount:          totals.UnitCount,
	}, nil
}

// VehicleFuelReport ranks vehicles by fuel spend for one month,
// descending, with grand totals over the rounded per-vehicle figures.
func (s *Service) VehicleFuelReport(ctx context.Context, companyID id.ID, year, month int) (*VehicleMonthlyFuelReport, error) {
	if id.IsNil(companyID) {
		return nil, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}
	if month < 1 || month > 12 {
		return nil, apperror.NewValidation("month must be between 1 and 12").WithDetail("month", month)
	}
	if year < 1 {
		return nil, apperror.NewValidation("year must be positive").WithDetail("year", year)
	}

	window := s.resolver.Month(year, month)
	grouped, err := s.repo.FuelByVehicle(ctx, companyID, window)
	if err != nil {
		return nil, err
	}

	monthName := time.Month(month).String()
	items := make([]VehicleMonthlyFuelReportItem, 0, len(grouped))
	for _, v := range grouped {
		items = append(items, VehicleMonthlyFuelReportItem{
			PlateNumber:      v.PlateNumber,
			TotalFuelAmount:  types.Round2(v.Total),
			TransactionCount: v.Count,
			Year:             year,
			Month:            month,
			MonthName:        monthName,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalFuelAmount > items[j].TotalFuelAmount
	})

	// Grand totals sum the rounded per-vehicle figures, so they can
	// differ from an unrounded global sum by a rounding epsilon.
	report := &VehicleMonthlyFuelReport{
		Year:      year,
		Month:     month,
		MonthName: monthName,
		Vehicles:  items,
	}
	for _, item := range items {
		report.TotalAmount += item.TotalFuelAmount
		report.TotalTransactionCount += item.TransactionCount
	}
	report.TotalAmount = types.Round2(report.TotalAmount)

	return report, nil
}
