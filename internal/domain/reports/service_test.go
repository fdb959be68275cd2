package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
)

// fakeRepo aggregates in-memory rows the same way the SQL layer does,
// so the calculators can be exercised without a database.
type fakeRepo struct {
	incomes  []incomeRow
	expenses []expenseRow
	fuels    []fuelRow

	customerCount int64
	vehicleCount  int64
	employeeCount int64

	// vehicle id -> plate; fuel rows without an entry drop out of the
	// per-vehicle report, mirroring the inner join
	plates map[id.ID]string

	// expenseErr forces the expense aggregator to fail
	expenseErr error
}

type incomeRow struct {
	company  id.ID
	customer id.ID
	date     time.Time
	amount   float64
	units    int64
	paid     bool
}

type expenseRow struct {
	company  id.ID
	date     time.Time
	amount   float64
	category string
}

type fuelRow struct {
	company id.ID
	vehicle id.ID
	date    time.Time
	amount  float64
}

func inWindow(date time.Time, window *DateRange) bool {
	if window == nil {
		return true
	}
	return !date.Before(window.Begin) && !date.After(window.End)
}

func (f *fakeRepo) IncomeTotals(ctx context.Context, companyID id.ID, window *DateRange) (Totals, error) {
	if err := ctx.Err(); err != nil {
		return Totals{}, err
	}
	var t Totals
	for _, r := range f.incomes {
		if r.company == companyID && inWindow(r.date, window) {
			t.Sum += r.amount
			t.Count++
		}
	}
	return t, nil
}

func (f *fakeRepo) ExpenseTotals(ctx context.Context, companyID id.ID, window *DateRange) (Totals, error) {
	if err := ctx.Err(); err != nil {
		return Totals{}, err
	}
	if f.expenseErr != nil {
		return Totals{}, f.expenseErr
	}
	var t Totals
	for _, r := range f.expenses {
		if r.company == companyID && inWindow(r.date, window) {
			t.Sum += r.amount
			t.Count++
		}
	}
	return t, nil
}

func (f *fakeRepo) FuelTotals(ctx context.Context, companyID id.ID, window *DateRange) (Totals, error) {
	if err := ctx.Err(); err != nil {
		return Totals{}, err
	}
	var t Totals
	for _, r := range f.fuels {
		if r.company == companyID && inWindow(r.date, window) {
			t.Sum += r.amount
			t.Count++
		}
	}
	return t, nil
}

func (f *fakeRepo) CountCustomers(_ context.Context, _ id.ID) (int64, error) {
	return f.customerCount, nil
}

func (f *fakeRepo) CountVehicles(_ context.Context, _ id.ID) (int64, error) {
	return f.vehicleCount, nil
}

func (f *fakeRepo) CountEmployees(_ context.Context, _ id.ID) (int64, error) {
	return f.employeeCount, nil
}

func (f *fakeRepo) ExpenseByCategory(_ context.Context, companyID id.ID, window DateRange) ([]CategoryTotal, error) {
	sums := map[string]float64{}
	for _, r := range f.expenses {
		if r.company == companyID && inWindow(r.date, &window) {
			sums[r.category] += r.amount
		}
	}
	out := make([]CategoryTotal, 0, len(sums))
	for cat, total := range sums {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	return out, nil
}

func groupByMonth[T any](rows []T, match func(T) (time.Time, float64, bool)) []MonthTotal {
	sums := map[int]float64{}
	for _, r := range rows {
		date, amount, ok := match(r)
		if !ok {
			continue
		}
		sums[date.Year()*12+int(date.Month())] += amount
	}
	out := make([]MonthTotal, 0, len(sums))
	for key, total := range sums {
		out = append(out, MonthTotal{Year: (key - 1) / 12, Month: (key-1)%12 + 1, Total: total})
	}
	return out
}

func (f *fakeRepo) IncomeByMonth(_ context.Context, companyID id.ID, window DateRange) ([]MonthTotal, error) {
	return groupByMonth(f.incomes, func(r incomeRow) (time.Time, float64, bool) {
		return r.date, r.amount, r.company == companyID && inWindow(r.date, &window)
	}), nil
}

func (f *fakeRepo) ExpenseByMonth(_ context.Context, companyID id.ID, window DateRange) ([]MonthTotal, error) {
	return groupByMonth(f.expenses, func(r expenseRow) (time.Time, float64, bool) {
		return r.date, r.amount, r.company == companyID && inWindow(r.date, &window)
	}), nil
}

func (f *fakeRepo) FuelByMonth(_ context.Context, companyID id.ID, window DateRange) ([]MonthTotal, error) {
	return groupByMonth(f.fuels, func(r fuelRow) (time.Time, float64, bool) {
		return r.date, r.amount, r.company == companyID && inWindow(r.date, &window)
	}), nil
}

func (f *fakeRepo) CustomerIncomeTotals(_ context.Context, companyID, customerID id.ID, window DateRange) (CustomerTotals, error) {
	var t CustomerTotals
	for _, r := range f.incomes {
		if r.company != companyID || r.customer != customerID || !inWindow(r.date, &window) {
			continue
		}
		t.Invoiced += r.amount
		t.UnitCount += r.units
		if r.paid {
			t.Paid += r.amount
		}
	}
	return t, nil
}

func (f *fakeRepo) FuelByVehicle(_ context.Context, companyID id.ID, window DateRange) ([]VehicleFuelTotal, error) {
	grouped := map[id.ID]*VehicleFuelTotal{}
	for _, r := range f.fuels {
		if r.company != companyID || !inWindow(r.date, &window) {
			continue
		}
		plate, ok := f.plates[r.vehicle]
		if !ok {
			continue
		}
		v, ok := grouped[r.vehicle]
		if !ok {
			v = &VehicleFuelTotal{VehicleID: r.vehicle, PlateNumber: plate}
			grouped[r.vehicle] = v
		}
		v.Total += r.amount
		v.Count++
	}
	out := make([]VehicleFuelTotal, 0, len(grouped))
	for _, v := range grouped {
		out = append(out, *v)
	}
	return out, nil
}

// fakeCustomers is the existence checker backing the receivable report.
type fakeCustomers struct {
	known map[id.ID]id.ID // customer -> owning company
}

func (f *fakeCustomers) Exists(_ context.Context, companyID, entityID id.ID) (bool, error) {
	owner, ok := f.known[entityID]
	return ok && owner == companyID, nil
}

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepo, customers *fakeCustomers) *Service {
	if customers == nil {
		customers = &fakeCustomers{}
	}
	return NewService(Config{
		Repo:      repo,
		Customers: customers,
		Location:  time.UTC,
		Now:       func() time.Time { return testNow },
	})
}

func june(day int) time.Time {
	return time.Date(2024, time.June, day, 10, 0, 0, 0, time.UTC)
}

func TestDashboardStats(t *testing.T) {
	company := id.New()
	other := id.New()

	repo := &fakeRepo{
		incomes: []incomeRow{
			{company: company, date: june(5), amount: 1000},
			{company: company, date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), amount: 500},
			{company: other, date: june(5), amount: 99999},
		},
		expenses: []expenseRow{
			{company: company, date: june(6), amount: 200},
		},
		fuels: []fuelRow{
			{company: company, date: june(7), amount: 100},
		},
		customerCount: 3,
		vehicleCount:  2,
		employeeCount: 5,
	}
	svc := newTestService(repo, nil)

	stats, err := svc.DashboardStats(context.Background(), company)
	require.NoError(t, err)

	assert.Equal(t, 1500.0, stats.TotalIncome)
	assert.Equal(t, 200.0, stats.TotalExpense)
	assert.Equal(t, 100.0, stats.TotalFuel)
	assert.Equal(t, stats.TotalIncome-stats.TotalExpense-stats.TotalFuel, stats.NetProfit)
	assert.Equal(t, int64(3), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.TotalVehicles)
	assert.Equal(t, int64(5), stats.TotalEmployees)
	// January income is outside the current month
	assert.Equal(t, 1000.0, stats.MonthlyIncome)
	assert.Equal(t, 200.0, stats.MonthlyExpense)
	assert.Equal(t, int64(3), stats.MonthlyTransactions)
}

func TestDashboardStatsEmptyCompany(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	stats, err := svc.DashboardStats(context.Background(), id.New())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalIncome)
	assert.Zero(t, stats.NetProfit)
	assert.Zero(t, stats.MonthlyTransactions)
}

func TestDashboardStatsRequiresCompany(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	_, err := svc.DashboardStats(context.Background(), id.Nil())
	assert.True(t, apperror.IsValidation(err))
}

func TestDashboardStatsPropagatesAggregatorError(t *testing.T) {
	repo := &fakeRepo{expenseErr: errors.New("connection reset by peer")}
	svc := newTestService(repo, nil)

	stats, err := svc.DashboardStats(context.Background(), id.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset by peer")
	// one failed aggregate must fail the whole snapshot, never a partial one
	assert.Nil(t, stats)
}

func TestDashboardStatsHonorsCancelledContext(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := svc.DashboardStats(ctx, id.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, stats)
}

func TestDetailedSummary(t *testing.T) {
	company := id.New()

	t.Run("expense breakdown percentages", func(t *testing.T) {
		repo := &fakeRepo{
			expenses: []expenseRow{
				{company: company, date: june(3), amount: 300, category: "Fuel"},
				{company: company, date: june(4), amount: 100, category: "Maintenance"},
			},
		}
		svc := newTestService(repo, nil)

		rep, err := svc.DetailedSummary(context.Background(), company, datePtr(2024, time.June, 1), datePtr(2024, time.June, 30))
		require.NoError(t, err)

		require.Len(t, rep.ExpenseBreakdown, 2)
		assert.Equal(t, ExpenseBreakdownEntry{Category: "Fuel", Amount: 300, Percentage: 75}, rep.ExpenseBreakdown[0])
		assert.Equal(t, ExpenseBreakdownEntry{Category: "Maintenance", Amount: 100, Percentage: 25}, rep.ExpenseBreakdown[1])

		var pctSum float64
		for _, e := range rep.ExpenseBreakdown {
			pctSum += e.Percentage
		}
		assert.InDelta(t, 100, pctSum, 0.1)
	})

	t.Run("empty window yields zeros not errors", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		rep, err := svc.DetailedSummary(context.Background(), company, nil, nil)
		require.NoError(t, err)

		assert.Zero(t, rep.NetProfit)
		assert.Zero(t, rep.ProfitMargin)
		assert.Empty(t, rep.ExpenseBreakdown)
		assert.Empty(t, rep.MonthlyTrends)
	})

	t.Run("profit margin short-circuits on zero income", func(t *testing.T) {
		repo := &fakeRepo{
			expenses: []expenseRow{{company: company, date: june(3), amount: 500, category: "Rent"}},
		}
		svc := newTestService(repo, nil)

		rep, err := svc.DetailedSummary(context.Background(), company, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, -500.0, rep.NetProfit)
		assert.Zero(t, rep.ProfitMargin)
	})

	t.Run("profit margin rounds to two decimals", func(t *testing.T) {
		repo := &fakeRepo{
			incomes:  []incomeRow{{company: company, date: june(1), amount: 300}},
			expenses: []expenseRow{{company: company, date: june(2), amount: 100, category: "Rent"}},
		}
		svc := newTestService(repo, nil)

		rep, err := svc.DetailedSummary(context.Background(), company, nil, nil)
		require.NoError(t, err)

		// 200/300 = 66.666...
		assert.Equal(t, 66.67, rep.ProfitMargin)
	})

	t.Run("trends omitted for single-month windows", func(t *testing.T) {
		repo := &fakeRepo{
			incomes: []incomeRow{{company: company, date: june(1), amount: 100}},
		}
		svc := newTestService(repo, nil)

		rep, err := svc.DetailedSummary(context.Background(), company, datePtr(2024, time.June, 1), datePtr(2024, time.June, 30))
		require.NoError(t, err)
		assert.Empty(t, rep.MonthlyTrends)
	})

	t.Run("trends cover multi-month windows chronologically", func(t *testing.T) {
		repo := &fakeRepo{
			incomes: []incomeRow{
				{company: company, date: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC), amount: 400},
				{company: company, date: time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC), amount: 600},
			},
			expenses: []expenseRow{
				{company: company, date: time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC), amount: 150, category: "Rent"},
			},
		}
		svc := newTestService(repo, nil)

		rep, err := svc.DetailedSummary(context.Background(), company, datePtr(2024, time.April, 1), datePtr(2024, time.May, 31))
		require.NoError(t, err)

		require.Len(t, rep.MonthlyTrends, 2)
		assert.Equal(t, "April", rep.MonthlyTrends[0].MonthName)
		assert.Equal(t, 400.0, rep.MonthlyTrends[0].Income)
		assert.Equal(t, 400.0, rep.MonthlyTrends[0].Profit)
		assert.Equal(t, "May", rep.MonthlyTrends[1].MonthName)
		assert.Equal(t, 600.0, rep.MonthlyTrends[1].Income)
		assert.Equal(t, 150.0, rep.MonthlyTrends[1].Expense)
		assert.Equal(t, 450.0, rep.MonthlyTrends[1].Profit)
	})

	t.Run("invalid range is a typed error", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		_, err := svc.DetailedSummary(context.Background(), company, datePtr(2024, time.June, 20), datePtr(2024, time.June, 1))
		assert.True(t, apperror.IsInvalidDateRange(err))
	})

	t.Run("aggregator error fails the whole report", func(t *testing.T) {
		repo := &fakeRepo{expenseErr: errors.New("query timeout")}
		svc := newTestService(repo, nil)

		rep, err := svc.DetailedSummary(context.Background(), company, nil, nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "query timeout")
		assert.Nil(t, rep)
	})

	t.Run("cancelled context stops the fan-out", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rep, err := svc.DetailedSummary(ctx, company, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, rep)
	})
}

func TestMonthlySummary(t *testing.T) {
	company := id.New()

	repo := &fakeRepo{
		incomes: []incomeRow{
			{company: company, date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), amount: 1000},
			{company: company, date: time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC), amount: 777},
		},
		expenses: []expenseRow{
			{company: company, date: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), amount: 50, category: "Rent"},
		},
		fuels: []fuelRow{
			{company: company, date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), amount: 20},
		},
	}
	svc := newTestService(repo, nil)

	items, err := svc.MonthlySummary(context.Background(), company, 2024)
	require.NoError(t, err)

	require.Len(t, items, 12)
	assert.Equal(t, "January", items[0].MonthName)
	assert.Equal(t, "December", items[11].MonthName)

	assert.Equal(t, 20.0, items[0].TotalFuel)
	// 2023 income must not bleed into the 2024 report
	assert.Equal(t, 1000.0, items[2].TotalIncome)
	assert.Equal(t, 50.0, items[11].TotalExpense)
	assert.Zero(t, items[6].TotalIncome)
}

func TestMonthlySummaryEmptyYear(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	items, err := svc.MonthlySummary(context.Background(), id.New(), 2019)
	require.NoError(t, err)

	require.Len(t, items, 12)
	for _, item := range items {
		assert.Zero(t, item.TotalIncome)
		assert.Zero(t, item.TotalExpense)
		assert.Zero(t, item.TotalFuel)
	}
}

func TestMonthlySummaryDefaultsToCurrentYear(t *testing.T) {
	company := id.New()
	repo := &fakeRepo{
		incomes: []incomeRow{{company: company, date: june(1), amount: 10}},
	}
	svc := newTestService(repo, nil)

	items, err := svc.MonthlySummary(context.Background(), company, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, items[5].TotalIncome)
}

func TestCustomerIncomeSummary(t *testing.T) {
	company := id.New()
	customer := id.New()
	customers := &fakeCustomers{known: map[id.ID]id.ID{customer: company}}

	t.Run("invoiced, paid and receivable", func(t *testing.T) {
		repo := &fakeRepo{
			incomes: []incomeRow{
				{company: company, customer: customer, date: june(3), amount: 1000, units: 4, paid: true},
				{company: company, customer: customer, date: june(10), amount: 500, units: 2, paid: false},
				// other customer, must not count
				{company: company, customer: id.New(), date: june(11), amount: 5000, units: 1, paid: false},
				// previous month, must not count
				{company: company, customer: customer, date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), amount: 800, units: 1, paid: false},
			},
		}
		svc := newTestService(repo, customers)

		sum, err := svc.CustomerIncomeSummary(context.Background(), company, customer)
		require.NoError(t, err)

		assert.Equal(t, customer, sum.CustomerID)
		assert.Equal(t, 1500.0, sum.TotalInvoiced)
		assert.Equal(t, 1000.0, sum.TotalPaid)
		assert.Equal(t, 500.0, sum.RemainingReceivable)
		assert.Equal(t, int64(6), sum.TotalCount)
	})

	t.Run("inactive customer yields zeros", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, customers)

		sum, err := svc.CustomerIncomeSummary(context.Background(), company, customer)
		require.NoError(t, err)
		assert.Zero(t, sum.TotalInvoiced)
		assert.Zero(t, sum.RemainingReceivable)
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, customers)

		_, err := svc.CustomerIncomeSummary(context.Background(), company, id.New())
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("customer of another company is not found", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, customers)

		_, err := svc.CustomerIncomeSummary(context.Background(), id.New(), customer)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestVehicleFuelReport(t *testing.T) {
	company := id.New()
	v1 := id.New()
	v2 := id.New()
	orphan := id.New()

	repo := &fakeRepo{
		fuels: []fuelRow{
			{company: company, vehicle: v1, date: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), amount: 100},
			{company: company, vehicle: v1, date: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), amount: 150},
			{company: company, vehicle: v2, date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), amount: 50},
			// vehicle no longer resolves, row drops out
			{company: company, vehicle: orphan, date: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), amount: 999},
			// outside the month
			{company: company, vehicle: v1, date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), amount: 75},
		},
		plates: map[id.ID]string{v1: "V1", v2: "V2"},
	}
	svc := newTestService(repo, nil)

	rep, err := svc.VehicleFuelReport(context.Background(), company, 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, 2024, rep.Year)
	assert.Equal(t, 3, rep.Month)
	assert.Equal(t, "March", rep.MonthName)

	require.Len(t, rep.Vehicles, 2)
	assert.Equal(t, "V1", rep.Vehicles[0].PlateNumber)
	assert.Equal(t, 250.0, rep.Vehicles[0].TotalFuelAmount)
	assert.Equal(t, int64(2), rep.Vehicles[0].TransactionCount)
	assert.Equal(t, "V2", rep.Vehicles[1].PlateNumber)
	assert.Equal(t, 50.0, rep.Vehicles[1].TotalFuelAmount)
	assert.Equal(t, int64(1), rep.Vehicles[1].TransactionCount)

	assert.Equal(t, 300.0, rep.TotalAmount)
	assert.Equal(t, int64(3), rep.TotalTransactionCount)

	var countSum int64
	for _, v := range rep.Vehicles {
		countSum += v.TransactionCount
	}
	assert.Equal(t, countSum, rep.TotalTransactionCount)
}

func TestVehicleFuelReportValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	_, err := svc.VehicleFuelReport(context.Background(), id.New(), 2024, 0)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.VehicleFuelReport(context.Background(), id.New(), 2024, 13)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.VehicleFuelReport(context.Background(), id.New(), 0, 5)
	assert.True(t, apperror.IsValidation(err))
}

func TestCrossTenantIsolation(t *testing.T) {
	companyA := id.New()
	companyB := id.New()

	repo := &fakeRepo{
		incomes: []incomeRow{
			{company: companyA, date: june(2), amount: 100},
			{company: companyB, date: june(2), amount: 900},
		},
		expenses: []expenseRow{
			{company: companyA, date: june(3), amount: 40, category: "Rent"},
			{company: companyB, date: june(3), amount: 400, category: "Rent"},
		},
		fuels: []fuelRow{
			{company: companyA, date: june(4), amount: 10},
			{company: companyB, date: june(4), amount: 90},
		},
	}
	svc := newTestService(repo, nil)

	repA, err := svc.DetailedSummary(context.Background(), companyA, nil, nil)
	require.NoError(t, err)
	repB, err := svc.DetailedSummary(context.Background(), companyB, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, repA.TotalIncome)
	assert.Equal(t, 40.0, repA.TotalExpense)
	assert.Equal(t, 10.0, repA.TotalFuel)

	assert.Equal(t, 900.0, repB.TotalIncome)
	assert.Equal(t, 400.0, repB.TotalExpense)
	assert.Equal(t, 90.0, repB.TotalFuel)
}
