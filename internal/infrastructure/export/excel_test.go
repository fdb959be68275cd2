package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fleetledger/internal/domain/reports"
)

func TestFinancialSummary(t *testing.T) {
	rep := &reports.DetailedReport{
		StartDate:         time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
		TotalIncome:       1000,
		TotalExpense:      400,
		TotalFuel:         100,
		NetProfit:         500,
		ProfitMargin:      50,
		TotalTransactions: 7,
		ExpenseBreakdown: []reports.ExpenseBreakdownEntry{
			{Category: "Fuel", Amount: 300, Percentage: 75},
			{Category: "Maintenance", Amount: 100, Percentage: 25},
		},
		MonthlyTrends: []reports.MonthlyTrendEntry{
			{Year: 2024, Month: 4, MonthName: "April", Income: 400, Expense: 150, Profit: 250},
			{Year: 2024, Month: 5, MonthName: "May", Income: 600, Expense: 250, Profit: 350},
		},
	}

	buf, err := NewExcelExporter().FinancialSummary(rep)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Financial Summary")

	income, err := f.GetCellValue("Financial Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1000", income)

	rows, err := f.GetRows("Financial Summary")
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.Contains(t, flat, "Expense Breakdown")
	assert.Contains(t, flat, "Maintenance")
	assert.Contains(t, flat, "Monthly Trends")
	assert.Contains(t, flat, "April 2024")
}

func TestFinancialSummaryEmptyReport(t *testing.T) {
	buf, err := NewExcelExporter().FinancialSummary(&reports.DetailedReport{
		StartDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Financial Summary")
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.NotContains(t, flat, "Expense Breakdown")
	assert.NotContains(t, flat, "Monthly Trends")
}
