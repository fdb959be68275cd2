// Package export renders report results into downloadable workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"fleetledger/internal/domain/reports"
)

const summarySheet = "Financial Summary"

// ExcelExporter renders reports as xlsx workbooks.
type ExcelExporter struct{}

// NewExcelExporter creates a new exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// FinancialSummary renders a detailed report into a workbook.
func (e *ExcelExporter) FinancialSummary(rep *reports.DetailedReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	rows := [][]any{
		{"Period", fmt.Sprintf("%s - %s", rep.StartDate.Format("2006-01-02"), rep.EndDate.Format("2006-01-02"))},
		{},
		{"Total Income", rep.TotalIncome},
		{"Total Expense", rep.TotalExpense},
		{"Total Fuel", rep.TotalFuel},
		{"Net Profit", rep.NetProfit},
		{"Profit Margin (%)", rep.ProfitMargin},
		{"Transactions", rep.TotalTransactions},
	}
	row := 1
	for _, r := range rows {
		if len(r) > 0 {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
		row++
	}

	if len(rep.ExpenseBreakdown) > 0 {
		row++
		if err := e.writeSection(f, header, &row, "Expense Breakdown",
			[]any{"Category", "Amount", "Percentage"},
			len(rep.ExpenseBreakdown),
			func(i int) []any {
				b := rep.ExpenseBreakdown[i]
				return []any{b.Category, b.Amount, b.Percentage}
			},
		); err != nil {
			return nil, err
		}
	}

	if len(rep.MonthlyTrends) > 0 {
		row++
		if err := e.writeSection(f, header, &row, "Monthly Trends",
			[]any{"Month", "Income", "Expense", "Profit"},
			len(rep.MonthlyTrends),
			func(i int) []any {
				t := rep.MonthlyTrends[i]
				return []any{fmt.Sprintf("%s %d", t.MonthName, t.Year), t.Income, t.Expense, t.Profit}
			},
		); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf, nil
}

func (e *ExcelExporter) writeSection(
	f *excelize.File,
	headerStyle int,
	row *int,
	title string,
	columns []any,
	n int,
	rowAt func(i int) []any,
) error {
	titleCell, _ := excelize.CoordinatesToCellName(1, *row)
	if err := f.SetCellValue(summarySheet, titleCell, title); err != nil {
		return fmt.Errorf("write section title: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, titleCell, titleCell, headerStyle); err != nil {
		return fmt.Errorf("style section title: %w", err)
	}
	*row++

	headCell, _ := excelize.CoordinatesToCellName(1, *row)
	if err := f.SetSheetRow(summarySheet, headCell, &columns); err != nil {
		return fmt.Errorf("write section header: %w", err)
	}
	*row++

	for i := 0; i < n; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, *row)
		values := rowAt(i)
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("write section row: %w", err)
		}
		*row++
	}

	return nil
}
