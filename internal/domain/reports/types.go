package reports

import (
	"time"

	"fleetledger/internal/core/id"
)

// DashboardStats is the KPI snapshot shown on the landing dashboard.
// Totals are all-time; the monthly* figures cover the current calendar
// month only. NetProfit is derived from the all-time totals.
type DashboardStats struct {
	TotalIncome         float64 `json:"totalIncome"`
	TotalExpense        float64 `json:"totalExpense"`
	TotalFuel           float64 `json:"totalFuel"`
	NetProfit           float64 `json:"netProfit"`
	TotalCustomers      int64   `json:"totalCustomers"`
	TotalVehicles       int64   `json:"totalVehicles"`
	TotalEmployees      int64   `json:"totalEmployees"`
	MonthlyTransactions int64   `json:"monthlyTransactions"`
	MonthlyIncome       float64 `json:"monthlyIncome"`
	MonthlyExpense      float64 `json:"monthlyExpense"`
}

// ExpenseBreakdownEntry is one category's share of a period's expense.
type ExpenseBreakdownEntry struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// MonthlyTrendEntry is one calendar month's income/expense/profit triple.
type MonthlyTrendEntry struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"monthName"`
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
	Profit    float64 `json:"profit"`
}

// DetailedReport is the period summary for an arbitrary date window.
type DetailedReport struct {
	StartDate         time.Time               `json:"startDate"`
	EndDate           time.Time               `json:"endDate"`
	TotalIncome       float64                 `json:"totalIncome"`
	TotalExpense      float64                 `json:"totalExpense"`
	TotalFuel         float64                 `json:"totalFuel"`
	NetProfit         float64                 `json:"netProfit"`
	ProfitMargin      float64                 `json:"profitMargin"`
	TotalTransactions int64                   `json:"totalTransactions"`
	ExpenseBreakdown  []ExpenseBreakdownEntry `json:"expenseBreakdown"`
	MonthlyTrends     []MonthlyTrendEntry     `json:"monthlyTrends"`
}

// MonthlyReportItem is one month's slot in the yearly breakdown.
// The yearly report always carries 12 of these, January through
// December, zero-filled for months without transactions.
type MonthlyReportItem struct {
	MonthName    string  `json:"monthName"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	TotalFuel    float64 `json:"totalFuel"`
}

// CustomerIncomeSummary is a customer's receivable position for the
// current calendar month.
type CustomerIncomeSummary struct {
	CustomerID          id.ID   `json:"customerId"`
	TotalInvoiced       float64 `json:"totalInvoiced"`
	TotalPaid           float64 `json:"totalPaid"`
	RemainingReceivable float64 `json:"remainingReceivable"`
	TotalCount          int64   `json:"totalCount"`
}

// VehicleMonthlyFuelReportItem is one vehicle's fuel spend for a month.
type VehicleMonthlyFuelReportItem struct {
	PlateNumber      string  `json:"plateNumber"`
	TotalFuelAmount  float64 `json:"totalFuelAmount"`
	TransactionCount int64   `json:"transactionCount"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	MonthName        string  `json:"monthName"`
}

// VehicleMonthlyFuelReport ranks vehicles by fuel spend for a month.
type VehicleMonthlyFuelReport struct {
	Year                  int                            `json:"year"`
	Month                 int                            `json:"month"`
	MonthName             string                         `json:"monthName"`
	Vehicles              []VehicleMonthlyFuelReportItem `json:"vehicles"`
	TotalAmount           float64                        `json:"totalAmount"`
	TotalTransactionCount int64                          `json:"totalTransactionCount"`
}
