package dto

// Report query parameters. Report responses are serialized straight
// from the reports package types, which carry their own json tags.

// DetailedSummaryRequest holds the optional reporting window.
// Dates use the YYYY-MM-DD wire format; both must be supplied together.
type DetailedSummaryRequest struct {
	BeginDate string `form:"beginDate"`
	EndDate   string `form:"endDate"`
}

// MonthlySummaryRequest selects the report year. Zero means the
// current year.
type MonthlySummaryRequest struct {
	Year int `form:"year"`
}

// VehicleFuelReportRequest selects the report month.
type VehicleFuelReportRequest struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}
