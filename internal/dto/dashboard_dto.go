package dto

import "github.com/shopspring/decimal"

type DashboardFilter struct {
	Period string `form:"period,default=weekly" validate:"oneof=weekly monthly"`
}

// ChartPoint is one bucket of the dashboard chart: a day for the weekly
// period, a week for the monthly one.
type ChartPoint struct {
	Label string          `json:"label"`
	Hours decimal.Decimal `json:"hours"`
	Pay   decimal.Decimal `json:"pay"`
}

// NextShift carries a human label (Today, Tomorrow, or a weekday name).
type NextShift struct {
	Label     string `json:"label"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type DashboardSummary struct {
	WeeklyHours decimal.Decimal `json:"weeklyHours"`
	WeeklyPay   decimal.Decimal `json:"weeklyPay"`
	NextShift   *NextShift      `json:"nextShift"`
}

type DashboardDataResponse struct {
	Period  string           `json:"period"`
	Chart   []ChartPoint     `json:"chart"`
	Summary DashboardSummary `json:"summary"`
}

type AISummaryResponse struct {
	Summary string `json:"summary"`
}

type ProcessNotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type ProcessNotesResponse struct {
	ProcessedNotes string `json:"processedNotes"`
}
