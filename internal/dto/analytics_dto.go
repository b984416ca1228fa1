package dto

import "github.com/shopspring/decimal"

// AnalyticsBucket is one slice of the timeframe chart: a weekday name for
// the weekly view, "Week N" for the monthly one, a month name for yearly.
type AnalyticsBucket struct {
	Label    string          `json:"label"`
	Hours    decimal.Decimal `json:"hours"`
	Earnings decimal.Decimal `json:"earnings"`
}

type ShiftTypeSlice struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AnalyticsSummary carries one average and one most-active label per
// timeframe: day for weekly, week for monthly, month for yearly.
type AnalyticsSummary struct {
	TotalHours           decimal.Decimal  `json:"totalHours"`
	TotalEarnings        decimal.Decimal  `json:"totalEarnings"`
	AverageHoursPerDay   *decimal.Decimal `json:"averageHoursPerDay,omitempty"`
	AverageHoursPerWeek  *decimal.Decimal `json:"averageHoursPerWeek,omitempty"`
	AverageHoursPerMonth *decimal.Decimal `json:"averageHoursPerMonth,omitempty"`
	MostActiveDay        string           `json:"mostActiveDay,omitempty"`
	MostActiveWeek       string           `json:"mostActiveWeek,omitempty"`
	MostActiveMonth      string           `json:"mostActiveMonth,omitempty"`
}

type AnalyticsResponse struct {
	Timeframe  string           `json:"timeframe"`
	Buckets    []AnalyticsBucket `json:"buckets"`
	Summary    AnalyticsSummary `json:"summary"`
	ShiftTypes []ShiftTypeSlice `json:"shiftTypes"`
	Insights   string           `json:"insights"`
}
