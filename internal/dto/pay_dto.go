package dto

import "github.com/shopspring/decimal"

// ─── Query filters ───────────────────────────────────────────────────────────

type DailyPayFilter struct {
	Date string `form:"date" validate:"required,datetime=2006-01-02"`
}

type WeeklyPayFilter struct {
	WeekStart string `form:"week_start" validate:"required,datetime=2006-01-02"`
}

type MonthlyPayFilter struct {
	Month int `form:"month" validate:"required,min=1,max=12"`
	Year  int `form:"year"  validate:"required,min=2000,max=2100"`
}

type YearlyPayFilter struct {
	Year int `form:"year" validate:"required,min=2000,max=2100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type DailyPayResponse struct {
	Total decimal.Decimal `json:"total"`
	Hours decimal.Decimal `json:"hours"`
}

// DayPay is one calendar day inside the weekly breakdown.
type DayPay struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
	Hours decimal.Decimal `json:"hours"`
}

type WeeklyPayResponse struct {
	Total decimal.Decimal `json:"total"`
	Hours decimal.Decimal `json:"hours"`
	Days  []DayPay        `json:"days"`
}

type MonthlyPayResponse struct {
	Total decimal.Decimal `json:"total"`
	Hours decimal.Decimal `json:"hours"`
}

type MonthPay struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
	Hours decimal.Decimal `json:"hours"`
}

type YearlyPayResponse struct {
	Year       int             `json:"year"`
	TotalPay   decimal.Decimal `json:"totalPay"`
	TotalHours decimal.Decimal `json:"totalHours"`
	Months     []MonthPay      `json:"months"`
}
