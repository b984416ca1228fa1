package dto

import "github.com/shopspring/decimal"

type CreateShiftRequest struct {
	Date       string          `json:"date"        validate:"required,datetime=2006-01-02"`
	StartTime  string          `json:"start_time"  validate:"required"`
	EndTime    string          `json:"end_time"    validate:"required"`
	BreakTime  decimal.Decimal `json:"break_time"  validate:"min=0"`
	HourlyRate decimal.Decimal `json:"hourly_rate" validate:"required"`
	Notes      *string         `json:"notes"`
}

type UpdateShiftRequest struct {
	Date       *string          `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	StartTime  *string          `json:"start_time"`
	EndTime    *string          `json:"end_time"`
	BreakTime  *decimal.Decimal `json:"break_time"  validate:"omitempty,min=0"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Notes      *string          `json:"notes"`
}

type ShiftResponse struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	BreakTime  decimal.Decimal `json:"break_time"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	TotalPay   decimal.Decimal `json:"total_pay"`
	Notes      *string         `json:"notes"`
	CreatedAt  string          `json:"created_at"`
}
