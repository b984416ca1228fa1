package dto

import "github.com/shopspring/decimal"

type CreatePayScheduleRequest struct {
	PayDate     string          `json:"pay_date"     validate:"required,datetime=2006-01-02"`
	PeriodStart string          `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string          `json:"period_end"   validate:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount"       validate:"required"`
	Status      string          `json:"status"       validate:"omitempty,oneof=pending paid delayed"`
	Notes       *string         `json:"notes"`
}

type UpdatePayScheduleRequest struct {
	PayDate     *string          `json:"pay_date"     validate:"omitempty,datetime=2006-01-02"`
	PeriodStart *string          `json:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd   *string          `json:"period_end"   validate:"omitempty,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount"`
	Status      *string          `json:"status"       validate:"omitempty,oneof=pending paid delayed"`
	Notes       *string          `json:"notes"`
}

type PayScheduleResponse struct {
	ID          string          `json:"id"`
	PayDate     string          `json:"pay_date"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Notes       *string         `json:"notes"`
	CreatedAt   string          `json:"created_at"`
}
