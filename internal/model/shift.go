package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shift is a single recorded work session.
// Date is an ISO date (YYYY-MM-DD); StartTime/EndTime are wall-clock times
// (HH:MM or HH:MM:SS). TotalPay is derived at write time:
// (end - start - break) * rate — see paycalc.WorkedHours for the overnight
// policy. It is recomputed whenever any of the four inputs changes.
type Shift struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date       string          `gorm:"type:date;not null;index"`
	StartTime  string          `gorm:"type:time;not null"`
	EndTime    string          `gorm:"type:time;not null"`
	BreakTime  decimal.Decimal `gorm:"type:decimal(5,2);not null"` // hours
	HourlyRate decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	TotalPay   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Notes      *string
	CreatedAt  time.Time

	User *User `gorm:"foreignKey:UserID"`
}
