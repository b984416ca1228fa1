package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaySchedule tracks an expected payout for a period of work.
// Status: "pending" | "paid" | "delayed". Independent of Shift rows.
type PaySchedule struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayDate     string          `gorm:"type:date;not null"`
	PeriodStart string          `gorm:"type:date;not null"`
	PeriodEnd   string          `gorm:"type:date;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes       *string
	CreatedAt   time.Time
}
