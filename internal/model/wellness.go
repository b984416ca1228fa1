package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WellnessMetric is a daily self-reported wellbeing entry.
// StressLevel, RestQuality and WorkSatisfaction are 1–5 ratings;
// BalanceScore is a 0–100 composite.
type WellnessMetric struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date             string          `gorm:"type:date;not null;index"`
	WorkHours        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	OvertimeHours    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	StressLevel      int             `gorm:"not null"`
	RestQuality      int             `gorm:"not null"`
	WorkSatisfaction int             `gorm:"not null"`
	BalanceScore     int             `gorm:"not null"`
	Notes            *string
	CreatedAt        time.Time
}

// WellnessGoal is a target the user tracks progress against.
// GoalType: "max_weekly_hours" | "min_rest_days" | "min_avg_satisfaction".
// The progress formula is goal-type specific — see paycalc.GoalProgress.
type WellnessGoal struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	GoalType    string          `gorm:"type:varchar(40);not null"`
	TargetValue decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	StartDate   string          `gorm:"type:date;not null"`
	EndDate     *string         `gorm:"type:date"`
	IsActive    bool            `gorm:"not null;default:true"`
	Notes       *string
	CreatedAt   time.Time
}
