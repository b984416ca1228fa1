package dto

import "github.com/shopspring/decimal"

// ─── Metrics ─────────────────────────────────────────────────────────────────

type CreateWellnessMetricRequest struct {
	Date             string          `json:"date"              validate:"required,datetime=2006-01-02"`
	WorkHours        decimal.Decimal `json:"work_hours"        validate:"min=0"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"    validate:"min=0"`
	StressLevel      int             `json:"stress_level"      validate:"required,min=1,max=5"`
	RestQuality      int             `json:"rest_quality"      validate:"required,min=1,max=5"`
	WorkSatisfaction int             `json:"work_satisfaction" validate:"required,min=1,max=5"`
	BalanceScore     int             `json:"balance_score"     validate:"min=0,max=100"`
	Notes            *string         `json:"notes"`
}

type UpdateWellnessMetricRequest struct {
	Date             *string          `json:"date"              validate:"omitempty,datetime=2006-01-02"`
	WorkHours        *decimal.Decimal `json:"work_hours"        validate:"omitempty,min=0"`
	OvertimeHours    *decimal.Decimal `json:"overtime_hours"    validate:"omitempty,min=0"`
	StressLevel      *int             `json:"stress_level"      validate:"omitempty,min=1,max=5"`
	RestQuality      *int             `json:"rest_quality"      validate:"omitempty,min=1,max=5"`
	WorkSatisfaction *int             `json:"work_satisfaction" validate:"omitempty,min=1,max=5"`
	BalanceScore     *int             `json:"balance_score"     validate:"omitempty,min=0,max=100"`
	Notes            *string          `json:"notes"`
}

type WellnessMetricResponse struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"`
	WorkHours        decimal.Decimal `json:"work_hours"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	StressLevel      int             `json:"stress_level"`
	RestQuality      int             `json:"rest_quality"`
	WorkSatisfaction int             `json:"work_satisfaction"`
	BalanceScore     int             `json:"balance_score"`
	Notes            *string         `json:"notes"`
	CreatedAt        string          `json:"created_at"`
}

// ─── Goals ───────────────────────────────────────────────────────────────────

type CreateWellnessGoalRequest struct {
	GoalType    string          `json:"goal_type"    validate:"required,oneof=max_weekly_hours min_rest_days min_avg_satisfaction"`
	TargetValue decimal.Decimal `json:"target_value" validate:"required"`
	StartDate   string          `json:"start_date"   validate:"required,datetime=2006-01-02"`
	EndDate     *string         `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	Notes       *string         `json:"notes"`
}

type UpdateWellnessGoalRequest struct {
	GoalType    *string          `json:"goal_type"    validate:"omitempty,oneof=max_weekly_hours min_rest_days min_avg_satisfaction"`
	TargetValue *decimal.Decimal `json:"target_value"`
	StartDate   *string          `json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool            `json:"is_active"`
	Notes       *string          `json:"notes"`
}

type WellnessGoalResponse struct {
	ID          string          `json:"id"`
	GoalType    string          `json:"goal_type"`
	TargetValue decimal.Decimal `json:"target_value"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	IsActive    bool            `json:"is_active"`
	Notes       *string         `json:"notes"`
	CreatedAt   string          `json:"created_at"`
}

// ─── Summary ─────────────────────────────────────────────────────────────────

type WellnessAverages struct {
	StressLevel      decimal.Decimal `json:"stressLevel"`
	RestQuality      decimal.Decimal `json:"restQuality"`
	WorkSatisfaction decimal.Decimal `json:"workSatisfaction"`
	BalanceScore     decimal.Decimal `json:"balanceScore"`
	TotalWorkHours   decimal.Decimal `json:"totalWorkHours"`
	TotalOvertime    decimal.Decimal `json:"totalOvertime"`
}

type GoalProgressEntry struct {
	GoalID      string          `json:"goalId"`
	GoalType    string          `json:"goalType"`
	TargetValue decimal.Decimal `json:"targetValue"`
	Progress    decimal.Decimal `json:"progress"`
}

type WellnessTrends struct {
	StressLevel      string `json:"stressLevel"`
	RestQuality      string `json:"restQuality"`
	WorkSatisfaction string `json:"workSatisfaction"`
	BalanceScore     string `json:"balanceScore"`
}

type WellnessSummaryResponse struct {
	Averages        WellnessAverages         `json:"averages"`
	GoalProgress    []GoalProgressEntry      `json:"goalProgress"`
	Trends          WellnessTrends           `json:"trends"`
	Recommendations []string                 `json:"recommendations"`
	RecentEntries   []WellnessMetricResponse `json:"recentEntries"`
}
