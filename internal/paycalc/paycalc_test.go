package paycalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestWorkedHours_StandardShift(t *testing.T) {
	hours, err := WorkedHours("09:00", "17:00", dec("0.5"))
	require.NoError(t, err)
	assert.True(t, hours.Equal(dec("7.5")), "got %s", hours)
}

func TestWorkedHours_WithSeconds(t *testing.T) {
	hours, err := WorkedHours("09:00:00", "17:30:00", dec("1"))
	require.NoError(t, err)
	assert.True(t, hours.Equal(dec("7.5")), "got %s", hours)
}

func TestWorkedHours_Overnight(t *testing.T) {
	// 22:00 → 06:00 crosses midnight: 8h minus 1h break
	hours, err := WorkedHours("22:00", "06:00", dec("1"))
	require.NoError(t, err)
	assert.True(t, hours.Equal(dec("7")), "got %s", hours)
}

func TestWorkedHours_InvalidClock(t *testing.T) {
	_, err := WorkedHours("9am", "17:00", decimal.Zero)
	assert.Error(t, err)
}

func TestTotalPay_ExampleScenario(t *testing.T) {
	// 09:00–17:00 with 0.5h break at 16.00/h → 7.5h, 120.00
	hours, err := WorkedHours("09:00", "17:00", dec("0.5"))
	require.NoError(t, err)
	pay := TotalPay(hours, dec("16.00"))
	assert.True(t, pay.Equal(dec("120.00")), "got %s", pay)
}

func TestTotalPay_RoundsToCents(t *testing.T) {
	pay := TotalPay(dec("7.33"), dec("15.55"))
	assert.Equal(t, "113.98", pay.StringFixed(2))
}

func TestCalendarWeekStart(t *testing.T) {
	// 2025-03-12 is a Wednesday; the week starts Sunday 2025-03-09.
	wed := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	start := CalendarWeekStart(wed)
	assert.Equal(t, "2025-03-09", start.Format(DateLayout))
	assert.Equal(t, time.Sunday, start.Weekday())

	// A Sunday is its own week start.
	sun := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-09", CalendarWeekStart(sun).Format(DateLayout))
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", start.Format(DateLayout))
	assert.Equal(t, "2024-02-29", end.Format(DateLayout))
}

func TestShiftPeriod(t *testing.T) {
	assert.Equal(t, "morning", ShiftPeriod("05:00"))
	assert.Equal(t, "morning", ShiftPeriod("11:59"))
	assert.Equal(t, "afternoon", ShiftPeriod("12:00"))
	assert.Equal(t, "afternoon", ShiftPeriod("16:30"))
	assert.Equal(t, "night", ShiftPeriod("17:00"))
	assert.Equal(t, "night", ShiftPeriod("04:59"))
}

func TestClassifyCountTrend(t *testing.T) {
	assert.Equal(t, TrendIncreasing, ClassifyCountTrend(12, 10)) // > 11
	assert.Equal(t, TrendDecreasing, ClassifyCountTrend(8, 10))  // < 9
	assert.Equal(t, TrendSteady, ClassifyCountTrend(11, 10))     // == 11, not strictly above
	assert.Equal(t, TrendSteady, ClassifyCountTrend(10, 10))
	assert.Equal(t, TrendSteady, ClassifyCountTrend(0, 0))
}

func TestClassifyRatingTrend(t *testing.T) {
	// Higher is better (satisfaction, rest quality)
	assert.Equal(t, RatingImproving, ClassifyRatingTrend(4.0, 3.0, 0.5, true))
	assert.Equal(t, RatingDeclining, ClassifyRatingTrend(2.4, 3.0, 0.5, true))
	assert.Equal(t, RatingSteady, ClassifyRatingTrend(3.4, 3.0, 0.5, true))

	// Lower is better (stress): a drop is an improvement
	assert.Equal(t, RatingImproving, ClassifyRatingTrend(2.0, 3.0, 0.5, false))
	assert.Equal(t, RatingDeclining, ClassifyRatingTrend(4.0, 3.0, 0.5, false))
	assert.Equal(t, RatingSteady, ClassifyRatingTrend(3.2, 3.0, 0.5, false))

	// Balance score uses a 5-point band
	assert.Equal(t, RatingImproving, ClassifyRatingTrend(70, 60, 5, true))
	assert.Equal(t, RatingSteady, ClassifyRatingTrend(64, 60, 5, true))
}

func TestGoalProgress(t *testing.T) {
	// max_weekly_hours target 40, worked 30 → (1 - 30/40)*100 = 25
	assert.InDelta(t, 25, GoalProgress(GoalMaxWeeklyHours, 30, 40), 1e-9)
	// Working over the ceiling clamps at 0, not negative
	assert.Equal(t, 0.0, GoalProgress(GoalMaxWeeklyHours, 50, 40))
	// Not working at all is full progress
	assert.Equal(t, 100.0, GoalProgress(GoalMaxWeeklyHours, 0, 40))

	assert.InDelta(t, 50, GoalProgress(GoalMinRestDays, 2, 4), 1e-9)
	assert.Equal(t, 100.0, GoalProgress(GoalMinRestDays, 6, 4))

	assert.InDelta(t, 80, GoalProgress(GoalMinAvgSatisfaction, 4, 5), 1e-9)

	assert.Equal(t, 50.0, GoalProgress("unknown_goal", 1, 2))
	assert.Equal(t, 0.0, GoalProgress(GoalMinRestDays, 2, 0))
}
