package paycalc

// Trend classification for KPI counters and wellness ratings.
//
// The thresholds are the literal constants the product shipped with — a 10%
// band for sales counts, a 0.5-point band for 1–5 ratings, a 5-point band for
// the 0–100 balance score. They carry no statistical meaning; keep them as-is
// for behavioral compatibility.

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendSteady     Trend = "steady"
)

type RatingTrend string

const (
	RatingImproving RatingTrend = "improving"
	RatingDeclining RatingTrend = "declining"
	RatingSteady    RatingTrend = "steady"
)

// ClassifyCountTrend compares two consecutive period totals:
// increasing above previous*1.1, decreasing below previous*0.9, else steady.
func ClassifyCountTrend(current, previous int) Trend {
	c, p := float64(current), float64(previous)
	switch {
	case c > p*1.1:
		return TrendIncreasing
	case c < p*0.9:
		return TrendDecreasing
	default:
		return TrendSteady
	}
}

// ClassifyRatingTrend compares two period averages with a symmetric delta
// band. higherIsBetter is false for stress, where a drop is an improvement.
func ClassifyRatingTrend(current, previous, delta float64, higherIsBetter bool) RatingTrend {
	if !higherIsBetter {
		current, previous = -current, -previous
	}
	switch {
	case current > previous+delta:
		return RatingImproving
	case current < previous-delta:
		return RatingDeclining
	default:
		return RatingSteady
	}
}

// Goal types for wellness goals. Progress semantics differ per type: the
// weekly-hours goal rewards staying under a ceiling (progress approaches 100%
// as you work less), the other two reward meeting a floor. The formulas are
// intentionally not harmonized.
const (
	GoalMaxWeeklyHours     = "max_weekly_hours"
	GoalMinRestDays        = "min_rest_days"
	GoalMinAvgSatisfaction = "min_avg_satisfaction"
)

// GoalProgress returns the completion percentage for a goal, clamped to
// [0,100]. current is the goal-type-specific measured value: weekly work
// hours, rest-day count, or average satisfaction. Unknown goal types report
// a flat 50%.
func GoalProgress(goalType string, current, target float64) float64 {
	if target == 0 {
		return 0
	}
	var progress float64
	switch goalType {
	case GoalMaxWeeklyHours:
		progress = (1 - current/target) * 100
	case GoalMinRestDays, GoalMinAvgSatisfaction:
		progress = (current / target) * 100
	default:
		return 50
	}
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
