// Package paycalc holds the pure pay/time arithmetic shared by every module
// that touches shifts: worked-hours and total-pay computation, the two week
// bucketing conventions, trend classification, and goal progress.
//
// Two distinct week definitions exist on purpose and must never be unified:
// the pay and dashboard endpoints use Sunday-start calendar weeks
// (CalendarWeekStart), while the analytics endpoints use rolling windows
// anchored on today (last 7/30/365 days). Each feeds a different view with
// different user expectations.
package paycalc

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the ISO date format used for all date columns and params.
	DateLayout = "2006-01-02"
)

var clockLayouts = []string{"15:04:05", "15:04"}

// parseClock returns the offset from midnight for an HH:MM[:SS] string.
func parseClock(s string) (time.Duration, error) {
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
}

// WorkedHours computes (end - start) - break in hours.
//
// Overnight policy: when end is chronologically before start the shift is
// taken to cross midnight and 24 hours are added. This resolves the historic
// divergence where some call sites produced negative durations for overnight
// shifts; the wrap-around behavior is the deliberate, documented policy.
func WorkedHours(startTime, endTime string, breakHours decimal.Decimal) (decimal.Decimal, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return decimal.Zero, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return decimal.Zero, err
	}

	worked := end - start
	if worked < 0 {
		worked += 24 * time.Hour
	}

	hours := decimal.NewFromFloat(worked.Hours()).Sub(breakHours)
	return hours, nil
}

// TotalPay is worked hours times the hourly rate, rounded to cents.
func TotalPay(hours, hourlyRate decimal.Decimal) decimal.Decimal {
	return hours.Mul(hourlyRate).Round(2)
}

// ParseDate parses an ISO YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// CalendarWeekStart returns the Sunday on or before t, truncated to midnight.
// This is the calendar-week convention used by the pay and dashboard endpoints.
func CalendarWeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthRange returns the first and last day of the given month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// ShiftPeriod buckets a shift by its start hour:
// morning [05:00, 12:00), afternoon [12:00, 17:00), night otherwise.
func ShiftPeriod(startTime string) string {
	start, err := parseClock(startTime)
	if err != nil {
		return "night"
	}
	hour := int(start.Hours())
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	default:
		return "night"
	}
}
