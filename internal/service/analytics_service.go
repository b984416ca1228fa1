package service

// analytics_service.go
// Rolling-window analytics: last 7 / 30 / 365 days anchored on today. This is
// deliberately a different convention from the calendar weeks used by the pay
// and dashboard endpoints; the two must not be unified.

import (
	"context"
	"fmt"
	"time"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AnalyticsService interface {
	Weekly(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error)
	Monthly(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error)
	Yearly(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	shifts   repository.ShiftRepository
	insights InsightService
	now      func() time.Time
}

func NewAnalyticsService(shifts repository.ShiftRepository, insights InsightService) AnalyticsService {
	return &analyticsService{shifts: shifts, insights: insights, now: time.Now}
}

func (s *analyticsService) Weekly(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error) {
	shifts, _, err := s.windowShifts(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	// Fixed weekday buckets, Sunday..Saturday.
	buckets := make([]dto.AnalyticsBucket, 7)
	for i := 0; i < 7; i++ {
		buckets[i] = dto.AnalyticsBucket{Label: time.Weekday(i).String(), Hours: decimal.Zero, Earnings: decimal.Zero}
	}
	for _, sh := range shifts {
		d, err := paycalc.ParseDate(sh.Date)
		if err != nil {
			continue
		}
		addToBucket(&buckets[int(d.Weekday())], sh)
	}

	return s.respond(ctx, "weekly", buckets, shifts)
}

func (s *analyticsService) Monthly(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error) {
	shifts, start, err := s.windowShifts(ctx, userID, 30)
	if err != nil {
		return nil, err
	}

	// Four "Week N" buckets; the 30-day window overflows slightly into week 4.
	buckets := make([]dto.AnalyticsBucket, 4)
	for i := range buckets {
		buckets[i] = dto.AnalyticsBucket{Label: fmt.Sprintf("Week %d", i+1), Hours: decimal.Zero, Earnings: decimal.Zero}
	}
	for _, sh := range shifts {
		d, err := paycalc.ParseDate(sh.Date)
		if err != nil {
			continue
		}
		idx := int(d.Sub(start).Hours()/24) / 7
		if idx < 0 {
			idx = 0
		}
		if idx > 3 {
			idx = 3
		}
		addToBucket(&buckets[idx], sh)
	}

	return s.respond(ctx, "monthly", buckets, shifts)
}

func (s *analyticsService) Yearly(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error) {
	shifts, _, err := s.windowShifts(ctx, userID, 365)
	if err != nil {
		return nil, err
	}

	buckets := make([]dto.AnalyticsBucket, 12)
	for i := 0; i < 12; i++ {
		buckets[i] = dto.AnalyticsBucket{Label: time.Month(i + 1).String()[:3], Hours: decimal.Zero, Earnings: decimal.Zero}
	}
	for _, sh := range shifts {
		d, err := paycalc.ParseDate(sh.Date)
		if err != nil {
			continue
		}
		addToBucket(&buckets[int(d.Month())-1], sh)
	}

	return s.respond(ctx, "yearly", buckets, shifts)
}

// windowShifts fetches the shifts inside the rolling window ending today.
func (s *analyticsService) windowShifts(ctx context.Context, userID uuid.UUID, days int) ([]model.Shift, time.Time, error) {
	today := s.now()
	start := today.AddDate(0, 0, -(days - 1))
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	shifts, err := s.shifts.ListByDateRange(ctx, userID,
		startDay.Format(paycalc.DateLayout), today.Format(paycalc.DateLayout))
	return shifts, startDay, err
}

func (s *analyticsService) respond(ctx context.Context, timeframe string, buckets []dto.AnalyticsBucket, shifts []model.Shift) (*dto.AnalyticsResponse, error) {
	totalHours, totalEarnings := decimal.Zero, decimal.Zero
	mostActive := ""
	maxHours := decimal.Zero
	for _, b := range buckets {
		totalHours = totalHours.Add(b.Hours)
		totalEarnings = totalEarnings.Add(b.Earnings)
		if b.Hours.GreaterThan(maxHours) {
			maxHours = b.Hours
			mostActive = b.Label
		}
	}

	summary := dto.AnalyticsSummary{
		TotalHours:    totalHours.Round(2),
		TotalEarnings: totalEarnings.Round(2),
	}
	// Each timeframe averages over its own bucket unit.
	switch timeframe {
	case "monthly":
		avg := totalHours.Div(decimal.NewFromInt(4)).Round(2)
		summary.AverageHoursPerWeek = &avg
		summary.MostActiveWeek = mostActive
	case "yearly":
		avg := totalHours.Div(decimal.NewFromInt(12)).Round(2)
		summary.AverageHoursPerMonth = &avg
		summary.MostActiveMonth = mostActive
	default:
		avg := totalHours.Div(decimal.NewFromInt(7)).Round(2)
		summary.AverageHoursPerDay = &avg
		summary.MostActiveDay = mostActive
	}

	resp := &dto.AnalyticsResponse{
		Timeframe:  timeframe,
		Buckets:    buckets,
		Summary:    summary,
		ShiftTypes: shiftTypeSlices(shifts),
		Insights:   s.insights.AnalyticsInsights(ctx, timeframe, summary),
	}
	return resp, nil
}

// addToBucket recomputes hours and earnings from the shift's raw inputs
// instead of trusting the stored total, rounded to cents.
func addToBucket(b *dto.AnalyticsBucket, sh model.Shift) {
	hours := shiftHours(sh)
	b.Hours = b.Hours.Add(hours.Round(2))
	b.Earnings = b.Earnings.Add(hours.Mul(sh.HourlyRate).Round(2))
}

func shiftTypeSlices(shifts []model.Shift) []dto.ShiftTypeSlice {
	counts := map[string]int{"morning": 0, "afternoon": 0, "night": 0}
	for _, sh := range shifts {
		counts[paycalc.ShiftPeriod(sh.StartTime)]++
	}
	return []dto.ShiftTypeSlice{
		{Name: "morning", Count: counts["morning"]},
		{Name: "afternoon", Count: counts["afternoon"]},
		{Name: "night", Count: counts["night"]},
	}
}
