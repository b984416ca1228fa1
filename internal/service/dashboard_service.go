package service

import (
	"context"
	"strconv"
	"time"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DashboardService interface {
	Data(ctx context.Context, userID uuid.UUID, period string) (*dto.DashboardDataResponse, error)
	Summary(ctx context.Context, userID uuid.UUID) (*dto.AISummaryResponse, error)
	ProcessNotes(ctx context.Context, notes string) *dto.ProcessNotesResponse
}

type dashboardService struct {
	shifts   repository.ShiftRepository
	insights InsightService
	now      func() time.Time
}

func NewDashboardService(shifts repository.ShiftRepository, insights InsightService) DashboardService {
	return &dashboardService{shifts: shifts, insights: insights, now: time.Now}
}

func (s *dashboardService) Data(ctx context.Context, userID uuid.UUID, period string) (*dto.DashboardDataResponse, error) {
	today := s.now()

	chart, err := s.chart(ctx, userID, period, today)
	if err != nil {
		return nil, err
	}
	summary, err := s.summary(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDataResponse{
		Period:  period,
		Chart:   chart,
		Summary: *summary,
	}, nil
}

// chart builds the calendar buckets: seven weekday points for the weekly
// period, Sunday-start week points covering the current month for monthly.
func (s *dashboardService) chart(ctx context.Context, userID uuid.UUID, period string, today time.Time) ([]dto.ChartPoint, error) {
	if period == "monthly" {
		return s.monthlyChart(ctx, userID, today)
	}
	return s.weeklyChart(ctx, userID, today)
}

func (s *dashboardService) weeklyChart(ctx context.Context, userID uuid.UUID, today time.Time) ([]dto.ChartPoint, error) {
	weekStart := paycalc.CalendarWeekStart(today)
	weekEnd := weekStart.AddDate(0, 0, 6)

	shifts, err := s.shifts.ListByDateRange(ctx, userID,
		weekStart.Format(paycalc.DateLayout), weekEnd.Format(paycalc.DateLayout))
	if err != nil {
		return nil, err
	}

	byDate := groupByDate(shifts)
	points := make([]dto.ChartPoint, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		pay, hours := sumShifts(byDate[day.Format(paycalc.DateLayout)])
		points[i] = dto.ChartPoint{Label: day.Weekday().String(), Hours: hours, Pay: pay}
	}
	return points, nil
}

func (s *dashboardService) monthlyChart(ctx context.Context, userID uuid.UUID, today time.Time) ([]dto.ChartPoint, error) {
	monthStart, monthEnd := paycalc.MonthRange(today.Year(), today.Month())

	// Weeks are Sunday-start and may overhang the month on both ends.
	cursor := paycalc.CalendarWeekStart(monthStart)
	shifts, err := s.shifts.ListByDateRange(ctx, userID,
		cursor.Format(paycalc.DateLayout),
		paycalc.CalendarWeekStart(monthEnd).AddDate(0, 0, 6).Format(paycalc.DateLayout))
	if err != nil {
		return nil, err
	}
	byDate := groupByDate(shifts)

	var points []dto.ChartPoint
	week := 1
	for !cursor.After(monthEnd) {
		pay, hours := decimal.Zero, decimal.Zero
		for i := 0; i < 7; i++ {
			dayPay, dayHours := sumShifts(byDate[cursor.AddDate(0, 0, i).Format(paycalc.DateLayout)])
			pay = pay.Add(dayPay)
			hours = hours.Add(dayHours)
		}
		points = append(points, dto.ChartPoint{
			Label: "Week " + strconv.Itoa(week),
			Hours: hours,
			Pay:   pay,
		})
		cursor = cursor.AddDate(0, 0, 7)
		week++
	}
	return points, nil
}

func (s *dashboardService) summary(ctx context.Context, userID uuid.UUID, today time.Time) (*dto.DashboardSummary, error) {
	weekStart := paycalc.CalendarWeekStart(today)
	weekEnd := weekStart.AddDate(0, 0, 6)
	weekShifts, err := s.shifts.ListByDateRange(ctx, userID,
		weekStart.Format(paycalc.DateLayout), weekEnd.Format(paycalc.DateLayout))
	if err != nil {
		return nil, err
	}
	weeklyPay, weeklyHours := sumShifts(weekShifts)

	summary := &dto.DashboardSummary{
		WeeklyHours: weeklyHours,
		WeeklyPay:   weeklyPay,
	}

	next, err := s.shifts.FindNext(ctx, userID, today.Format(paycalc.DateLayout))
	if err == nil && next != nil {
		summary.NextShift = &dto.NextShift{
			Label:     nextShiftLabel(next.Date, today),
			Date:      next.Date,
			StartTime: next.StartTime,
			EndTime:   next.EndTime,
		}
	}
	return summary, nil
}

// nextShiftLabel humanizes the upcoming shift date.
func nextShiftLabel(date string, today time.Time) string {
	d, err := paycalc.ParseDate(date)
	if err != nil {
		return date
	}
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	switch int(d.Sub(todayMidnight).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return d.Weekday().String()
	}
}

func (s *dashboardService) Summary(ctx context.Context, userID uuid.UUID) (*dto.AISummaryResponse, error) {
	shifts, err := s.shifts.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return &dto.AISummaryResponse{Summary: FallbackNoShiftData}, nil
	}

	text := s.insights.ShiftSummary(ctx, userID.String(), summarizeShifts(shifts))
	return &dto.AISummaryResponse{Summary: text}, nil
}

func (s *dashboardService) ProcessNotes(ctx context.Context, notes string) *dto.ProcessNotesResponse {
	return &dto.ProcessNotesResponse{ProcessedNotes: s.insights.ImproveNotes(ctx, notes)}
}

// summarizeShifts projects shifts into the compact JSON fed to the prompt.
func summarizeShifts(shifts []model.Shift) interface{} {
	type row struct {
		Date     string `json:"date"`
		Start    string `json:"start"`
		End      string `json:"end"`
		Hours    string `json:"hours"`
		TotalPay string `json:"total_pay"`
	}
	rows := make([]row, len(shifts))
	for i, sh := range shifts {
		rows[i] = row{
			Date:     sh.Date,
			Start:    sh.StartTime,
			End:      sh.EndTime,
			Hours:    shiftHours(sh).StringFixed(2),
			TotalPay: sh.TotalPay.StringFixed(2),
		}
	}
	return rows
}

func groupByDate(shifts []model.Shift) map[string][]model.Shift {
	byDate := make(map[string][]model.Shift)
	for _, sh := range shifts {
		byDate[sh.Date] = append(byDate[sh.Date], sh)
	}
	return byDate
}
