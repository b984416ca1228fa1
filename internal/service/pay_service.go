package service

import (
	"context"
	"fmt"
	"time"

	"shifttrack/internal/dto"
	"shifttrack/internal/infra"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayService interface {
	Daily(ctx context.Context, userID uuid.UUID, date string) (*dto.DailyPayResponse, error)
	Weekly(ctx context.Context, userID uuid.UUID, weekStart string) (*dto.WeeklyPayResponse, error)
	Monthly(ctx context.Context, userID uuid.UUID, month, year int) (*dto.MonthlyPayResponse, error)
	Yearly(ctx context.Context, userID uuid.UUID, year int) (*dto.YearlyPayResponse, error)
	MonthlyReportPDF(ctx context.Context, userID uuid.UUID, month, year int) ([]byte, string, error)
}

type payService struct {
	shifts repository.ShiftRepository
	users  repository.UserRepository
}

func NewPayService(shifts repository.ShiftRepository, users repository.UserRepository) PayService {
	return &payService{shifts: shifts, users: users}
}

func (s *payService) Daily(ctx context.Context, userID uuid.UUID, date string) (*dto.DailyPayResponse, error) {
	shifts, err := s.shifts.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	total, hours := sumShifts(shifts)
	return &dto.DailyPayResponse{Total: total, Hours: hours}, nil
}

func (s *payService) Weekly(ctx context.Context, userID uuid.UUID, weekStart string) (*dto.WeeklyPayResponse, error) {
	start, err := paycalc.ParseDate(weekStart)
	if err != nil {
		return nil, invalid("invalid week_start date")
	}
	end := start.AddDate(0, 0, 6)

	shifts, err := s.shifts.ListByDateRange(ctx, userID, weekStart, end.Format(paycalc.DateLayout))
	if err != nil {
		return nil, err
	}

	// Zero-filled day buckets: every day of the week appears even without shifts.
	byDate := make(map[string][]model.Shift)
	for _, sh := range shifts {
		byDate[sh.Date] = append(byDate[sh.Date], sh)
	}

	days := make([]dto.DayPay, 7)
	weekTotal, weekHours := decimal.Zero, decimal.Zero
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(paycalc.DateLayout)
		total, hours := sumShifts(byDate[date])
		days[i] = dto.DayPay{Date: date, Total: total, Hours: hours}
		weekTotal = weekTotal.Add(total)
		weekHours = weekHours.Add(hours)
	}

	return &dto.WeeklyPayResponse{Total: weekTotal, Hours: weekHours, Days: days}, nil
}

func (s *payService) Monthly(ctx context.Context, userID uuid.UUID, month, year int) (*dto.MonthlyPayResponse, error) {
	shifts, err := s.monthShifts(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	total, hours := sumShifts(shifts)
	return &dto.MonthlyPayResponse{Total: total, Hours: hours}, nil
}

func (s *payService) Yearly(ctx context.Context, userID uuid.UUID, year int) (*dto.YearlyPayResponse, error) {
	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)
	shifts, err := s.shifts.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	months := make([]dto.MonthPay, 12)
	for i := 0; i < 12; i++ {
		months[i] = dto.MonthPay{
			Month: time.Month(i + 1).String(),
			Total: decimal.Zero,
			Hours: decimal.Zero,
		}
	}

	yearPay, yearHours := decimal.Zero, decimal.Zero
	for _, sh := range shifts {
		d, err := paycalc.ParseDate(sh.Date)
		if err != nil {
			continue
		}
		hours := shiftHours(sh)
		idx := int(d.Month()) - 1
		months[idx].Total = months[idx].Total.Add(sh.TotalPay)
		months[idx].Hours = months[idx].Hours.Add(hours)
		yearPay = yearPay.Add(sh.TotalPay)
		yearHours = yearHours.Add(hours)
	}

	return &dto.YearlyPayResponse{
		Year:       year,
		TotalPay:   yearPay,
		TotalHours: yearHours,
		Months:     months,
	}, nil
}

func (s *payService) MonthlyReportPDF(ctx context.Context, userID uuid.UUID, month, year int) ([]byte, string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, "", notFound(err)
	}
	shifts, err := s.monthShifts(ctx, userID, month, year)
	if err != nil {
		return nil, "", err
	}

	hours := make([]decimal.Decimal, len(shifts))
	for i, sh := range shifts {
		hours[i] = shiftHours(sh)
	}

	monthLabel := fmt.Sprintf("%s %d", time.Month(month).String(), year)
	pdf, err := infra.GeneratePayReportPDF(user.FullName, monthLabel, shifts, hours)
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("pay-report-%04d-%02d.pdf", year, month)
	return pdf, fileName, nil
}

func (s *payService) monthShifts(ctx context.Context, userID uuid.UUID, month, year int) ([]model.Shift, error) {
	start, end := paycalc.MonthRange(year, time.Month(month))
	return s.shifts.ListByDateRange(ctx, userID,
		start.Format(paycalc.DateLayout), end.Format(paycalc.DateLayout))
}

// shiftHours recomputes worked hours from the stored inputs; the stored
// total_pay is trusted, hours are always derived.
func shiftHours(s model.Shift) decimal.Decimal {
	hours, err := paycalc.WorkedHours(s.StartTime, s.EndTime, s.BreakTime)
	if err != nil {
		return decimal.Zero
	}
	return hours
}

func sumShifts(shifts []model.Shift) (total, hours decimal.Decimal) {
	total, hours = decimal.Zero, decimal.Zero
	for _, s := range shifts {
		total = total.Add(s.TotalPay)
		hours = hours.Add(shiftHours(s))
	}
	return total, hours
}
