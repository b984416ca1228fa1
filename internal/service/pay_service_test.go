package service

import (
	"context"
	"testing"

	"shifttrack/internal/model"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) UpdateFullName(_ context.Context, id uuid.UUID, fullName string) error {
	if u, ok := r.users[id]; ok {
		u.FullName = fullName
	}
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func seedShift(repo *stubShiftRepo, userID uuid.UUID, date, start, end string, rate int64) *model.Shift {
	s := &model.Shift{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		BreakTime:  decimal.Zero,
		HourlyRate: decimal.NewFromInt(rate),
	}
	// total pay mirrors what the write path would have stored
	s.TotalPay = shiftHours(*s).Mul(s.HourlyRate).Round(2)
	repo.shifts[s.ID] = s
	return s
}

func TestDailyPay_SumsShiftsOnDate(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewPayService(repo, newStubUserRepo())
	userID := uuid.New()

	seedShift(repo, userID, "2026-08-24", "09:00", "17:00", 20) // $160
	seedShift(repo, userID, "2026-08-24", "18:00", "20:00", 20) // $40
	seedShift(repo, userID, "2026-08-25", "09:00", "17:00", 20) // other day

	resp, err := svc.Daily(context.Background(), userID, "2026-08-24")
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(200)), "got %s", resp.Total)
	assert.True(t, resp.Hours.Equal(decimal.NewFromInt(10)), "got %s", resp.Hours)
}

func TestWeeklyPay_ZeroFilledDaysAndMatchingTotals(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewPayService(repo, newStubUserRepo())
	userID := uuid.New()

	// Week starting Sunday 2026-08-23.
	seedShift(repo, userID, "2026-08-24", "09:00", "17:00", 20) // Monday
	seedShift(repo, userID, "2026-08-27", "12:00", "18:00", 25) // Thursday
	seedShift(repo, userID, "2026-08-31", "09:00", "17:00", 20) // next week, excluded

	resp, err := svc.Weekly(context.Background(), userID, "2026-08-23")
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	assert.Equal(t, "2026-08-23", resp.Days[0].Date)
	assert.Equal(t, "2026-08-29", resp.Days[6].Date)
	assert.True(t, resp.Days[0].Total.IsZero(), "empty day must be zero, got %s", resp.Days[0].Total)

	// The week total is exactly the sum of the day buckets.
	sum := decimal.Zero
	for _, d := range resp.Days {
		sum = sum.Add(d.Total)
	}
	assert.True(t, resp.Total.Equal(sum), "total %s != day sum %s", resp.Total, sum)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(310)), "got %s", resp.Total)
}

func TestWeeklyPay_InvalidStartDate(t *testing.T) {
	svc := NewPayService(newStubShiftRepo(), newStubUserRepo())
	_, err := svc.Weekly(context.Background(), uuid.New(), "23/08/2026")
	assert.ErrorContains(t, err, "invalid week_start")

	// User-input errors carry the type handlers map to a 400.
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestYearlyPay_BucketsByMonth(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewPayService(repo, newStubUserRepo())
	userID := uuid.New()

	seedShift(repo, userID, "2026-01-10", "09:00", "17:00", 20) // $160 Jan
	seedShift(repo, userID, "2026-01-20", "09:00", "13:00", 20) // $80 Jan
	seedShift(repo, userID, "2026-06-05", "09:00", "17:00", 30) // $240 Jun

	resp, err := svc.Yearly(context.Background(), userID, 2026)
	require.NoError(t, err)
	require.Len(t, resp.Months, 12)

	assert.Equal(t, "January", resp.Months[0].Month)
	assert.True(t, resp.Months[0].Total.Equal(decimal.NewFromInt(240)), "got %s", resp.Months[0].Total)
	assert.Equal(t, "June", resp.Months[5].Month)
	assert.True(t, resp.Months[5].Total.Equal(decimal.NewFromInt(240)))
	assert.True(t, resp.Months[2].Total.IsZero())
	assert.True(t, resp.TotalPay.Equal(decimal.NewFromInt(480)), "got %s", resp.TotalPay)
	assert.True(t, resp.TotalHours.Equal(decimal.NewFromInt(20)), "got %s", resp.TotalHours)
}

func TestMonthlyReportPDF_ProducesDocument(t *testing.T) {
	repo := newStubShiftRepo()
	users := newStubUserRepo()
	svc := NewPayService(repo, users)

	user := &model.User{Username: "sam", FullName: "Sam Carter"}
	require.NoError(t, users.Create(context.Background(), user))
	seedShift(repo, user.ID, "2026-08-24", "09:00", "17:00", 20)

	pdf, name, err := svc.MonthlyReportPDF(context.Background(), user.ID, 8, 2026)
	require.NoError(t, err)
	assert.Equal(t, "pay-report-2026-08.pdf", name)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
