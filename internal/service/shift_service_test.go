package service

import (
	"context"
	"testing"

	"shifttrack/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildShiftSvc() (ShiftService, *stubShiftRepo, *stubDispatcher, *stubInsights) {
	repo := newStubShiftRepo()
	dispatcher := &stubDispatcher{}
	insights := &stubInsights{}
	return NewShiftService(repo, dispatcher, insights), repo, dispatcher, insights
}

func TestCreateShift_ComputesTotalPay(t *testing.T) {
	svc, _, dispatcher, insights := buildShiftSvc()
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, dto.CreateShiftRequest{
		Date:       "2026-08-24",
		StartTime:  "09:00",
		EndTime:    "17:00",
		BreakTime:  decimal.NewFromFloat(0.5),
		HourlyRate: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	// (17:00 - 09:00) - 0.5h = 7.5h × $20 = $150
	assert.True(t, resp.TotalPay.Equal(decimal.NewFromInt(150)), "got %s", resp.TotalPay)

	// Write side effects: milestone job enqueued, cached summary dropped.
	require.Len(t, dispatcher.payloads, 1)
	assert.Equal(t, userID.String(), dispatcher.payloads[0].UserID)
	assert.Equal(t, []string{userID.String()}, insights.invalidated)
}

func TestCreateShift_OvernightWrapsMidnight(t *testing.T) {
	svc, _, _, _ := buildShiftSvc()

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateShiftRequest{
		Date:       "2026-08-24",
		StartTime:  "22:00",
		EndTime:    "06:00",
		BreakTime:  decimal.Zero,
		HourlyRate: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	// end < start counts as a shift crossing midnight: 8 hours, not -16.
	assert.True(t, resp.TotalPay.Equal(decimal.NewFromInt(200)), "got %s", resp.TotalPay)
}

func TestCreateShift_InvalidTimeRejected(t *testing.T) {
	svc, repo, _, _ := buildShiftSvc()

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateShiftRequest{
		Date:       "2026-08-24",
		StartTime:  "9am",
		EndTime:    "17:00",
		HourlyRate: decimal.NewFromInt(20),
	})
	assert.Error(t, err)
	assert.Empty(t, repo.shifts)
}

func TestUpdateShift_RecomputesPayWhenInputsChange(t *testing.T) {
	svc, _, _, _ := buildShiftSvc()
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, dto.CreateShiftRequest{
		Date:       "2026-08-24",
		StartTime:  "09:00",
		EndTime:    "17:00",
		BreakTime:  decimal.Zero,
		HourlyRate: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	newEnd := "13:00"
	updated, err := svc.Update(context.Background(), userID, uuid.MustParse(created.ID), dto.UpdateShiftRequest{
		EndTime: &newEnd,
	})
	require.NoError(t, err)

	// 4h × $20 = $80
	assert.True(t, updated.TotalPay.Equal(decimal.NewFromInt(80)), "got %s", updated.TotalPay)
}

func TestUpdateShift_NotesOnlyKeepsPay(t *testing.T) {
	svc, _, _, _ := buildShiftSvc()
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, dto.CreateShiftRequest{
		Date:       "2026-08-24",
		StartTime:  "09:00",
		EndTime:    "17:00",
		BreakTime:  decimal.Zero,
		HourlyRate: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	notes := "busy day"
	updated, err := svc.Update(context.Background(), userID, uuid.MustParse(created.ID), dto.UpdateShiftRequest{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalPay.Equal(created.TotalPay))
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "busy day", *updated.Notes)
}

func TestGetShift_OtherUserReadsAsNotFound(t *testing.T) {
	svc, _, _, _ := buildShiftSvc()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, dto.CreateShiftRequest{
		Date:       "2026-08-24",
		StartTime:  "09:00",
		EndTime:    "17:00",
		HourlyRate: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), uuid.MustParse(created.ID))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteShift_MissingRowIsNotFound(t *testing.T) {
	svc, _, _, _ := buildShiftSvc()
	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
