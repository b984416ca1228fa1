package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"shifttrack/internal/model"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAchievementRepo struct {
	achievements []model.Achievement
}

func (r *stubAchievementRepo) Create(_ context.Context, a *model.Achievement) error {
	for _, existing := range r.achievements {
		if existing.UserID == a.UserID && existing.Title == a.Title {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.achievements = append(r.achievements, *a)
	return nil
}

func (r *stubAchievementRepo) List(_ context.Context, userID uuid.UUID) ([]model.Achievement, error) {
	var out []model.Achievement
	for _, a := range r.achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

var _ repository.AchievementRepository = (*stubAchievementRepo)(nil)

func TestCheckAchievements_UnlocksMilestones(t *testing.T) {
	shiftRepo := newStubShiftRepo()
	achRepo := &stubAchievementRepo{}
	svc := NewAchievementService(achRepo, shiftRepo, &stubInsights{})
	userID := uuid.New()

	// 12 shifts × 8h × $15 = 96 hours, $1440: crosses 50h, $1000 and 10 shifts
	// but not 100 hours.
	for i := 0; i < 12; i++ {
		seedShift(shiftRepo, userID, fmt.Sprintf("2026-08-%02d", i+1), "09:00", "17:00", 15)
	}

	unlocked, err := svc.CheckAchievements(context.Background(), userID)
	require.NoError(t, err)

	titles := make([]string, len(unlocked))
	for i, a := range unlocked {
		titles[i] = a.Title
	}
	assert.ElementsMatch(t, []string{"50 Hours Worked", "First $1000 Earned", "10 Shifts Completed"}, titles)
}

func TestCheckAchievements_NeverUnlocksTwice(t *testing.T) {
	shiftRepo := newStubShiftRepo()
	achRepo := &stubAchievementRepo{}
	svc := NewAchievementService(achRepo, shiftRepo, &stubInsights{})
	userID := uuid.New()

	for i := 0; i < 12; i++ {
		seedShift(shiftRepo, userID, fmt.Sprintf("2026-08-%02d", i+1), "09:00", "17:00", 15)
	}

	first, err := svc.CheckAchievements(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.CheckAchievements(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, achRepo.achievements, len(first))
}

func TestCheckAchievements_NoShiftsNoUnlocks(t *testing.T) {
	svc := NewAchievementService(&stubAchievementRepo{}, newStubShiftRepo(), &stubInsights{})

	unlocked, err := svc.CheckAchievements(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestCheckAchievements_HundredHourMilestone(t *testing.T) {
	shiftRepo := newStubShiftRepo()
	achRepo := &stubAchievementRepo{}
	svc := NewAchievementService(achRepo, shiftRepo, &stubInsights{})
	userID := uuid.New()

	// 13 shifts × 8h = 104 hours.
	for i := 0; i < 13; i++ {
		seedShift(shiftRepo, userID, fmt.Sprintf("2026-08-%02d", i+1), "09:00", "17:00", 15)
	}

	unlocked, err := svc.CheckAchievements(context.Background(), userID)
	require.NoError(t, err)

	var has100 bool
	for _, a := range unlocked {
		if a.Title == "100 Hours Worked" {
			has100 = true
			assert.NotEmpty(t, a.Description)
		}
	}
	assert.True(t, has100)
}
