package service

import (
	"context"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// milestone is one unlockable achievement with its static fallback text.
// Descriptions are AI-generated when the insight service is available.
type milestone struct {
	title    string
	fallback string
	unlocked func(totalHours, totalPay decimal.Decimal, shiftCount int) bool
}

var milestones = []milestone{
	{
		title:    "50 Hours Worked",
		fallback: "You have logged 50 hours of work. Solid dedication!",
		unlocked: func(hours, _ decimal.Decimal, _ int) bool {
			return hours.GreaterThanOrEqual(decimal.NewFromInt(50))
		},
	},
	{
		title:    "100 Hours Worked",
		fallback: "100 hours on the clock. You are building serious momentum.",
		unlocked: func(hours, _ decimal.Decimal, _ int) bool {
			return hours.GreaterThanOrEqual(decimal.NewFromInt(100))
		},
	},
	{
		title:    "First $1000 Earned",
		fallback: "You have earned your first $1000. Keep it rolling!",
		unlocked: func(_, pay decimal.Decimal, _ int) bool {
			return pay.GreaterThanOrEqual(decimal.NewFromInt(1000))
		},
	},
	{
		title:    "10 Shifts Completed",
		fallback: "Ten shifts in the books. A real routine is forming.",
		unlocked: func(_, _ decimal.Decimal, count int) bool {
			return count >= 10
		},
	},
}

type AchievementService interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.AchievementResponse, error)
	Check(ctx context.Context, userID uuid.UUID) (*dto.CheckAchievementsResponse, error)
	// CheckAchievements is the worker-facing evaluation; it persists and
	// returns newly unlocked achievements.
	CheckAchievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error)
}

type achievementService struct {
	repo     repository.AchievementRepository
	shifts   repository.ShiftRepository
	insights InsightService
}

func NewAchievementService(repo repository.AchievementRepository, shifts repository.ShiftRepository, insights InsightService) AchievementService {
	return &achievementService{repo: repo, shifts: shifts, insights: insights}
}

func (s *achievementService) List(ctx context.Context, userID uuid.UUID) ([]dto.AchievementResponse, error) {
	achievements, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AchievementResponse, len(achievements))
	for i, a := range achievements {
		resp[i] = achievementResponse(a)
	}
	return resp, nil
}

func (s *achievementService) Check(ctx context.Context, userID uuid.UUID) (*dto.CheckAchievementsResponse, error) {
	unlocked, err := s.CheckAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CheckAchievementsResponse{
		NewAchievements: make([]dto.AchievementResponse, len(unlocked)),
		Count:           len(unlocked),
	}
	for i, a := range unlocked {
		resp.NewAchievements[i] = achievementResponse(a)
	}
	return resp, nil
}

func (s *achievementService) CheckAchievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error) {
	shifts, err := s.shifts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalHours, totalPay := decimal.Zero, decimal.Zero
	for _, sh := range shifts {
		if hours, err := paycalc.WorkedHours(sh.StartTime, sh.EndTime, sh.BreakTime); err == nil {
			totalHours = totalHours.Add(hours)
		}
		totalPay = totalPay.Add(sh.TotalPay)
	}

	existing, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(existing))
	for _, a := range existing {
		have[a.Title] = true
	}

	var unlocked []model.Achievement
	for _, m := range milestones {
		if have[m.title] || !m.unlocked(totalHours, totalPay, len(shifts)) {
			continue
		}
		description := m.fallback
		if s.insights != nil {
			description = s.insights.AchievementDescription(ctx, m.title, m.fallback)
		}
		a := model.Achievement{
			UserID:      userID,
			Title:       m.title,
			Description: description,
		}
		// The (user_id, title) unique index makes concurrent unlocks of the
		// same milestone idempotent; a conflict just means another worker won.
		if err := s.repo.Create(ctx, &a); err != nil {
			continue
		}
		unlocked = append(unlocked, a)
	}
	return unlocked, nil
}

func achievementResponse(a model.Achievement) dto.AchievementResponse {
	return dto.AchievementResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		UnlockedAt:  a.UnlockedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
