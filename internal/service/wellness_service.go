package service

import (
	"context"
	"time"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WellnessService interface {
	CreateMetric(ctx context.Context, userID uuid.UUID, req dto.CreateWellnessMetricRequest) (*dto.WellnessMetricResponse, error)
	GetMetric(ctx context.Context, userID, id uuid.UUID) (*dto.WellnessMetricResponse, error)
	ListMetrics(ctx context.Context, userID uuid.UUID) ([]dto.WellnessMetricResponse, error)
	UpdateMetric(ctx context.Context, userID, id uuid.UUID, req dto.UpdateWellnessMetricRequest) (*dto.WellnessMetricResponse, error)
	DeleteMetric(ctx context.Context, userID, id uuid.UUID) error

	CreateGoal(ctx context.Context, userID uuid.UUID, req dto.CreateWellnessGoalRequest) (*dto.WellnessGoalResponse, error)
	GetGoal(ctx context.Context, userID, id uuid.UUID) (*dto.WellnessGoalResponse, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]dto.WellnessGoalResponse, error)
	UpdateGoal(ctx context.Context, userID, id uuid.UUID, req dto.UpdateWellnessGoalRequest) (*dto.WellnessGoalResponse, error)
	DeleteGoal(ctx context.Context, userID, id uuid.UUID) error

	Summary(ctx context.Context, userID uuid.UUID) (*dto.WellnessSummaryResponse, error)
}

type wellnessService struct {
	repo repository.WellnessRepository
	now  func() time.Time
}

func NewWellnessService(repo repository.WellnessRepository) WellnessService {
	return &wellnessService{repo: repo, now: time.Now}
}

// ─── Metrics CRUD ────────────────────────────────────────────────────────────

func (s *wellnessService) CreateMetric(ctx context.Context, userID uuid.UUID, req dto.CreateWellnessMetricRequest) (*dto.WellnessMetricResponse, error) {
	m := &model.WellnessMetric{
		UserID:           userID,
		Date:             req.Date,
		WorkHours:        req.WorkHours,
		OvertimeHours:    req.OvertimeHours,
		StressLevel:      req.StressLevel,
		RestQuality:      req.RestQuality,
		WorkSatisfaction: req.WorkSatisfaction,
		BalanceScore:     req.BalanceScore,
		Notes:            req.Notes,
	}
	if err := s.repo.CreateMetric(ctx, m); err != nil {
		return nil, err
	}
	resp := metricResponse(m)
	return &resp, nil
}

func (s *wellnessService) GetMetric(ctx context.Context, userID, id uuid.UUID) (*dto.WellnessMetricResponse, error) {
	m, err := s.repo.FindMetricByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := metricResponse(m)
	return &resp, nil
}

func (s *wellnessService) ListMetrics(ctx context.Context, userID uuid.UUID) ([]dto.WellnessMetricResponse, error) {
	metrics, err := s.repo.ListMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.WellnessMetricResponse, len(metrics))
	for i := range metrics {
		resp[i] = metricResponse(&metrics[i])
	}
	return resp, nil
}

func (s *wellnessService) UpdateMetric(ctx context.Context, userID, id uuid.UUID, req dto.UpdateWellnessMetricRequest) (*dto.WellnessMetricResponse, error) {
	m, err := s.repo.FindMetricByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.WorkHours != nil {
		m.WorkHours = *req.WorkHours
	}
	if req.OvertimeHours != nil {
		m.OvertimeHours = *req.OvertimeHours
	}
	if req.StressLevel != nil {
		m.StressLevel = *req.StressLevel
	}
	if req.RestQuality != nil {
		m.RestQuality = *req.RestQuality
	}
	if req.WorkSatisfaction != nil {
		m.WorkSatisfaction = *req.WorkSatisfaction
	}
	if req.BalanceScore != nil {
		m.BalanceScore = *req.BalanceScore
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}
	if err := s.repo.UpdateMetric(ctx, m); err != nil {
		return nil, err
	}
	resp := metricResponse(m)
	return &resp, nil
}

func (s *wellnessService) DeleteMetric(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.repo.DeleteMetric(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ─── Goals CRUD ──────────────────────────────────────────────────────────────

func (s *wellnessService) CreateGoal(ctx context.Context, userID uuid.UUID, req dto.CreateWellnessGoalRequest) (*dto.WellnessGoalResponse, error) {
	g := &model.WellnessGoal{
		UserID:      userID,
		GoalType:    req.GoalType,
		TargetValue: req.TargetValue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
		Notes:       req.Notes,
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}
	resp := goalResponse(g)
	return &resp, nil
}

func (s *wellnessService) GetGoal(ctx context.Context, userID, id uuid.UUID) (*dto.WellnessGoalResponse, error) {
	g, err := s.repo.FindGoalByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := goalResponse(g)
	return &resp, nil
}

func (s *wellnessService) ListGoals(ctx context.Context, userID uuid.UUID) ([]dto.WellnessGoalResponse, error) {
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.WellnessGoalResponse, len(goals))
	for i := range goals {
		resp[i] = goalResponse(&goals[i])
	}
	return resp, nil
}

func (s *wellnessService) UpdateGoal(ctx context.Context, userID, id uuid.UUID, req dto.UpdateWellnessGoalRequest) (*dto.WellnessGoalResponse, error) {
	g, err := s.repo.FindGoalByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	if req.GoalType != nil {
		g.GoalType = *req.GoalType
	}
	if req.TargetValue != nil {
		g.TargetValue = *req.TargetValue
	}
	if req.StartDate != nil {
		g.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		g.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		g.Notes = req.Notes
	}
	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}
	resp := goalResponse(g)
	return &resp, nil
}

func (s *wellnessService) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.repo.DeleteGoal(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ─── Summary ─────────────────────────────────────────────────────────────────

// Summary aggregates the last 30 days of metrics: averages, active-goal
// progress, trends over the last two 7-entry windows, canned recommendations,
// and the five most recent entries.
func (s *wellnessService) Summary(ctx context.Context, userID uuid.UUID) (*dto.WellnessSummaryResponse, error) {
	metrics, err := s.repo.ListRecentMetrics(ctx, userID, 30)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListActiveGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	averages := computeAverages(metrics)
	trends := computeTrends(metrics)

	progress := make([]dto.GoalProgressEntry, len(goals))
	for i, g := range goals {
		current := goalCurrentValue(g.GoalType, metrics, s.now())
		target, _ := g.TargetValue.Float64()
		pct := paycalc.GoalProgress(g.GoalType, current, target)
		progress[i] = dto.GoalProgressEntry{
			GoalID:      g.ID.String(),
			GoalType:    g.GoalType,
			TargetValue: g.TargetValue,
			Progress:    decimal.NewFromFloat(pct).Round(1),
		}
	}

	recent := make([]dto.WellnessMetricResponse, 0, 5)
	for i := len(metrics) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, metricResponse(&metrics[i]))
	}

	return &dto.WellnessSummaryResponse{
		Averages:        averages,
		GoalProgress:    progress,
		Trends:          trends,
		Recommendations: recommendations(averages, trends),
		RecentEntries:   recent,
	}, nil
}

func computeAverages(metrics []model.WellnessMetric) dto.WellnessAverages {
	avg := dto.WellnessAverages{
		StressLevel:      decimal.Zero,
		RestQuality:      decimal.Zero,
		WorkSatisfaction: decimal.Zero,
		BalanceScore:     decimal.Zero,
		TotalWorkHours:   decimal.Zero,
		TotalOvertime:    decimal.Zero,
	}
	if len(metrics) == 0 {
		return avg
	}
	var stress, rest, satisfaction, balance int
	for _, m := range metrics {
		stress += m.StressLevel
		rest += m.RestQuality
		satisfaction += m.WorkSatisfaction
		balance += m.BalanceScore
		avg.TotalWorkHours = avg.TotalWorkHours.Add(m.WorkHours)
		avg.TotalOvertime = avg.TotalOvertime.Add(m.OvertimeHours)
	}
	n := decimal.NewFromInt(int64(len(metrics)))
	avg.StressLevel = decimal.NewFromInt(int64(stress)).Div(n).Round(2)
	avg.RestQuality = decimal.NewFromInt(int64(rest)).Div(n).Round(2)
	avg.WorkSatisfaction = decimal.NewFromInt(int64(satisfaction)).Div(n).Round(2)
	avg.BalanceScore = decimal.NewFromInt(int64(balance)).Div(n).Round(2)
	return avg
}

// computeTrends compares the previous 7-entry window against the latest one.
// Ratings use a 0.5 band, the balance score a 5-point band; a stress drop
// counts as improving.
func computeTrends(metrics []model.WellnessMetric) dto.WellnessTrends {
	steady := dto.WellnessTrends{
		StressLevel:      string(paycalc.RatingSteady),
		RestQuality:      string(paycalc.RatingSteady),
		WorkSatisfaction: string(paycalc.RatingSteady),
		BalanceScore:     string(paycalc.RatingSteady),
	}
	if len(metrics) < 14 {
		return steady
	}
	prev := metrics[len(metrics)-14 : len(metrics)-7]
	curr := metrics[len(metrics)-7:]

	avgOf := func(window []model.WellnessMetric, pick func(model.WellnessMetric) int) float64 {
		sum := 0
		for _, m := range window {
			sum += pick(m)
		}
		return float64(sum) / float64(len(window))
	}

	return dto.WellnessTrends{
		StressLevel: string(paycalc.ClassifyRatingTrend(
			avgOf(curr, func(m model.WellnessMetric) int { return m.StressLevel }),
			avgOf(prev, func(m model.WellnessMetric) int { return m.StressLevel }),
			0.5, false)),
		RestQuality: string(paycalc.ClassifyRatingTrend(
			avgOf(curr, func(m model.WellnessMetric) int { return m.RestQuality }),
			avgOf(prev, func(m model.WellnessMetric) int { return m.RestQuality }),
			0.5, true)),
		WorkSatisfaction: string(paycalc.ClassifyRatingTrend(
			avgOf(curr, func(m model.WellnessMetric) int { return m.WorkSatisfaction }),
			avgOf(prev, func(m model.WellnessMetric) int { return m.WorkSatisfaction }),
			0.5, true)),
		BalanceScore: string(paycalc.ClassifyRatingTrend(
			avgOf(curr, func(m model.WellnessMetric) int { return m.BalanceScore }),
			avgOf(prev, func(m model.WellnessMetric) int { return m.BalanceScore }),
			5, true)),
	}
}

// goalCurrentValue measures what the goal compares against: work hours over
// the last 7 days, count of rest days in the last 7 days, or the 30-day
// average satisfaction.
func goalCurrentValue(goalType string, metrics []model.WellnessMetric, now time.Time) float64 {
	switch goalType {
	case paycalc.GoalMaxWeeklyHours:
		cutoff := now.AddDate(0, 0, -7).Format(paycalc.DateLayout)
		total := decimal.Zero
		for _, m := range metrics {
			if m.Date >= cutoff {
				total = total.Add(m.WorkHours)
			}
		}
		f, _ := total.Float64()
		return f
	case paycalc.GoalMinRestDays:
		cutoff := now.AddDate(0, 0, -7).Format(paycalc.DateLayout)
		worked := make(map[string]bool)
		for _, m := range metrics {
			if m.Date >= cutoff && m.WorkHours.GreaterThan(decimal.Zero) {
				worked[m.Date] = true
			}
		}
		return float64(7 - len(worked))
	case paycalc.GoalMinAvgSatisfaction:
		if len(metrics) == 0 {
			return 0
		}
		sum := 0
		for _, m := range metrics {
			sum += m.WorkSatisfaction
		}
		return float64(sum) / float64(len(metrics))
	default:
		return 0
	}
}

func recommendations(avg dto.WellnessAverages, trends dto.WellnessTrends) []string {
	var recs []string
	if trends.StressLevel == string(paycalc.RatingDeclining) {
		recs = append(recs, "Your stress has been rising. Consider scheduling more breaks between shifts.")
	}
	if trends.RestQuality == string(paycalc.RatingDeclining) {
		recs = append(recs, "Rest quality is trending down. Try to keep a consistent sleep schedule.")
	}
	if avg.TotalOvertime.GreaterThan(decimal.NewFromInt(8)) {
		recs = append(recs, "You have logged more than 8 overtime hours recently. Keep an eye on your workload.")
	}
	if avg.BalanceScore.LessThan(decimal.NewFromInt(50)) {
		recs = append(recs, "Your work-life balance score is low. Consider reducing your weekly hours.")
	}
	if len(recs) == 0 {
		recs = append(recs, "You are maintaining a healthy balance. Keep it up.")
	}
	return recs
}

func metricResponse(m *model.WellnessMetric) dto.WellnessMetricResponse {
	return dto.WellnessMetricResponse{
		ID:               m.ID.String(),
		Date:             m.Date,
		WorkHours:        m.WorkHours,
		OvertimeHours:    m.OvertimeHours,
		StressLevel:      m.StressLevel,
		RestQuality:      m.RestQuality,
		WorkSatisfaction: m.WorkSatisfaction,
		BalanceScore:     m.BalanceScore,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func goalResponse(g *model.WellnessGoal) dto.WellnessGoalResponse {
	return dto.WellnessGoalResponse{
		ID:          g.ID.String(),
		GoalType:    g.GoalType,
		TargetValue: g.TargetValue,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
		IsActive:    g.IsActive,
		Notes:       g.Notes,
		CreatedAt:   g.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
