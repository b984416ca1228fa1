package repository

import (
	"context"
	"time"

	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WellnessRepository interface {
	// Metrics
	CreateMetric(ctx context.Context, m *model.WellnessMetric) error
	FindMetricByID(ctx context.Context, userID, metricID uuid.UUID) (*model.WellnessMetric, error)
	ListMetrics(ctx context.Context, userID uuid.UUID) ([]model.WellnessMetric, error)
	// ListRecentMetrics returns entries from the last `days` days, oldest first.
	ListRecentMetrics(ctx context.Context, userID uuid.UUID, days int) ([]model.WellnessMetric, error)
	UpdateMetric(ctx context.Context, m *model.WellnessMetric) error
	DeleteMetric(ctx context.Context, userID, metricID uuid.UUID) (bool, error)

	// Goals
	CreateGoal(ctx context.Context, g *model.WellnessGoal) error
	FindGoalByID(ctx context.Context, userID, goalID uuid.UUID) (*model.WellnessGoal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]model.WellnessGoal, error)
	ListActiveGoals(ctx context.Context, userID uuid.UUID) ([]model.WellnessGoal, error)
	UpdateGoal(ctx context.Context, g *model.WellnessGoal) error
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (bool, error)
}

type wellnessRepo struct{ db *gorm.DB }

func NewWellnessRepository(db *gorm.DB) WellnessRepository { return &wellnessRepo{db: db} }

func (r *wellnessRepo) CreateMetric(ctx context.Context, m *model.WellnessMetric) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *wellnessRepo) FindMetricByID(ctx context.Context, userID, metricID uuid.UUID) (*model.WellnessMetric, error) {
	var m model.WellnessMetric
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", metricID, userID).
		First(&m).Error
	return &m, err
}

func (r *wellnessRepo) ListMetrics(ctx context.Context, userID uuid.UUID) ([]model.WellnessMetric, error) {
	var metrics []model.WellnessMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&metrics).Error
	return metrics, err
}

func (r *wellnessRepo) ListRecentMetrics(ctx context.Context, userID uuid.UUID, days int) ([]model.WellnessMetric, error) {
	cutoff := time.Now().AddDate(0, 0, -days).Format(paycalc.DateLayout)
	var metrics []model.WellnessMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, cutoff).
		Order("date ASC").
		Find(&metrics).Error
	return metrics, err
}

func (r *wellnessRepo) UpdateMetric(ctx context.Context, m *model.WellnessMetric) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *wellnessRepo) DeleteMetric(ctx context.Context, userID, metricID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", metricID, userID).
		Delete(&model.WellnessMetric{})
	return res.RowsAffected > 0, res.Error
}

func (r *wellnessRepo) CreateGoal(ctx context.Context, g *model.WellnessGoal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *wellnessRepo) FindGoalByID(ctx context.Context, userID, goalID uuid.UUID) (*model.WellnessGoal, error) {
	var g model.WellnessGoal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&g).Error
	return &g, err
}

func (r *wellnessRepo) ListGoals(ctx context.Context, userID uuid.UUID) ([]model.WellnessGoal, error) {
	var goals []model.WellnessGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func (r *wellnessRepo) ListActiveGoals(ctx context.Context, userID uuid.UUID) ([]model.WellnessGoal, error) {
	var goals []model.WellnessGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		Find(&goals).Error
	return goals, err
}

func (r *wellnessRepo) UpdateGoal(ctx context.Context, g *model.WellnessGoal) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *wellnessRepo) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&model.WellnessGoal{})
	return res.RowsAffected > 0, res.Error
}
