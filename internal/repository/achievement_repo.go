package repository

import (
	"context"

	"shifttrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	Create(ctx context.Context, a *model.Achievement) error
	List(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error)
}

type achievementRepo struct{ db *gorm.DB }

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepo{db: db}
}

func (r *achievementRepo) Create(ctx context.Context, a *model.Achievement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *achievementRepo) List(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&achievements).Error
	return achievements, err
}
