package repository

import (
	"context"

	"shifttrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayScheduleRepository interface {
	Create(ctx context.Context, p *model.PaySchedule) error
	FindByID(ctx context.Context, userID, scheduleID uuid.UUID) (*model.PaySchedule, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.PaySchedule, error)
	Update(ctx context.Context, p *model.PaySchedule) error
	Delete(ctx context.Context, userID, scheduleID uuid.UUID) (bool, error)
}

type payScheduleRepo struct{ db *gorm.DB }

func NewPayScheduleRepository(db *gorm.DB) PayScheduleRepository {
	return &payScheduleRepo{db: db}
}

func (r *payScheduleRepo) Create(ctx context.Context, p *model.PaySchedule) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *payScheduleRepo) FindByID(ctx context.Context, userID, scheduleID uuid.UUID) (*model.PaySchedule, error) {
	var p model.PaySchedule
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scheduleID, userID).
		First(&p).Error
	return &p, err
}

func (r *payScheduleRepo) List(ctx context.Context, userID uuid.UUID) ([]model.PaySchedule, error) {
	var schedules []model.PaySchedule
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("pay_date DESC").
		Find(&schedules).Error
	return schedules, err
}

func (r *payScheduleRepo) Update(ctx context.Context, p *model.PaySchedule) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *payScheduleRepo) Delete(ctx context.Context, userID, scheduleID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scheduleID, userID).
		Delete(&model.PaySchedule{})
	return res.RowsAffected > 0, res.Error
}
