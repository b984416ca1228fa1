package repository

import (
	"context"

	"shifttrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository is user-scoped: every lookup carries the owning user id so a
// row belonging to another user reads as not-found, never as forbidden.
type ShiftRepository interface {
	Create(ctx context.Context, s *model.Shift) error
	FindByID(ctx context.Context, userID, shiftID uuid.UUID) (*model.Shift, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Shift, error)
	ListByDate(ctx context.Context, userID uuid.UUID, date string) ([]model.Shift, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end string) ([]model.Shift, error)
	FindNext(ctx context.Context, userID uuid.UUID, fromDate string) (*model.Shift, error)
	Update(ctx context.Context, s *model.Shift) error
	Delete(ctx context.Context, userID, shiftID uuid.UUID) (bool, error)
}

type shiftRepo struct{ db *gorm.DB }

func NewShiftRepository(db *gorm.DB) ShiftRepository { return &shiftRepo{db: db} }

func (r *shiftRepo) Create(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shiftRepo) FindByID(ctx context.Context, userID, shiftID uuid.UUID) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", shiftID, userID).
		First(&s).Error
	return &s, err
}

func (r *shiftRepo) List(ctx context.Context, userID uuid.UUID) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) ListByDate(ctx context.Context, userID uuid.UUID, date string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) FindNext(ctx context.Context, userID uuid.UUID, fromDate string) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, fromDate).
		Order("date ASC, start_time ASC").
		First(&s).Error
	return &s, err
}

func (r *shiftRepo) Update(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shiftRepo) Delete(ctx context.Context, userID, shiftID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", shiftID, userID).
		Delete(&model.Shift{})
	return res.RowsAffected > 0, res.Error
}
