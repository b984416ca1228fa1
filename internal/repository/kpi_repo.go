package repository

import (
	"context"

	"shifttrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KpiRepository interface {
	Create(ctx context.Context, k *model.SalesKpi) error
	FindByID(ctx context.Context, userID, kpiID uuid.UUID) (*model.SalesKpi, error)
	FindByShiftID(ctx context.Context, userID, shiftID uuid.UUID) (*model.SalesKpi, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.SalesKpi, error)
	Update(ctx context.Context, k *model.SalesKpi) error
	Delete(ctx context.Context, userID, kpiID uuid.UUID) (bool, error)
}

type kpiRepo struct{ db *gorm.DB }

func NewKpiRepository(db *gorm.DB) KpiRepository { return &kpiRepo{db: db} }

func (r *kpiRepo) Create(ctx context.Context, k *model.SalesKpi) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *kpiRepo) FindByID(ctx context.Context, userID, kpiID uuid.UUID) (*model.SalesKpi, error) {
	var k model.SalesKpi
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", kpiID, userID).
		First(&k).Error
	return &k, err
}

func (r *kpiRepo) FindByShiftID(ctx context.Context, userID, shiftID uuid.UUID) (*model.SalesKpi, error) {
	var k model.SalesKpi
	err := r.db.WithContext(ctx).
		Where("shift_id = ? AND user_id = ?", shiftID, userID).
		First(&k).Error
	return &k, err
}

func (r *kpiRepo) List(ctx context.Context, userID uuid.UUID) ([]model.SalesKpi, error) {
	var kpis []model.SalesKpi
	err := r.db.WithContext(ctx).
		Preload("Shift").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&kpis).Error
	return kpis, err
}

func (r *kpiRepo) Update(ctx context.Context, k *model.SalesKpi) error {
	return r.db.WithContext(ctx).Save(k).Error
}

func (r *kpiRepo) Delete(ctx context.Context, userID, kpiID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", kpiID, userID).
		Delete(&model.SalesKpi{})
	return res.RowsAffected > 0, res.Error
}
