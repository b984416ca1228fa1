package service

import (
	"context"
	"testing"
	"time"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubKpiRepo struct {
	kpis map[uuid.UUID]*model.SalesKpi
}

func newStubKpiRepo() *stubKpiRepo {
	return &stubKpiRepo{kpis: make(map[uuid.UUID]*model.SalesKpi)}
}

func (r *stubKpiRepo) Create(_ context.Context, k *model.SalesKpi) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	if k.CreatedAt.IsZero() {
		k.CreatedAt = time.Now()
	}
	r.kpis[k.ID] = k
	return nil
}

func (r *stubKpiRepo) FindByID(_ context.Context, userID, kpiID uuid.UUID) (*model.SalesKpi, error) {
	k, ok := r.kpis[kpiID]
	if !ok || k.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return k, nil
}

func (r *stubKpiRepo) FindByShiftID(_ context.Context, userID, shiftID uuid.UUID) (*model.SalesKpi, error) {
	for _, k := range r.kpis {
		if k.UserID == userID && k.ShiftID == shiftID {
			return k, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubKpiRepo) List(_ context.Context, userID uuid.UUID) ([]model.SalesKpi, error) {
	var out []model.SalesKpi
	for _, k := range r.kpis {
		if k.UserID == userID {
			out = append(out, *k)
		}
	}
	return out, nil
}

func (r *stubKpiRepo) Update(_ context.Context, k *model.SalesKpi) error {
	r.kpis[k.ID] = k
	return nil
}

func (r *stubKpiRepo) Delete(_ context.Context, userID, kpiID uuid.UUID) (bool, error) {
	k, ok := r.kpis[kpiID]
	if !ok || k.UserID != userID {
		return false, nil
	}
	delete(r.kpis, kpiID)
	return true, nil
}

var _ repository.KpiRepository = (*stubKpiRepo)(nil)

func seedKpi(repo *stubKpiRepo, userID uuid.UUID, shiftDate string, tech, instant, tv int) {
	shift := &model.Shift{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       shiftDate,
		StartTime:  "09:00",
		EndTime:    "17:00",
		HourlyRate: decimal.NewFromInt(20),
	}
	repo.kpis[uuid.New()] = &model.SalesKpi{
		ID:                    uuid.New(),
		UserID:                userID,
		ShiftID:               shift.ID,
		TechInsuranceSales:    tech,
		InstantInsuranceSales: instant,
		SkyTVSales:            tv,
		CreatedAt:             time.Now(),
		Shift:                 shift,
	}
}

func TestCreateKpi_RejectsDuplicateShift(t *testing.T) {
	shiftRepo := newStubShiftRepo()
	repo := newStubKpiRepo()
	svc := NewKpiService(repo, shiftRepo)
	userID := uuid.New()

	shift := seedShift(shiftRepo, userID, "2026-08-24", "09:00", "17:00", 20)
	req := dto.CreateKpiRequest{ShiftID: shift.ID.String(), TechInsuranceSales: 3}

	_, err := svc.Create(context.Background(), userID, req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userID, req)
	assert.ErrorContains(t, err, "already exists")
}

func TestCreateKpi_UnknownShiftIsNotFound(t *testing.T) {
	svc := NewKpiService(newStubKpiRepo(), newStubShiftRepo())
	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateKpiRequest{
		ShiftID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetKpiByShift_ReturnsZeroRecordInsteadOf404(t *testing.T) {
	svc := NewKpiService(newStubKpiRepo(), newStubShiftRepo())
	shiftID := uuid.New()

	resp, err := svc.GetByShift(context.Background(), uuid.New(), shiftID)
	require.NoError(t, err)
	assert.Empty(t, resp.ID)
	assert.Equal(t, shiftID.String(), resp.ShiftID)
	assert.Zero(t, resp.Total)
}

func TestKpiSummary_TotalsAndTrends(t *testing.T) {
	repo := newStubKpiRepo()
	svc := NewKpiService(repo, newStubShiftRepo()).(*kpiService)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	}
	userID := uuid.New()

	// Current month: tech 12, instant 10, tv 8. Previous month: 10 / 10 / 10.
	seedKpi(repo, userID, "2026-08-10", 7, 4, 5)
	seedKpi(repo, userID, "2026-08-20", 5, 6, 3)
	seedKpi(repo, userID, "2026-07-15", 10, 10, 10)

	resp, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 22, resp.Totals.TechInsurance)
	assert.Equal(t, 20, resp.Totals.InstantInsurance)
	assert.Equal(t, 18, resp.Totals.SkyTV)
	assert.Equal(t, 60, resp.Totals.Total)

	require.Len(t, resp.ByMonth, 6)
	assert.Equal(t, "August 2026", resp.ByMonth[0].Month)
	assert.Equal(t, 12, resp.ByMonth[0].Totals.TechInsurance)
	assert.Equal(t, "July 2026", resp.ByMonth[1].Month)

	// 12 vs 10: above the 10% band. 10 vs 10: steady. 8 vs 10: below the band.
	assert.Equal(t, "increasing", resp.Trends.TechInsurance)
	assert.Equal(t, "steady", resp.Trends.InstantInsurance)
	assert.Equal(t, "decreasing", resp.Trends.SkyTV)

	assert.LessOrEqual(t, len(resp.Recent), 5)
}

func TestUpdateKpi_PartialFields(t *testing.T) {
	shiftRepo := newStubShiftRepo()
	repo := newStubKpiRepo()
	svc := NewKpiService(repo, shiftRepo)
	userID := uuid.New()

	shift := seedShift(shiftRepo, userID, "2026-08-24", "09:00", "17:00", 20)
	created, err := svc.Create(context.Background(), userID, dto.CreateKpiRequest{
		ShiftID:            shift.ID.String(),
		TechInsuranceSales: 3,
		SkyTVSales:         2,
	})
	require.NoError(t, err)

	five := 5
	updated, err := svc.Update(context.Background(), userID, uuid.MustParse(created.ID), dto.UpdateKpiRequest{
		TechInsuranceSales: &five,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.TechInsuranceSales)
	assert.Equal(t, 2, updated.SkyTVSales)
	assert.Equal(t, 7, updated.Total)
}
