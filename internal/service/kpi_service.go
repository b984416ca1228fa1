package service

import (
	"context"
	"time"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
)

type KpiService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateKpiRequest) (*dto.KpiResponse, error)
	Get(ctx context.Context, userID, kpiID uuid.UUID) (*dto.KpiResponse, error)
	GetByShift(ctx context.Context, userID, shiftID uuid.UUID) (*dto.KpiResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.KpiResponse, error)
	Update(ctx context.Context, userID, kpiID uuid.UUID, req dto.UpdateKpiRequest) (*dto.KpiResponse, error)
	Delete(ctx context.Context, userID, kpiID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*dto.KpiSummaryResponse, error)
}

type kpiService struct {
	repo   repository.KpiRepository
	shifts repository.ShiftRepository
	now    func() time.Time
}

func NewKpiService(repo repository.KpiRepository, shifts repository.ShiftRepository) KpiService {
	return &kpiService{repo: repo, shifts: shifts, now: time.Now}
}

func (s *kpiService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateKpiRequest) (*dto.KpiResponse, error) {
	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		return nil, invalid("invalid shift id")
	}
	if _, err := s.shifts.FindByID(ctx, userID, shiftID); err != nil {
		return nil, notFound(err)
	}
	// Pre-check for a friendly 400; the unique index closes the race.
	if _, err := s.repo.FindByShiftID(ctx, userID, shiftID); err == nil {
		return nil, invalid("KPI record already exists for this shift")
	}

	kpi := &model.SalesKpi{
		UserID:                userID,
		ShiftID:               shiftID,
		TechInsuranceSales:    req.TechInsuranceSales,
		InstantInsuranceSales: req.InstantInsuranceSales,
		SkyTVSales:            req.SkyTVSales,
		SkyBroadbandSales:     req.SkyBroadbandSales,
		SkyStreamingSales:     req.SkyStreamingSales,
		Notes:                 req.Notes,
	}
	if err := s.repo.Create(ctx, kpi); err != nil {
		return nil, err
	}
	resp := kpiResponse(kpi)
	return &resp, nil
}

func (s *kpiService) Get(ctx context.Context, userID, kpiID uuid.UUID) (*dto.KpiResponse, error) {
	kpi, err := s.repo.FindByID(ctx, userID, kpiID)
	if err != nil {
		return nil, notFound(err)
	}
	resp := kpiResponse(kpi)
	return &resp, nil
}

// GetByShift returns a zero-valued record rather than 404 when no KPI has
// been logged for the shift yet.
func (s *kpiService) GetByShift(ctx context.Context, userID, shiftID uuid.UUID) (*dto.KpiResponse, error) {
	kpi, err := s.repo.FindByShiftID(ctx, userID, shiftID)
	if err != nil {
		empty := kpiResponse(&model.SalesKpi{ShiftID: shiftID})
		return &empty, nil
	}
	resp := kpiResponse(kpi)
	return &resp, nil
}

func (s *kpiService) List(ctx context.Context, userID uuid.UUID) ([]dto.KpiResponse, error) {
	kpis, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.KpiResponse, len(kpis))
	for i := range kpis {
		resp[i] = kpiResponse(&kpis[i])
	}
	return resp, nil
}

func (s *kpiService) Update(ctx context.Context, userID, kpiID uuid.UUID, req dto.UpdateKpiRequest) (*dto.KpiResponse, error) {
	kpi, err := s.repo.FindByID(ctx, userID, kpiID)
	if err != nil {
		return nil, notFound(err)
	}
	if req.TechInsuranceSales != nil {
		kpi.TechInsuranceSales = *req.TechInsuranceSales
	}
	if req.InstantInsuranceSales != nil {
		kpi.InstantInsuranceSales = *req.InstantInsuranceSales
	}
	if req.SkyTVSales != nil {
		kpi.SkyTVSales = *req.SkyTVSales
	}
	if req.SkyBroadbandSales != nil {
		kpi.SkyBroadbandSales = *req.SkyBroadbandSales
	}
	if req.SkyStreamingSales != nil {
		kpi.SkyStreamingSales = *req.SkyStreamingSales
	}
	if req.Notes != nil {
		kpi.Notes = req.Notes
	}
	if err := s.repo.Update(ctx, kpi); err != nil {
		return nil, err
	}
	resp := kpiResponse(kpi)
	return &resp, nil
}

func (s *kpiService) Delete(ctx context.Context, userID, kpiID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, userID, kpiID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Summary aggregates all KPI records: per-counter lifetime totals, a
// six-calendar-month breakdown (newest first), the five most recent records,
// and month-over-month trends.
func (s *kpiService) Summary(ctx context.Context, userID uuid.UUID) (*dto.KpiSummaryResponse, error) {
	kpis, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := dto.KpiTotals{}
	for i := range kpis {
		addTotals(&totals, &kpis[i])
	}

	// Month buckets keyed by the shift's calendar month; KPI rows fall back to
	// their own creation month when the shift is not preloaded.
	now := s.now()
	byMonth := make([]dto.KpiMonth, 6)
	monthTotals := make([]dto.KpiTotals, 6)
	monthStarts := make([]time.Time, 6)
	for i := 0; i < 6; i++ {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthStarts[i] = m
	}
	for i := range kpis {
		d := kpiDate(&kpis[i])
		for j, m := range monthStarts {
			if d.Year() == m.Year() && d.Month() == m.Month() {
				addTotals(&monthTotals[j], &kpis[i])
				break
			}
		}
	}
	for i := 0; i < 6; i++ {
		byMonth[i] = dto.KpiMonth{
			Month:  monthStarts[i].Format("January 2006"),
			Totals: monthTotals[i],
		}
	}

	recent := make([]dto.KpiResponse, 0, 5)
	for i := 0; i < len(kpis) && i < 5; i++ {
		recent = append(recent, kpiResponse(&kpis[i]))
	}

	// Trends: current calendar month vs the one before.
	trends := dto.KpiTrends{
		TechInsurance:    string(paycalc.ClassifyCountTrend(monthTotals[0].TechInsurance, monthTotals[1].TechInsurance)),
		InstantInsurance: string(paycalc.ClassifyCountTrend(monthTotals[0].InstantInsurance, monthTotals[1].InstantInsurance)),
		SkyTV:            string(paycalc.ClassifyCountTrend(monthTotals[0].SkyTV, monthTotals[1].SkyTV)),
		SkyBroadband:     string(paycalc.ClassifyCountTrend(monthTotals[0].SkyBroadband, monthTotals[1].SkyBroadband)),
		SkyStreaming:     string(paycalc.ClassifyCountTrend(monthTotals[0].SkyStreaming, monthTotals[1].SkyStreaming)),
	}

	return &dto.KpiSummaryResponse{
		Totals:  totals,
		ByMonth: byMonth,
		Recent:  recent,
		Trends:  trends,
	}, nil
}

func kpiDate(k *model.SalesKpi) time.Time {
	if k.Shift != nil {
		if d, err := paycalc.ParseDate(k.Shift.Date); err == nil {
			return d
		}
	}
	return k.CreatedAt
}

func addTotals(t *dto.KpiTotals, k *model.SalesKpi) {
	t.TechInsurance += k.TechInsuranceSales
	t.InstantInsurance += k.InstantInsuranceSales
	t.SkyTV += k.SkyTVSales
	t.SkyBroadband += k.SkyBroadbandSales
	t.SkyStreaming += k.SkyStreamingSales
	t.Total += k.Total()
}

func kpiResponse(k *model.SalesKpi) dto.KpiResponse {
	id := ""
	if k.ID != uuid.Nil {
		id = k.ID.String()
	}
	created := ""
	if !k.CreatedAt.IsZero() {
		created = k.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return dto.KpiResponse{
		ID:                    id,
		ShiftID:               k.ShiftID.String(),
		TechInsuranceSales:    k.TechInsuranceSales,
		InstantInsuranceSales: k.InstantInsuranceSales,
		SkyTVSales:            k.SkyTVSales,
		SkyBroadbandSales:     k.SkyBroadbandSales,
		SkyStreamingSales:     k.SkyStreamingSales,
		Total:                 k.Total(),
		Notes:                 k.Notes,
		CreatedAt:             created,
	}
}
