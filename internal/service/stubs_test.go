package service

import (
	"context"
	"sort"

	"shifttrack/internal/model"
	"shifttrack/internal/repository"
	"shifttrack/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubShiftRepo is an in-memory ShiftRepository for testing.
type stubShiftRepo struct {
	shifts map[uuid.UUID]*model.Shift
}

func newStubShiftRepo() *stubShiftRepo {
	return &stubShiftRepo{shifts: make(map[uuid.UUID]*model.Shift)}
}

func (r *stubShiftRepo) Create(_ context.Context, s *model.Shift) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.shifts[s.ID] = s
	return nil
}

func (r *stubShiftRepo) FindByID(_ context.Context, userID, shiftID uuid.UUID) (*model.Shift, error) {
	s, ok := r.shifts[shiftID]
	if !ok || s.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubShiftRepo) List(_ context.Context, userID uuid.UUID) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range r.shifts {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *stubShiftRepo) ListByDate(_ context.Context, userID uuid.UUID, date string) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range r.shifts {
		if s.UserID == userID && s.Date == date {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubShiftRepo) ListByDateRange(_ context.Context, userID uuid.UUID, start, end string) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range r.shifts {
		if s.UserID == userID && s.Date >= start && s.Date <= end {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *stubShiftRepo) FindNext(_ context.Context, userID uuid.UUID, fromDate string) (*model.Shift, error) {
	var next *model.Shift
	for _, s := range r.shifts {
		if s.UserID != userID || s.Date < fromDate {
			continue
		}
		if next == nil || s.Date < next.Date ||
			(s.Date == next.Date && s.StartTime < next.StartTime) {
			next = s
		}
	}
	if next == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return next, nil
}

func (r *stubShiftRepo) Update(_ context.Context, s *model.Shift) error {
	r.shifts[s.ID] = s
	return nil
}

func (r *stubShiftRepo) Delete(_ context.Context, userID, shiftID uuid.UUID) (bool, error) {
	s, ok := r.shifts[shiftID]
	if !ok || s.UserID != userID {
		return false, nil
	}
	delete(r.shifts, shiftID)
	return true, nil
}

var _ repository.ShiftRepository = (*stubShiftRepo)(nil)

// stubInsights replaces the Groq-backed insight service with canned answers.
type stubInsights struct {
	invalidated []string
}

func (s *stubInsights) ShiftSummary(_ context.Context, _ string, _ interface{}) string {
	return "stub summary"
}
func (s *stubInsights) AnalyticsInsights(_ context.Context, _ string, _ interface{}) string {
	return FallbackInsights
}
func (s *stubInsights) ImproveNotes(_ context.Context, notes string) string { return notes }
func (s *stubInsights) AchievementDescription(_ context.Context, _, fallback string) string {
	return fallback
}
func (s *stubInsights) BreakerState() string { return "closed" }
func (s *stubInsights) InvalidateSummary(_ context.Context, userID string) {
	s.invalidated = append(s.invalidated, userID)
}

var _ InsightService = (*stubInsights)(nil)

// stubDispatcher records enqueued achievement jobs.
type stubDispatcher struct {
	payloads []worker.AchievementJobPayload
}

func (d *stubDispatcher) EnqueueAchievementCheck(_ context.Context, p worker.AchievementJobPayload) error {
	d.payloads = append(d.payloads, p)
	return nil
}

var _ AchievementDispatcher = (*stubDispatcher)(nil)
