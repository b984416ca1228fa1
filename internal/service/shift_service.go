package service

import (
	"context"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/paycalc"
	"shifttrack/internal/repository"
	"shifttrack/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AchievementDispatcher enqueues the async milestone re-check after shift writes.
type AchievementDispatcher interface {
	EnqueueAchievementCheck(ctx context.Context, payload worker.AchievementJobPayload) error
}

type ShiftService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	Get(ctx context.Context, userID, shiftID uuid.UUID) (*dto.ShiftResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, userID, shiftID uuid.UUID, req dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, userID, shiftID uuid.UUID) error
}

type shiftService struct {
	repo       repository.ShiftRepository
	dispatcher AchievementDispatcher
	insights   InsightService
}

func NewShiftService(repo repository.ShiftRepository, dispatcher AchievementDispatcher, insights InsightService) ShiftService {
	return &shiftService{repo: repo, dispatcher: dispatcher, insights: insights}
}

func (s *shiftService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	hours, err := paycalc.WorkedHours(req.StartTime, req.EndTime, req.BreakTime)
	if err != nil {
		return nil, invalid(err.Error())
	}

	shift := &model.Shift{
		UserID:     userID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakTime:  req.BreakTime,
		HourlyRate: req.HourlyRate,
		TotalPay:   paycalc.TotalPay(hours, req.HourlyRate),
		Notes:      req.Notes,
	}
	if err := s.repo.Create(ctx, shift); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, userID)
	resp := shiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) Get(ctx context.Context, userID, shiftID uuid.UUID) (*dto.ShiftResponse, error) {
	shift, err := s.repo.FindByID(ctx, userID, shiftID)
	if err != nil {
		return nil, notFound(err)
	}
	resp := shiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) List(ctx context.Context, userID uuid.UUID) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		resp[i] = shiftResponse(&shifts[i])
	}
	return resp, nil
}

func (s *shiftService) Update(ctx context.Context, userID, shiftID uuid.UUID, req dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.FindByID(ctx, userID, shiftID)
	if err != nil {
		return nil, notFound(err)
	}

	recompute := false
	if req.Date != nil {
		shift.Date = *req.Date
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
		recompute = true
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
		recompute = true
	}
	if req.BreakTime != nil {
		shift.BreakTime = *req.BreakTime
		recompute = true
	}
	if req.HourlyRate != nil {
		shift.HourlyRate = *req.HourlyRate
		recompute = true
	}
	if req.Notes != nil {
		shift.Notes = req.Notes
	}

	if recompute {
		hours, err := paycalc.WorkedHours(shift.StartTime, shift.EndTime, shift.BreakTime)
		if err != nil {
			return nil, invalid(err.Error())
		}
		shift.TotalPay = paycalc.TotalPay(hours, shift.HourlyRate)
	}

	if err := s.repo.Update(ctx, shift); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, userID)
	resp := shiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) Delete(ctx context.Context, userID, shiftID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, userID, shiftID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.afterWrite(ctx, userID)
	return nil
}

// afterWrite fires the async milestone check and drops the cached AI summary.
// Both are best-effort.
func (s *shiftService) afterWrite(ctx context.Context, userID uuid.UUID) {
	if s.dispatcher != nil {
		payload := worker.AchievementJobPayload{UserID: userID.String()}
		if err := s.dispatcher.EnqueueAchievementCheck(ctx, payload); err != nil {
			log.Warn().Err(err).Msg("shift: achievement job enqueue failed")
		}
	}
	if s.insights != nil {
		s.insights.InvalidateSummary(ctx, userID.String())
	}
}

func shiftResponse(s *model.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:         s.ID.String(),
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		BreakTime:  s.BreakTime,
		HourlyRate: s.HourlyRate,
		TotalPay:   s.TotalPay,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
