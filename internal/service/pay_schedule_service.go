package service

import (
	"context"

	"shifttrack/internal/dto"
	"shifttrack/internal/model"
	"shifttrack/internal/repository"

	"github.com/google/uuid"
)

type PayScheduleService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreatePayScheduleRequest) (*dto.PayScheduleResponse, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.PayScheduleResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.PayScheduleResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdatePayScheduleRequest) (*dto.PayScheduleResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type payScheduleService struct {
	repo repository.PayScheduleRepository
}

func NewPayScheduleService(repo repository.PayScheduleRepository) PayScheduleService {
	return &payScheduleService{repo: repo}
}

func (s *payScheduleService) Create(ctx context.Context, userID uuid.UUID, req dto.CreatePayScheduleRequest) (*dto.PayScheduleResponse, error) {
	status := req.Status
	if status == "" {
		status = "pending"
	}
	schedule := &model.PaySchedule{
		UserID:      userID,
		PayDate:     req.PayDate,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Amount:      req.Amount,
		Status:      status,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	resp := payScheduleResponse(schedule)
	return &resp, nil
}

func (s *payScheduleService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.PayScheduleResponse, error) {
	schedule, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := payScheduleResponse(schedule)
	return &resp, nil
}

func (s *payScheduleService) List(ctx context.Context, userID uuid.UUID) ([]dto.PayScheduleResponse, error) {
	schedules, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PayScheduleResponse, len(schedules))
	for i := range schedules {
		resp[i] = payScheduleResponse(&schedules[i])
	}
	return resp, nil
}

func (s *payScheduleService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdatePayScheduleRequest) (*dto.PayScheduleResponse, error) {
	schedule, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	if req.PayDate != nil {
		schedule.PayDate = *req.PayDate
	}
	if req.PeriodStart != nil {
		schedule.PeriodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		schedule.PeriodEnd = *req.PeriodEnd
	}
	if req.Amount != nil {
		schedule.Amount = *req.Amount
	}
	if req.Status != nil {
		schedule.Status = *req.Status
	}
	if req.Notes != nil {
		schedule.Notes = req.Notes
	}
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	resp := payScheduleResponse(schedule)
	return &resp, nil
}

func (s *payScheduleService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func payScheduleResponse(p *model.PaySchedule) dto.PayScheduleResponse {
	return dto.PayScheduleResponse{
		ID:          p.ID.String(),
		PayDate:     p.PayDate,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		Amount:      p.Amount,
		Status:      p.Status,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
