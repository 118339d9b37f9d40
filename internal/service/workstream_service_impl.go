package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/google/uuid"
)

type workstreamService struct {
	workstreams repository.WorkstreamRepo
}

func NewWorkstreamService(workstreams repository.WorkstreamRepo) WorkstreamService {
	return &workstreamService{workstreams: workstreams}
}

func (s *workstreamService) Create(ctx context.Context, w *domain.Workstream, today time.Time) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.FirstCycleStart.IsZero() {
		w.FirstCycleStart = period.AlignedStart(w.Cadence, today)
	}
	w.CreatedAt = time.Now().UTC()
	if err := w.Validate(); err != nil {
		return err
	}
	return s.workstreams.Create(ctx, w)
}

func (s *workstreamService) GetByID(ctx context.Context, id string) (*domain.Workstream, error) {
	return s.workstreams.GetByID(ctx, id)
}

func (s *workstreamService) List(ctx context.Context) ([]*domain.Workstream, error) {
	return s.workstreams.List(ctx)
}

func (s *workstreamService) ListByProject(ctx context.Context, projectID string) ([]*domain.Workstream, error) {
	return s.workstreams.ListByProject(ctx, projectID)
}

func (s *workstreamService) CurrentPeriod(ctx context.Context, id string, today time.Time) (int, period.Span, error) {
	w, err := s.workstreams.GetByID(ctx, id)
	if err != nil {
		return 0, period.Span{}, err
	}
	return period.Current(w.FirstCycleStart, w.Cadence, today)
}
