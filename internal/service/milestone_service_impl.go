package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/google/uuid"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
	uow        db.UnitOfWork
}

func NewMilestoneService(milestones repository.MilestoneRepo, uow db.UnitOfWork) MilestoneService {
	return &milestoneService{milestones: milestones, uow: uow}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	if m.Title == "" {
		return fmt.Errorf("milestone title is required")
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Lifecycle == "" {
		m.Lifecycle = domain.LifecycleActive
	}
	m.CreatedAt = time.Now().UTC()
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Milestone, error) {
	return s.milestones.ListByWorkstream(ctx, workstreamID)
}

func (s *milestoneService) Retire(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		m, err := txMilestones.GetByID(ctx, id)
		if err != nil {
			return err
		}
		m.Lifecycle = domain.LifecycleInactive
		if err := txMilestones.Update(ctx, m); err != nil {
			return err
		}
		// Cascade: referencing tasks fall back to the no-milestone bucket;
		// their cycles are untouched.
		return txTasks.ClearMilestone(ctx, id)
	})
}

func (s *milestoneService) Reactivate(ctx context.Context, id string) error {
	m, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return err
	}
	m.Lifecycle = domain.LifecycleActive
	return s.milestones.Update(ctx, m)
}
