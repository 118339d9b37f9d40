package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/cycle"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks       repository.TaskRepo
	workstreams repository.WorkstreamRepo
	uow         db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, workstreams repository.WorkstreamRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, workstreams: workstreams, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task, today time.Time) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Lifecycle == "" {
		t.Lifecycle = domain.LifecycleActive
	}
	t.Owner = strings.TrimSpace(t.Owner)
	t.CreatedAt = time.Now().UTC()

	w, err := s.workstreams.GetByID(ctx, t.WorkstreamID)
	if err != nil {
		return err
	}
	idx, _, err := period.Current(w.FirstCycleStart, w.Cadence, today)
	if err != nil {
		return err
	}
	if err := cycle.EnsureUpTo(t, w.Cadence, w.FirstCycleStart, idx); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Task, error) {
	return s.tasks.ListByWorkstream(ctx, workstreamID)
}

func (s *taskService) Retire(ctx context.Context, id string) error {
	return s.setLifecycle(ctx, id, domain.LifecycleInactive)
}

func (s *taskService) Reactivate(ctx context.Context, id string) error {
	return s.setLifecycle(ctx, id, domain.LifecycleActive)
}

// setLifecycle flips the active flag and nothing else. Retiring leaves the
// open cycle open; reactivation relies on the next materialization to
// backfill the gap.
func (s *taskService) setLifecycle(ctx context.Context, id string, lc domain.Lifecycle) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t.Lifecycle == lc {
			return nil
		}
		t.Lifecycle = lc
		return txTasks.Update(ctx, t)
	})
}

func (s *taskService) AssignMilestone(ctx context.Context, taskID string, milestoneID *string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if milestoneID != nil {
			txMilestones := repository.NewSQLiteMilestoneRepo(tx)
			if _, err := txMilestones.GetByID(ctx, *milestoneID); err != nil {
				return err
			}
		}
		t.MilestoneID = milestoneID
		return txTasks.Update(ctx, t)
	})
}

// SetOwner changes the task's owner going forward. Existing cycle owner
// snapshots are preserved; the open cycle is updated since its period is
// still in progress.
func (s *taskService) SetOwner(ctx context.Context, taskID, owner string) error {
	owner = strings.TrimSpace(owner)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		t.Owner = owner
		if open := t.OpenCycle(); open != nil {
			cycle.ApplyPatch(t, open.Index, cycle.Patch{Owner: &owner})
		}
		return txTasks.Update(ctx, t)
	})
}

func (s *taskService) UpdateCycle(ctx context.Context, taskID string, index int, patch cycle.Patch) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if !cycle.ApplyPatch(t, index, patch) {
			// Closed or missing cycle: the guard swallows the edit.
			return nil
		}
		return txTasks.Update(ctx, t)
	})
}
