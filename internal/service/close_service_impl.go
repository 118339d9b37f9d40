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

type closeService struct {
	uow db.UnitOfWork
}

func NewCloseService(uow db.UnitOfWork) CloseService {
	return &closeService{uow: uow}
}

func (s *closeService) Readiness(ctx context.Context, workstreamID string, today time.Time) (*Readiness, error) {
	var r *Readiness
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, idx, span, err := refreshWorkstreamTx(ctx, tx, workstreamID, today)
		if err != nil {
			return err
		}
		r = computeReadiness(workstreamID, tasks, idx, span)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func computeReadiness(workstreamID string, tasks []*domain.Task, idx int, span period.Span) *Readiness {
	r := &Readiness{WorkstreamID: workstreamID, Index: idx, Span: span}

	allReviewed := true
	for _, t := range tasks {
		if !t.Active() {
			continue
		}
		cur := t.CycleAt(idx)
		if cur == nil {
			// Follow-ups born for the next period join the gate then.
			continue
		}
		r.Total++
		if t.Prepared() {
			r.Prepared++
		}
		if cur.Status != domain.CycleOpen || !cur.Reviewed {
			allReviewed = false
		}
	}
	r.Missing = r.Total - r.Prepared
	r.CanClose = r.Total > 0 && allReviewed
	return r
}

func (s *closeService) ClosePeriod(ctx context.Context, workstreamID string, today time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWorkstreams := repository.NewSQLiteWorkstreamRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		w, err := txWorkstreams.GetByID(ctx, workstreamID)
		if err != nil {
			return err
		}
		tasks, idx, span, err := refreshWorkstreamTx(ctx, tx, workstreamID, today)
		if err != nil {
			return err
		}

		r := computeReadiness(workstreamID, tasks, idx, span)
		if r.Total == 0 {
			return domain.ErrNoActiveTasks
		}
		if !r.CanClose {
			return domain.ErrPeriodNotReady
		}

		// Advance the whole active set. The surrounding transaction makes
		// this all-or-nothing: a failure on any task rolls every sibling
		// back to the current period.
		for _, t := range tasks {
			if !t.Active() {
				continue
			}
			if err := cycle.EnsureUpTo(t, w.Cadence, w.FirstCycleStart, idx+1); err != nil {
				return err
			}
			if err := txTasks.Update(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *closeService) CaptureFollowUp(ctx context.Context, workstreamID, name, owner string, today time.Time) (*domain.Task, error) {
	var task *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWorkstreams := repository.NewSQLiteWorkstreamRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		w, err := txWorkstreams.GetByID(ctx, workstreamID)
		if err != nil {
			return err
		}
		idx, _, err := period.Current(w.FirstCycleStart, w.Cadence, today)
		if err != nil {
			return err
		}
		span, err := period.Range(w.FirstCycleStart, w.Cadence, idx+1)
		if err != nil {
			return err
		}

		owner = strings.TrimSpace(owner)
		task = &domain.Task{
			ID:           uuid.New().String(),
			WorkstreamID: workstreamID,
			Name:         name,
			Owner:        owner,
			Lifecycle:    domain.LifecycleActive,
			CreatedAt:    time.Now().UTC(),
			Cycles: []domain.Cycle{{
				Index:     idx + 1,
				Status:    domain.CycleOpen,
				StartDate: span.Start,
				EndDate:   span.End,
				Owner:     owner,
			}},
		}
		return txTasks.Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}
