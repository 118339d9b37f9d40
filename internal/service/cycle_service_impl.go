package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/cycle"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/alexanderramin/cadence/internal/repository"
)

type cycleService struct {
	uow db.UnitOfWork
}

func NewCycleService(uow db.UnitOfWork) CycleService {
	return &cycleService{uow: uow}
}

func (s *cycleService) RefreshWorkstream(ctx context.Context, workstreamID string, today time.Time) ([]*domain.Task, int, period.Span, error) {
	var tasks []*domain.Task
	var idx int
	var span period.Span

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		tasks, idx, span, err = refreshWorkstreamTx(ctx, tx, workstreamID, today)
		return err
	})
	if err != nil {
		return nil, 0, period.Span{}, err
	}
	return tasks, idx, span, nil
}

// refreshWorkstreamTx materializes every active task up to the current
// period inside an existing transaction. Shared with the closing workflow,
// which refreshes before checking the review gate.
func refreshWorkstreamTx(ctx context.Context, tx db.DBTX, workstreamID string, today time.Time) ([]*domain.Task, int, period.Span, error) {
	txWorkstreams := repository.NewSQLiteWorkstreamRepo(tx)
	txTasks := repository.NewSQLiteTaskRepo(tx)

	w, err := txWorkstreams.GetByID(ctx, workstreamID)
	if err != nil {
		return nil, 0, period.Span{}, err
	}
	idx, span, err := period.Current(w.FirstCycleStart, w.Cadence, today)
	if err != nil {
		return nil, 0, period.Span{}, err
	}

	tasks, err := txTasks.ListByWorkstream(ctx, workstreamID)
	if err != nil {
		return nil, 0, period.Span{}, err
	}

	for _, t := range tasks {
		if !t.Active() {
			continue
		}
		before := len(t.Cycles)
		beforeOpenIdx := -1
		if open := t.OpenCycle(); open != nil {
			beforeOpenIdx = open.Index
		}
		if err := cycle.EnsureUpTo(t, w.Cadence, w.FirstCycleStart, idx); err != nil {
			return nil, 0, period.Span{}, err
		}
		// Skip the write when materialization changed nothing. Follow-up
		// tasks keep their future open cycle untouched.
		afterOpen := t.OpenCycle()
		if len(t.Cycles) == before && afterOpen != nil && afterOpen.Index == beforeOpenIdx {
			continue
		}
		if err := txTasks.Update(ctx, t); err != nil {
			return nil, 0, period.Span{}, err
		}
	}

	return tasks, idx, span, nil
}
