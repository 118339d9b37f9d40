package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
)

const taskColumns = `id, workstream_id, milestone_id, name, owner, lifecycle, created_at`

const cycleColumns = `task_id, idx, status, start_date, end_date,
		previous_plan, actuals, next_plan, owner, reviewed`

// SQLiteTaskRepo implements TaskRepo on SQLite. A task and its cycles are
// read and written together; the cycle rows never outlive their task.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.WorkstreamID,
		nullableStrToValue(t.MilestoneID),
		t.Name,
		t.Owner,
		string(t.Lifecycle),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return r.insertCycles(ctx, t)
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadCycles(ctx, []*domain.Task{t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE workstream_id = ? ORDER BY created_at, name`,
		workstreamID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by workstream: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadCycles(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE milestone_id = ? ORDER BY created_at, name`,
		milestoneID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by milestone: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadCycles(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update replaces the task row and its whole cycle list. Callers mutating
// multiple tasks wrap this in a unit of work so the replacement publishes
// atomically.
func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET milestone_id = ?, name = ?, owner = ?, lifecycle = ? WHERE id = ?`,
		nullableStrToValue(t.MilestoneID), t.Name, t.Owner, string(t.Lifecycle), t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, domain.ErrNotFound)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM cycles WHERE task_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing cycles: %w", err)
	}
	return r.insertCycles(ctx, t)
}

// ClearMilestone blanks the milestone reference on every task pointing at
// the given milestone. Used by the retire cascade; cycles are untouched.
func (r *SQLiteTaskRepo) ClearMilestone(ctx context.Context, milestoneID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET milestone_id = NULL WHERE milestone_id = ?`, milestoneID)
	if err != nil {
		return fmt.Errorf("clearing milestone references: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) insertCycles(ctx context.Context, t *domain.Task) error {
	for _, c := range t.Cycles {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO cycles (`+cycleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID,
			c.Index,
			string(c.Status),
			domain.FormatDate(c.StartDate),
			domain.FormatDate(c.EndDate),
			c.PreviousPlan,
			c.Actuals,
			c.NextPlan,
			c.Owner,
			boolToInt(c.Reviewed),
		)
		if err != nil {
			return fmt.Errorf("inserting cycle %d: %w", c.Index, err)
		}
	}
	return nil
}

// loadCycles attaches cycle histories to the given tasks with one query.
func (r *SQLiteTaskRepo) loadCycles(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Task, len(tasks))
	placeholders := ""
	args := make([]any, 0, len(tasks))
	for i, t := range tasks {
		byID[t.ID] = t
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, t.ID)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cycleColumns+` FROM cycles WHERE task_id IN (`+placeholders+`) ORDER BY task_id, idx`,
		args...)
	if err != nil {
		return fmt.Errorf("loading cycles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID string
		var c domain.Cycle
		var status, start, end string
		var reviewed int
		if err := rows.Scan(&taskID, &c.Index, &status, &start, &end,
			&c.PreviousPlan, &c.Actuals, &c.NextPlan, &c.Owner, &reviewed); err != nil {
			return fmt.Errorf("scanning cycle: %w", err)
		}
		c.Status = domain.CycleStatus(status)
		c.StartDate = mustParseDate(start)
		c.EndDate = mustParseDate(end)
		c.Reviewed = intToBool(reviewed)
		if t, ok := byID[taskID]; ok {
			t.Cycles = append(t.Cycles, c)
		}
	}
	return rows.Err()
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var milestoneID sql.NullString
	var lifecycle, createdAt string
	if err := row.Scan(&t.ID, &t.WorkstreamID, &milestoneID, &t.Name, &t.Owner, &lifecycle, &createdAt); err != nil {
		return nil, err
	}
	if milestoneID.Valid && milestoneID.String != "" {
		s := milestoneID.String
		t.MilestoneID = &s
	}
	t.Lifecycle = domain.Lifecycle(lifecycle)
	t.CreatedAt = parseTimestamp(createdAt)
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var out []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
