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

const milestoneColumns = `id, workstream_id, title, due_date, lifecycle, created_at`

// SQLiteMilestoneRepo implements MilestoneRepo on SQLite.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(db db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: db}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO milestones (`+milestoneColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.WorkstreamID,
		m.Title,
		nullableDateToValue(m.DueDate),
		string(m.Lifecycle),
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+milestoneColumns+` FROM milestones WHERE id = ?`, id)
	m, err := scanMilestone(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("milestone %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMilestoneRepo) ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+milestoneColumns+` FROM milestones WHERE workstream_id = ?
		 ORDER BY due_date IS NULL, due_date, created_at`,
		workstreamID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var out []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE milestones SET title = ?, due_date = ?, lifecycle = ? WHERE id = ?`,
		m.Title, nullableDateToValue(m.DueDate), string(m.Lifecycle), m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("milestone %s: %w", m.ID, domain.ErrNotFound)
	}
	return nil
}

func scanMilestone(row rowScanner) (*domain.Milestone, error) {
	var m domain.Milestone
	var due sql.NullString
	var lifecycle, createdAt string
	if err := row.Scan(&m.ID, &m.WorkstreamID, &m.Title, &due, &lifecycle, &createdAt); err != nil {
		return nil, err
	}
	m.DueDate = parseNullableDate(due)
	m.Lifecycle = domain.Lifecycle(lifecycle)
	m.CreatedAt = parseTimestamp(createdAt)
	return &m, nil
}
