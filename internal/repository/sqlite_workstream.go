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

const workstreamColumns = `id, project_id, name, cadence, first_cycle_start, lead, created_at`

// SQLiteWorkstreamRepo implements WorkstreamRepo on SQLite.
//
// first_cycle_start is written once at insert and never updated; there is
// deliberately no Update method that could shift the anchor.
type SQLiteWorkstreamRepo struct {
	db db.DBTX
}

func NewSQLiteWorkstreamRepo(db db.DBTX) *SQLiteWorkstreamRepo {
	return &SQLiteWorkstreamRepo{db: db}
}

func (r *SQLiteWorkstreamRepo) Create(ctx context.Context, w *domain.Workstream) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workstreams (`+workstreamColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		w.ProjectID,
		w.Name,
		string(w.Cadence),
		domain.FormatDate(w.FirstCycleStart),
		w.Lead,
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting workstream: %w", err)
	}
	return nil
}

func (r *SQLiteWorkstreamRepo) GetByID(ctx context.Context, id string) (*domain.Workstream, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+workstreamColumns+` FROM workstreams WHERE id = ?`, id)
	w, err := scanWorkstream(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("workstream %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWorkstreamRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Workstream, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+workstreamColumns+` FROM workstreams WHERE project_id = ? ORDER BY created_at, name`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing workstreams by project: %w", err)
	}
	defer rows.Close()
	return scanWorkstreams(rows)
}

func (r *SQLiteWorkstreamRepo) List(ctx context.Context) ([]*domain.Workstream, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+workstreamColumns+` FROM workstreams ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("listing workstreams: %w", err)
	}
	defer rows.Close()
	return scanWorkstreams(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkstream(row rowScanner) (*domain.Workstream, error) {
	var w domain.Workstream
	var cadence, firstStart, createdAt string
	if err := row.Scan(&w.ID, &w.ProjectID, &w.Name, &cadence, &firstStart, &w.Lead, &createdAt); err != nil {
		return nil, err
	}
	w.Cadence = domain.Cadence(cadence)
	w.FirstCycleStart = mustParseDate(firstStart)
	w.CreatedAt = parseTimestamp(createdAt)
	return &w, nil
}

func scanWorkstreams(rows *sql.Rows) ([]*domain.Workstream, error) {
	var out []*domain.Workstream
	for rows.Next() {
		w, err := scanWorkstream(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workstream: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
