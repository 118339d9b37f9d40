package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds the full schema. Statements are idempotent so the whole
// list re-runs on every startup; ALTER TABLE additions tolerate the
// duplicate-column error for databases that already carry them.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workstreams (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		cadence           TEXT NOT NULL
		                  CHECK(cadence IN ('daily','weekly','biweekly','monthly','quarterly')),
		first_cycle_start TEXT NOT NULL,
		lead              TEXT NOT NULL DEFAULT '',
		created_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id            TEXT PRIMARY KEY,
		workstream_id TEXT NOT NULL REFERENCES workstreams(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		due_date      TEXT,
		lifecycle     TEXT NOT NULL DEFAULT 'active'
		              CHECK(lifecycle IN ('active','inactive')),
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		workstream_id TEXT NOT NULL REFERENCES workstreams(id) ON DELETE CASCADE,
		milestone_id  TEXT REFERENCES milestones(id) ON DELETE SET NULL,
		name          TEXT NOT NULL,
		owner         TEXT NOT NULL DEFAULT '',
		lifecycle     TEXT NOT NULL DEFAULT 'active'
		              CHECK(lifecycle IN ('active','inactive')),
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS cycles (
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		idx           INTEGER NOT NULL CHECK(idx >= 0),
		status        TEXT NOT NULL CHECK(status IN ('open','closed')),
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		previous_plan TEXT NOT NULL DEFAULT '',
		actuals       TEXT NOT NULL DEFAULT '',
		next_plan     TEXT NOT NULL DEFAULT '',
		owner         TEXT NOT NULL DEFAULT '',
		reviewed      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (task_id, idx)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workstreams_project ON workstreams(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_workstream ON milestones(workstream_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_workstream ON tasks(workstream_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_milestone ON tasks(milestone_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
