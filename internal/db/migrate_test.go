package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"projects", "workstreams", "milestones", "tasks", "cycles", "settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_CycleStatusConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO projects (id, name, created_at) VALUES ('p1', 'P', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO workstreams (id, project_id, name, cadence, first_cycle_start, created_at)
		VALUES ('w1', 'p1', 'W', 'weekly', '2025-01-06', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO tasks (id, workstream_id, name, created_at)
		VALUES ('t1', 'w1', 'T', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO cycles (task_id, idx, status, start_date, end_date)
		VALUES ('t1', 0, 'pending', '2025-01-06', '2025-01-12')`)
	assert.Error(t, err, "status outside open/closed must be rejected")

	_, err = database.Exec(`INSERT INTO cycles (task_id, idx, status, start_date, end_date)
		VALUES ('t1', -1, 'open', '2025-01-06', '2025-01-12')`)
	assert.Error(t, err, "negative indices must be rejected")
}

func TestMigrate_InvalidCadenceRejected(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO projects (id, name, created_at) VALUES ('p1', 'P', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO workstreams (id, project_id, name, cadence, first_cycle_start, created_at)
		VALUES ('w1', 'p1', 'W', 'fortnightly', '2025-01-06', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}
