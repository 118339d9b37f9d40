package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens the cadence SQLite database at the given path, creating the
// parent directory and schema as needed. ":memory:" opens an in-memory
// database (used by tests). WAL mode and foreign key enforcement are enabled.
//
// A file that cannot be opened as a database is moved aside to
// "<path>.corrupt" and replaced with a fresh one, so the tool always starts
// even if the store was damaged; the empty database routes the user back to
// onboarding.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	database, err := open(path)
	if err == nil || path == ":memory:" {
		return database, err
	}

	if quarantineErr := quarantine(path); quarantineErr != nil {
		return nil, err
	}
	database, retryErr := open(path)
	if retryErr != nil {
		return nil, fmt.Errorf("reopening after quarantining corrupt database: %w", retryErr)
	}
	return database, nil
}

func open(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := database.Exec("PRAGMA journal_mode = WAL"); err != nil {
		database.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return database, nil
}

// quarantine moves a damaged database file to "<path>.corrupt" and drops its
// WAL sidecars, which would otherwise attach to the replacement file.
func quarantine(path string) error {
	if err := os.Rename(path, path+".corrupt"); err != nil {
		return err
	}
	os.Remove(path + "-wal")
	os.Remove(path + "-shm")
	return nil
}
