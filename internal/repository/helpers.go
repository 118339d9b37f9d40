package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// parseNullableDate parses a sql.NullString into a *time.Time calendar date.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := domain.ParseDate(s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableDateToValue converts a *time.Time to a SQLite value, NULL when nil.
func nullableDateToValue(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return domain.FormatDate(*t)
}

// nullableStrToValue converts a *string to a SQLite value, NULL when nil.
func nullableStrToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// mustParseDate parses a stored YYYY-MM-DD value. Storage is written only by
// this package, so a parse failure means a corrupt row; the zero time keeps
// the read path total rather than panicking.
func mustParseDate(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
