package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrPeriodNotReady guards ClosePeriod: the current period cannot be
	// closed until every active task's open cycle is reviewed.
	ErrPeriodNotReady = errors.New("period is not ready to close")

	// ErrNoActiveTasks guards ClosePeriod: an empty active set never closes.
	ErrNoActiveTasks = errors.New("workstream has no active tasks")

	// ErrInvalidIndex marks a negative or runaway period index. This is a
	// programming or data error, never a user-recoverable condition.
	ErrInvalidIndex = errors.New("invalid period index")
)
