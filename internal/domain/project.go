package domain

import "time"

// Project is a pure grouping node: it owns no cadence and no cycles.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
