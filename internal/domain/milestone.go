package domain

import "time"

// Milestone is a named gate inside a workstream. Tasks reference it by ID as
// a lookup key only; retiring a milestone clears that key on every
// referencing task without touching their cycles.
type Milestone struct {
	ID           string
	WorkstreamID string
	Title        string
	DueDate      *time.Time
	Lifecycle    Lifecycle
	CreatedAt    time.Time
}

// Active reports whether the milestone still groups tasks in scope views.
func (m *Milestone) Active() bool {
	return m.Lifecycle == LifecycleActive
}
