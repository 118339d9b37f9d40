package testutil

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/google/uuid"
)

// Date parses a YYYY-MM-DD string, panicking on bad fixture input.
func Date(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func NewTestProject(name string) *domain.Project {
	return &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Workstream options
type WorkstreamOption func(*domain.Workstream)

func WithCadence(c domain.Cadence) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.Cadence = c
	}
}

func WithAnchor(d time.Time) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.FirstCycleStart = d
	}
}

func WithLead(lead string) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.Lead = lead
	}
}

func NewTestWorkstream(projectID, name string, opts ...WorkstreamOption) *domain.Workstream {
	w := &domain.Workstream{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		Name:            name,
		Cadence:         domain.CadenceWeekly,
		FirstCycleStart: Date("2025-01-06"),
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Task options
type TaskOption func(*domain.Task)

func WithOwner(owner string) TaskOption {
	return func(t *domain.Task) {
		t.Owner = owner
	}
}

func WithLifecycle(l domain.Lifecycle) TaskOption {
	return func(t *domain.Task) {
		t.Lifecycle = l
	}
}

func WithMilestoneID(id string) TaskOption {
	return func(t *domain.Task) {
		t.MilestoneID = &id
	}
}

func WithCycles(cycles ...domain.Cycle) TaskOption {
	return func(t *domain.Task) {
		t.Cycles = cycles
	}
}

func NewTestTask(workstreamID, name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:           uuid.New().String(),
		WorkstreamID: workstreamID,
		Name:         name,
		Lifecycle:    domain.LifecycleActive,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithDueDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.DueDate = &d
	}
}

func WithMilestoneLifecycle(l domain.Lifecycle) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Lifecycle = l
	}
}

func NewTestMilestone(workstreamID, title string, opts ...MilestoneOption) *domain.Milestone {
	m := &domain.Milestone{
		ID:           uuid.New().String(),
		WorkstreamID: workstreamID,
		Title:        title,
		Lifecycle:    domain.LifecycleActive,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
