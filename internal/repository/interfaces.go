package repository

import (
	"context"

	"github.com/alexanderramin/cadence/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type WorkstreamRepo interface {
	Create(ctx context.Context, w *domain.Workstream) error
	GetByID(ctx context.Context, id string) (*domain.Workstream, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Workstream, error)
	List(ctx context.Context) ([]*domain.Workstream, error)
}

// TaskRepo persists tasks together with their owned cycle lists. Update
// replaces the task's whole cycle history in place of diffing: the cycle
// list is small and the whole-state replacement matches how the engine
// mutates it.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Task, error)
	ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	ClearMilestone(ctx context.Context, milestoneID string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
}

// SettingsRepo is a small key-value store for UI state such as the selected
// project and workstream pointers.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Settings keys for the persisted selection pointers.
const (
	SettingSelectedProject    = "selected_project"
	SettingSelectedWorkstream = "selected_workstream"
)
