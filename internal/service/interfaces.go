package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/cycle"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/alexanderramin/cadence/internal/period"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type WorkstreamService interface {
	// Create validates and persists a workstream. A zero FirstCycleStart is
	// defaulted to the cadence-aligned start of the current period.
	Create(ctx context.Context, w *domain.Workstream, today time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Workstream, error)
	List(ctx context.Context) ([]*domain.Workstream, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Workstream, error)
	// CurrentPeriod returns the live period index and range for the
	// workstream's cadence.
	CurrentPeriod(ctx context.Context, id string, today time.Time) (int, period.Span, error)
}

type TaskService interface {
	// Create persists a new task with its history materialized up to the
	// workstream's current period.
	Create(ctx context.Context, t *domain.Task, today time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Task, error)
	// Retire removes the task from the active set. Its cycles, including a
	// currently open one, are left exactly as they are.
	Retire(ctx context.Context, id string) error
	// Reactivate returns the task to the active set; missing periods are
	// backfilled on the next materialization.
	Reactivate(ctx context.Context, id string) error
	AssignMilestone(ctx context.Context, taskID string, milestoneID *string) error
	SetOwner(ctx context.Context, taskID, owner string) error
	// UpdateCycle applies a partial edit to one cycle. Edits to closed
	// cycles are silently dropped: the UI never offers them.
	UpdateCycle(ctx context.Context, taskID string, index int, patch cycle.Patch) error
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	ListByWorkstream(ctx context.Context, workstreamID string) ([]*domain.Milestone, error)
	// Retire deactivates the milestone and clears the reference on every
	// task that pointed at it, in one transaction. Task cycles are never
	// touched.
	Retire(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
}

type CycleService interface {
	// RefreshWorkstream lazily materializes every active task's cycle
	// history up to the workstream's current period, in one transaction,
	// and returns all tasks plus the live period.
	RefreshWorkstream(ctx context.Context, workstreamID string, today time.Time) ([]*domain.Task, int, period.Span, error)
}

// Readiness summarizes how close a workstream's current period is to
// closing. Prepared/Missing are display-only; CanClose is the actual gate.
type Readiness struct {
	WorkstreamID string
	Index        int
	Span         period.Span
	Total        int
	Prepared     int
	Missing      int
	CanClose     bool
}

type CloseService interface {
	Readiness(ctx context.Context, workstreamID string, today time.Time) (*Readiness, error)
	// ClosePeriod advances every active task in the workstream to the next
	// period, all-or-nothing. It returns domain.ErrPeriodNotReady or
	// domain.ErrNoActiveTasks without touching anything when the review
	// gate fails.
	ClosePeriod(ctx context.Context, workstreamID string, today time.Time) error
	// CaptureFollowUp creates a task born mid-stream: its first cycle sits
	// at the next period's index, so it appears after the current period
	// closes rather than in it.
	CaptureFollowUp(ctx context.Context, workstreamID, name, owner string, today time.Time) (*domain.Task, error)
}

// WorkstreamScope pairs a workstream with its tasks for hierarchy views.
type WorkstreamScope struct {
	Workstream *domain.Workstream
	Tasks      []*domain.Task
}

// ProjectScope is a project with all contained workstreams and their tasks.
type ProjectScope struct {
	Project     *domain.Project
	Workstreams []WorkstreamScope
}

// MilestoneGroup is one bucket of the milestone projection. A nil Milestone
// is the trailing "no milestone" bucket.
type MilestoneGroup struct {
	Milestone *domain.Milestone
	Tasks     []*domain.Task
}

type ScopeService interface {
	Hierarchy(ctx context.Context, projectID string) (*ProjectScope, error)
	// MilestoneGroups buckets the workstream's active tasks by active
	// milestone, ordered by due date ascending with the no-milestone
	// bucket last. Recomputed on every read.
	MilestoneGroups(ctx context.Context, workstreamID string) ([]MilestoneGroup, error)
	// Owners returns the distinct trimmed owner names across a
	// workstream's tasks, sorted, excluding unassigned.
	Owners(ctx context.Context, workstreamID string) ([]string, error)
}

// ImportResult reports what a successful import constructed.
type ImportResult struct {
	Projects    int
	Workstreams int
	Milestones  int
	Tasks       int
}

type ImportService interface {
	ImportFile(ctx context.Context, path string, today time.Time) (*ImportResult, error)
	ImportDocument(ctx context.Context, doc *importer.Document, today time.Time) (*ImportResult, error)
}

type SelectionService interface {
	SelectProject(ctx context.Context, projectID string) error
	SelectWorkstream(ctx context.Context, workstreamID string) error
	// Resolve turns the persisted selection pointers into entities,
	// degrading stale or missing pointers to nil.
	Resolve(ctx context.Context) (*domain.Selection, error)
}
