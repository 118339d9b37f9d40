package importer

import (
	"time"

	"github.com/alexanderramin/cadence/internal/cycle"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/google/uuid"
)

// Workspace holds the full set of entities generated from a document,
// ready for a single transactional insert.
type Workspace struct {
	Projects    []*domain.Project
	Workstreams []*domain.Workstream
	Milestones  []*domain.Milestone
	Tasks       []*domain.Task
}

// Convert transforms a validated document into domain entities. Every
// workstream's anchor defaults to the cadence-aligned start of the current
// period on the import day, and every task receives its first open cycle at
// index 0. Call ValidateDocument first; Convert assumes the document is
// valid.
func Convert(doc *Document, today time.Time) (*Workspace, error) {
	now := time.Now().UTC()
	ws := &Workspace{}

	for _, p := range doc.Projects {
		project := &domain.Project{
			ID:        uuid.New().String(),
			Name:      p.Name,
			CreatedAt: now,
		}
		ws.Projects = append(ws.Projects, project)

		for _, w := range p.Workstreams {
			cadence := domain.Cadence(w.Cadence)
			stream := &domain.Workstream{
				ID:              uuid.New().String(),
				ProjectID:       project.ID,
				Name:            w.Name,
				Cadence:         cadence,
				FirstCycleStart: period.AlignedStart(cadence, today),
				Lead:            w.Lead,
				CreatedAt:       now,
			}
			ws.Workstreams = append(ws.Workstreams, stream)

			var milestoneID *string
			if w.Milestone != "" {
				ms := &domain.Milestone{
					ID:           uuid.New().String(),
					WorkstreamID: stream.ID,
					Title:        w.Milestone,
					DueDate:      parseOptionalDate(w.MilestoneDate),
					Lifecycle:    domain.LifecycleActive,
					CreatedAt:    now,
				}
				ws.Milestones = append(ws.Milestones, ms)
				milestoneID = &ms.ID
			}

			for _, ti := range w.Tasks {
				task := &domain.Task{
					ID:           uuid.New().String(),
					WorkstreamID: stream.ID,
					MilestoneID:  milestoneID,
					Name:         ti.Name,
					Owner:        ti.Owner,
					Lifecycle:    domain.LifecycleActive,
					CreatedAt:    now,
				}
				if err := cycle.EnsureUpTo(task, cadence, stream.FirstCycleStart, 0); err != nil {
					return nil, err
				}
				ws.Tasks = append(ws.Tasks, task)
			}
		}
	}

	return ws, nil
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
