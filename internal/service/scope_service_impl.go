package service

import (
	"context"
	"sort"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type scopeService struct {
	projects    repository.ProjectRepo
	workstreams repository.WorkstreamRepo
	tasks       repository.TaskRepo
	milestones  repository.MilestoneRepo
}

func NewScopeService(projects repository.ProjectRepo, workstreams repository.WorkstreamRepo, tasks repository.TaskRepo, milestones repository.MilestoneRepo) ScopeService {
	return &scopeService{
		projects:    projects,
		workstreams: workstreams,
		tasks:       tasks,
		milestones:  milestones,
	}
}

func (s *scopeService) Hierarchy(ctx context.Context, projectID string) (*ProjectScope, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	workstreams, err := s.workstreams.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	scope := &ProjectScope{Project: p}
	for _, w := range workstreams {
		tasks, err := s.tasks.ListByWorkstream(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		scope.Workstreams = append(scope.Workstreams, WorkstreamScope{Workstream: w, Tasks: tasks})
	}
	return scope, nil
}

func (s *scopeService) MilestoneGroups(ctx context.Context, workstreamID string) ([]MilestoneGroup, error) {
	milestones, err := s.milestones.ListByWorkstream(ctx, workstreamID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByWorkstream(ctx, workstreamID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*MilestoneGroup)
	var groups []MilestoneGroup
	for _, m := range milestones {
		if m.Lifecycle != domain.LifecycleActive {
			continue
		}
		groups = append(groups, MilestoneGroup{Milestone: m})
	}
	for i := range groups {
		byID[groups[i].Milestone.ID] = &groups[i]
	}

	// Repository ordering already has due dates ascending with undated
	// milestones trailing; the no-milestone bucket closes the list. Tasks
	// pointing at a retired milestone land there too.
	var unassigned []*domain.Task
	for _, t := range tasks {
		if !t.Active() {
			continue
		}
		if t.MilestoneID != nil {
			if g, ok := byID[*t.MilestoneID]; ok {
				g.Tasks = append(g.Tasks, t)
				continue
			}
		}
		unassigned = append(unassigned, t)
	}
	groups = append(groups, MilestoneGroup{Tasks: unassigned})
	return groups, nil
}

func (s *scopeService) Owners(ctx context.Context, workstreamID string) ([]string, error) {
	tasks, err := s.tasks.ListByWorkstream(ctx, workstreamID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var owners []string
	for _, t := range tasks {
		name := strings.TrimSpace(t.Owner)
		if name == "" || name == ownerUnassigned {
			continue
		}
		if !seen[name] {
			seen[name] = true
			owners = append(owners, name)
		}
	}
	sort.Strings(owners)
	return owners, nil
}

const (
	// OwnerAll and OwnerUnassigned are the reserved filter keywords
	// accepted alongside literal owner names.
	OwnerAll        = "all"
	ownerUnassigned = "Unassigned"
)

// FilterByOwner narrows a task list to one owner bucket. "all" passes
// everything through; the "unassigned" keyword matches tasks whose owner is
// blank or exactly "Unassigned"; any other value is an exact trimmed match.
func FilterByOwner(tasks []*domain.Task, owner string) []*domain.Task {
	owner = strings.TrimSpace(owner)
	if owner == "" || strings.EqualFold(owner, OwnerAll) {
		return tasks
	}

	wantBlank := strings.EqualFold(owner, ownerUnassigned)
	var out []*domain.Task
	for _, t := range tasks {
		name := strings.TrimSpace(t.Owner)
		if wantBlank {
			if name == "" || name == ownerUnassigned {
				out = append(out, t)
			}
			continue
		}
		if name == owner {
			out = append(out, t)
		}
	}
	return out
}
