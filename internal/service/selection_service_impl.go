package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type selectionService struct {
	settings    repository.SettingsRepo
	projects    repository.ProjectRepo
	workstreams repository.WorkstreamRepo
}

func NewSelectionService(settings repository.SettingsRepo, projects repository.ProjectRepo, workstreams repository.WorkstreamRepo) SelectionService {
	return &selectionService{settings: settings, projects: projects, workstreams: workstreams}
}

func (s *selectionService) SelectProject(ctx context.Context, projectID string) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	if err := s.settings.Set(ctx, repository.SettingSelectedProject, projectID); err != nil {
		return err
	}
	// A project switch invalidates the workstream pointer.
	return s.settings.Set(ctx, repository.SettingSelectedWorkstream, "")
}

func (s *selectionService) SelectWorkstream(ctx context.Context, workstreamID string) error {
	w, err := s.workstreams.GetByID(ctx, workstreamID)
	if err != nil {
		return err
	}
	if err := s.settings.Set(ctx, repository.SettingSelectedProject, w.ProjectID); err != nil {
		return err
	}
	return s.settings.Set(ctx, repository.SettingSelectedWorkstream, workstreamID)
}

func (s *selectionService) Resolve(ctx context.Context) (*domain.Selection, error) {
	sel := &domain.Selection{}

	projectID, err := s.settings.Get(ctx, repository.SettingSelectedProject)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolving selection: %w", err)
	}
	if projectID != "" {
		p, err := s.projects.GetByID(ctx, projectID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Stale pointer, fall through with a nil project.
		case err != nil:
			return nil, err
		default:
			sel.Project = p
		}
	}

	workstreamID, err := s.settings.Get(ctx, repository.SettingSelectedWorkstream)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolving selection: %w", err)
	}
	if workstreamID != "" && sel.Project != nil {
		w, err := s.workstreams.GetByID(ctx, workstreamID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			if w.ProjectID == sel.Project.ID {
				sel.Workstream = w
			}
		}
	}
	return sel, nil
}
