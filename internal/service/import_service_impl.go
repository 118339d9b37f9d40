package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/alexanderramin/cadence/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportFile(ctx context.Context, path string, today time.Time) (*ImportResult, error) {
	doc, err := importer.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return s.ImportDocument(ctx, doc, today)
}

func (s *importService) ImportDocument(ctx context.Context, doc *importer.Document, today time.Time) (*ImportResult, error) {
	if errs := importer.ValidateDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("import rejected: %w", errors.Join(errs...))
	}
	ws, err := importer.Convert(doc, today)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txWorkstreams := repository.NewSQLiteWorkstreamRepo(tx)
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		for _, p := range ws.Projects {
			if err := txProjects.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, w := range ws.Workstreams {
			if err := txWorkstreams.Create(ctx, w); err != nil {
				return err
			}
		}
		for _, m := range ws.Milestones {
			if err := txMilestones.Create(ctx, m); err != nil {
				return err
			}
		}
		for _, t := range ws.Tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Projects:    len(ws.Projects),
		Workstreams: len(ws.Workstreams),
		Milestones:  len(ws.Milestones),
		Tasks:       len(ws.Tasks),
	}, nil
}
