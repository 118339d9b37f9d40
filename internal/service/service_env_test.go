package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
)

// env bundles a fresh in-memory database with repos and services wired the
// same way main does.
type env struct {
	db  *sql.DB
	uow db.UnitOfWork

	projects    *repository.SQLiteProjectRepo
	workstreams *repository.SQLiteWorkstreamRepo
	tasks       *repository.SQLiteTaskRepo
	milestones  *repository.SQLiteMilestoneRepo
	settings    *repository.SQLiteSettingsRepo

	taskSvc      TaskService
	cycleSvc     CycleService
	closeSvc     CloseService
	scopeSvc     ScopeService
	importSvc    ImportService
	selectionSvc SelectionService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	e := &env{
		db:          database,
		uow:         uow,
		projects:    repository.NewSQLiteProjectRepo(database),
		workstreams: repository.NewSQLiteWorkstreamRepo(database),
		tasks:       repository.NewSQLiteTaskRepo(database),
		milestones:  repository.NewSQLiteMilestoneRepo(database),
		settings:    repository.NewSQLiteSettingsRepo(database),
	}
	e.taskSvc = NewTaskService(e.tasks, e.workstreams, uow)
	e.cycleSvc = NewCycleService(uow)
	e.closeSvc = NewCloseService(uow)
	e.scopeSvc = NewScopeService(e.projects, e.workstreams, e.tasks, e.milestones)
	e.importSvc = NewImportService(uow)
	e.selectionSvc = NewSelectionService(e.settings, e.projects, e.workstreams)
	return e
}
