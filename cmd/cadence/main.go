package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/cadence/internal/cli"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.cadence/cadence.db
	dbPath := os.Getenv("CADENCE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".cadence", "cadence.db")
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	workstreamRepo := repository.NewSQLiteWorkstreamRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo),
		Workstreams: service.NewWorkstreamService(workstreamRepo),
		Tasks:       service.NewTaskService(taskRepo, workstreamRepo, uow),
		Milestones:  service.NewMilestoneService(milestoneRepo, uow),
		Cycles:      service.NewCycleService(uow),
		Close:       service.NewCloseService(uow),
		Scope:       service.NewScopeService(projectRepo, workstreamRepo, taskRepo, milestoneRepo),
		Import:      service.NewImportService(uow),
		Selection:   service.NewSelectionService(settingsRepo, projectRepo, workstreamRepo),
	}

	// Detect interactive terminal for the wizard and review TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
