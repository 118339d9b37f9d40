package cli

import (
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects    service.ProjectService
	Workstreams service.WorkstreamService
	Tasks       service.TaskService
	Milestones  service.MilestoneService
	Cycles      service.CycleService
	Close       service.CloseService
	Scope       service.ScopeService
	Import      service.ImportService
	Selection   service.SelectionService

	// IsInteractive reports whether stdin is a terminal; the review TUI and
	// the init wizard refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Recurring check-in tracker for teams on a fixed cadence",
	}

	root.AddCommand(
		newInitCmd(app),
		newImportCmd(app),
		newProjectCmd(app),
		newWorkstreamCmd(app),
		newTaskCmd(app),
		newMilestoneCmd(app),
		newBoardCmd(app),
		newLogCmd(app),
		newReviewCmd(app),
		newCloseCmd(app),
		newHistoryCmd(app),
	)

	return root
}
