package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Step through this period's check-ins interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("review needs an interactive terminal (use 'cadence log' instead)")
			}

			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			tasks, idx, span, err := app.Cycles.RefreshWorkstream(ctx, w.ID, domain.Today())
			if err != nil {
				return err
			}

			reviewable := make([]*domain.Task, 0, len(tasks))
			for _, t := range tasks {
				if t.Active() && t.CycleAt(idx) != nil {
					reviewable = append(reviewable, t)
				}
			}
			if len(reviewable) == 0 {
				fmt.Println("Nothing to review: no active tasks this period.")
				return nil
			}

			m := newReviewModel(app, w, reviewable, idx, span)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}
