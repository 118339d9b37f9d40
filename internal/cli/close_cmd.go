package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newCloseCmd(app *App) *cobra.Command {
	var workstream, followUp, owner string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close the current period and open the next one",
		Long: "Shows the readiness summary and closes the current period once every\n" +
			"active task has been reviewed. Closing seeds each task's next cycle from\n" +
			"its next plan.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			today := domain.Today()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}

			if followUp != "" {
				t, err := app.Close.CaptureFollowUp(ctx, w.ID, followUp, owner, today)
				if err != nil {
					return err
				}
				fmt.Printf("Captured follow-up %s for period #%d\n", t.Name, t.Cycles[0].Index)
			}

			r, err := app.Close.Readiness(ctx, w.ID, today)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByWorkstream(ctx, w.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatReadiness(w, r.Index, r.Span, r.Total, r.Prepared, r.Missing, r.CanClose, tasks))

			if dryRun || !r.CanClose {
				return nil
			}

			if err := app.Close.ClosePeriod(ctx, w.ID, today); err != nil {
				switch {
				case errors.Is(err, domain.ErrPeriodNotReady):
					fmt.Println(formatter.Dim("Period left open: review completed tasks first."))
					return nil
				case errors.Is(err, domain.ErrNoActiveTasks):
					fmt.Println(formatter.Dim("Period left open: no active tasks."))
					return nil
				default:
					return err
				}
			}
			fmt.Printf("Closed period #%d; period #%d is now open.\n", r.Index, r.Index+1)
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	cmd.Flags().StringVar(&followUp, "follow-up", "", "Capture a follow-up task starting next period")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner for the follow-up task")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show readiness without closing")

	return cmd
}
