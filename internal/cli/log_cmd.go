package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cycle"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var workstream, actuals, next string
	var reviewed, unreviewed bool

	cmd := &cobra.Command{
		Use:   "log <task>",
		Short: "Record actuals and the next plan on the open cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(ctx, app, w.ID, args[0])
			if err != nil {
				return err
			}

			// Bring the workstream current first so the edit lands on the
			// live period's cycle.
			_, idx, _, err := app.Cycles.RefreshWorkstream(ctx, w.ID, domain.Today())
			if err != nil {
				return err
			}

			patch := cycle.Patch{}
			if cmd.Flags().Changed("actuals") {
				patch.Actuals = &actuals
			}
			if cmd.Flags().Changed("next") {
				patch.NextPlan = &next
			}
			if reviewed {
				v := true
				patch.Reviewed = &v
			}
			if unreviewed {
				v := false
				patch.Reviewed = &v
			}
			if patch == (cycle.Patch{}) {
				return fmt.Errorf("nothing to log (use --actuals, --next, or --reviewed)")
			}

			if err := app.Tasks.UpdateCycle(ctx, taskID, idx, patch); err != nil {
				return err
			}
			fmt.Printf("Logged against period #%d\n", idx)
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	cmd.Flags().StringVar(&actuals, "actuals", "", "What actually happened this period")
	cmd.Flags().StringVar(&next, "next", "", "The plan for the next period")
	cmd.Flags().BoolVar(&reviewed, "reviewed", false, "Mark the cycle reviewed")
	cmd.Flags().BoolVar(&unreviewed, "unreviewed", false, "Clear the reviewed mark")

	return cmd
}
