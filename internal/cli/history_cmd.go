package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   "history <task>",
		Short: "Show a task's full cycle ledger",
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
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatHistory(t, w))
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}
