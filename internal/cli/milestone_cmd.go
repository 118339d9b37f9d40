package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneRetireCmd(app),
		newMilestoneReactivateCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var workstream, due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}

			m := &domain.Milestone{WorkstreamID: w.ID, Title: args[0]}
			if due != "" {
				d, err := domain.ParseDate(due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				m.DueDate = &d
			}
			if err := app.Milestones.Create(ctx, m); err != nil {
				return err
			}
			fmt.Printf("Created milestone %s\n", m.Title)
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List milestones in a workstream",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			milestones, err := app.Milestones.ListByWorkstream(ctx, w.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderBox(w.Name, formatter.FormatMilestoneList(milestones)))
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}

func newMilestoneRetireCmd(app *App) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   "retire <milestone>",
		Short: "Retire a milestone and unassign its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			id, err := resolveMilestoneID(ctx, app, w.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Milestones.Retire(ctx, id); err != nil {
				return err
			}
			fmt.Println("Retired. Its tasks moved to the no-milestone bucket.")
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}

func newMilestoneReactivateCmd(app *App) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   "reactivate <milestone>",
		Short: "Return a retired milestone to the active set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			id, err := resolveMilestoneID(ctx, app, w.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Milestones.Reactivate(ctx, id); err != nil {
				return err
			}
			fmt.Println("Reactivated.")
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}
