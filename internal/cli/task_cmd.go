package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage recurring tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskRetireCmd(app),
		newTaskReactivateCmd(app),
		newTaskAssignCmd(app),
		newTaskOwnerCmd(app),
		newTaskOwnersCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var workstream, owner string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a recurring task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}

			t := &domain.Task{
				WorkstreamID: w.ID,
				Name:         args[0],
				Owner:        owner,
			}
			if err := app.Tasks.Create(ctx, t, domain.Today()); err != nil {
				return err
			}
			fmt.Printf("Created task %s in %s\n", t.Name, w.Name)
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	cmd.Flags().StringVar(&owner, "owner", "", "Task owner")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var workstream string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a workstream",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}

			tasks, err := app.Tasks.ListByWorkstream(ctx, w.ID)
			if err != nil {
				return err
			}
			if !all {
				active := tasks[:0]
				for _, t := range tasks {
					if t.Active() {
						active = append(active, t)
					}
				}
				tasks = active
			}
			fmt.Println(formatter.RenderBox(w.Name, formatter.FormatTaskList(tasks)))
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	cmd.Flags().BoolVar(&all, "all", false, "Include retired tasks")

	return cmd
}

func taskLifecycleCmd(app *App, use, short string, apply func(ctx context.Context, id string) error, verb string) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, w.ID, args[0])
			if err != nil {
				return err
			}
			if err := apply(ctx, id); err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", verb, t.Name)
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}

func newTaskRetireCmd(app *App) *cobra.Command {
	return taskLifecycleCmd(app, "retire <task>", "Remove a task from the active set",
		func(ctx context.Context, id string) error { return app.Tasks.Retire(ctx, id) }, "Retired")
}

func newTaskReactivateCmd(app *App) *cobra.Command {
	return taskLifecycleCmd(app, "reactivate <task>", "Return a retired task to the active set",
		func(ctx context.Context, id string) error { return app.Tasks.Reactivate(ctx, id) }, "Reactivated")
}

func newTaskAssignCmd(app *App) *cobra.Command {
	var workstream, milestone string
	var clear bool

	cmd := &cobra.Command{
		Use:   "assign <task>",
		Short: "Assign a task to a milestone (or clear it)",
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

			if clear {
				if err := app.Tasks.AssignMilestone(ctx, taskID, nil); err != nil {
					return err
				}
				fmt.Println("Cleared milestone assignment.")
				return nil
			}
			if milestone == "" {
				return fmt.Errorf("either --milestone or --clear is required")
			}
			milestoneID, err := resolveMilestoneID(ctx, app, w.ID, milestone)
			if err != nil {
				return err
			}
			if err := app.Tasks.AssignMilestone(ctx, taskID, &milestoneID); err != nil {
				return err
			}
			fmt.Println("Assigned.")
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	cmd.Flags().StringVar(&milestone, "milestone", "", "Milestone to assign")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the current assignment")

	return cmd
}

func newTaskOwnersCmd(app *App) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   "owners",
		Short: "List the distinct owners in a workstream",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			owners, err := app.Scope.Owners(ctx, w.ID)
			if err != nil {
				return err
			}
			if len(owners) == 0 {
				fmt.Println("No owners assigned.")
				return nil
			}
			for _, o := range owners {
				fmt.Println(o)
			}
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}

func newTaskOwnerCmd(app *App) *cobra.Command {
	var workstream string

	cmd := &cobra.Command{
		Use:   "owner <task> <owner>",
		Short: "Change a task's owner going forward",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, w.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetOwner(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Printf("Owner set to %s\n", args[1])
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	return cmd
}
