package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkstreamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workstream",
		Aliases: []string{"ws"},
		Short:   "Manage workstreams",
	}

	cmd.AddCommand(
		newWorkstreamAddCmd(app),
		newWorkstreamListCmd(app),
		newWorkstreamSelectCmd(app),
	)

	return cmd
}

func newWorkstreamAddCmd(app *App) *cobra.Command {
	var project, cadenceStr, anchor, lead string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a workstream in the selected project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectID := ""
			if project != "" {
				id, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				projectID = id
			} else {
				sel, err := app.Selection.Resolve(ctx)
				if err != nil {
					return err
				}
				if sel.Project == nil {
					return fmt.Errorf("no project selected (use --project or 'cadence project select')")
				}
				projectID = sel.Project.ID
			}

			w := &domain.Workstream{
				ProjectID: projectID,
				Name:      args[0],
				Cadence:   domain.Cadence(cadenceStr),
				Lead:      lead,
			}
			if anchor != "" {
				start, err := domain.ParseDate(anchor)
				if err != nil {
					return fmt.Errorf("invalid anchor date %q: %w", anchor, err)
				}
				w.FirstCycleStart = start
			}

			if err := app.Workstreams.Create(ctx, w, domain.Today()); err != nil {
				return err
			}
			fmt.Printf("Created workstream %s (%s, first cycle %s)\n",
				w.Name, w.Cadence, domain.FormatDate(w.FirstCycleStart))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (defaults to the selected one)")
	cmd.Flags().StringVar(&cadenceStr, "cadence", "weekly", "Cadence: daily, weekly, biweekly, monthly, quarterly")
	cmd.Flags().StringVar(&anchor, "anchor", "", "First cycle start date (YYYY-MM-DD, defaults to the aligned start of this period)")
	cmd.Flags().StringVar(&lead, "lead", "", "Workstream lead")

	return cmd
}

func newWorkstreamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workstreams in the selected project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sel, err := app.Selection.Resolve(ctx)
			if err != nil {
				return err
			}
			if sel.Project == nil {
				return fmt.Errorf("no project selected (use 'cadence project select')")
			}

			workstreams, err := app.Workstreams.ListByProject(ctx, sel.Project.ID)
			if err != nil {
				return err
			}
			if len(workstreams) == 0 {
				fmt.Println("No workstreams in this project.")
				return nil
			}

			selectedID := ""
			if sel.Workstream != nil {
				selectedID = sel.Workstream.ID
			}
			fmt.Println(formatter.FormatWorkstreamList(workstreams, selectedID))
			return nil
		},
	}
}

func newWorkstreamSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <workstream>",
		Short: "Set the default workstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkstreamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Selection.SelectWorkstream(ctx, id); err != nil {
				return err
			}
			w, err := app.Workstreams.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Selected workstream %s\n", w.Name)
			return nil
		},
	}
}
