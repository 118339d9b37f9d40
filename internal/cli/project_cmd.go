package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectSelectCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{Name: args[0]}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s\n", p.Name)
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found. Run 'cadence init' to get started.")
				return nil
			}

			sel, err := app.Selection.Resolve(ctx)
			if err != nil {
				return err
			}

			headers := []string{"", "NAME", "WORKSTREAMS", "TASKS"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				marker := " "
				if sel.Project != nil && sel.Project.ID == p.ID {
					marker = formatter.StyleHeader.Render("▶")
				}
				scope, err := app.Scope.Hierarchy(ctx, p.ID)
				if err != nil {
					return err
				}
				taskCount := 0
				for _, ws := range scope.Workstreams {
					for _, t := range ws.Tasks {
						if t.Active() {
							taskCount++
						}
					}
				}
				rows = append(rows, []string{
					marker,
					formatter.Bold(p.Name),
					fmt.Sprintf("%d", len(scope.Workstreams)),
					fmt.Sprintf("%d", taskCount),
				})
			}
			fmt.Println(formatter.RenderBox("Projects", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newProjectSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <project>",
		Short: "Set the default project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Selection.SelectProject(ctx, id); err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Selected project %s\n", p.Name)
			return nil
		},
	}
}
