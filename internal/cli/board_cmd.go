package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var workstream, owner string
	var byMilestone bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the current period's check-in board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := currentWorkstream(ctx, app, workstream)
			if err != nil {
				return err
			}

			// Opening the board materializes any periods that elapsed since
			// the last visit.
			tasks, idx, span, err := app.Cycles.RefreshWorkstream(ctx, w.ID, domain.Today())
			if err != nil {
				return err
			}

			if byMilestone {
				groups, err := app.Scope.MilestoneGroups(ctx, w.ID)
				if err != nil {
					return err
				}
				sections := make([]formatter.MilestoneSection, 0, len(groups))
				for _, g := range groups {
					sections = append(sections, formatter.MilestoneSection{
						Milestone: g.Milestone,
						Tasks:     service.FilterByOwner(g.Tasks, owner),
					})
				}
				fmt.Println(formatter.FormatBoardByMilestone(w, sections, idx, span))
				return nil
			}

			fmt.Println(formatter.FormatBoard(w, service.FilterByOwner(tasks, owner), idx, span))
			return nil
		},
	}

	addWorkstreamFlag(cmd.Flags(), &workstream)
	cmd.Flags().StringVar(&owner, "owner", "", `Filter by owner ("all", "unassigned", or a name)`)
	cmd.Flags().BoolVar(&byMilestone, "by-milestone", false, "Group the board by milestone")

	return cmd
}
