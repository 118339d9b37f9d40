package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a workspace from a JSON onboarding document",
		Long: "Validates the whole document first; any error rejects the import and\n" +
			"nothing is constructed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportFile(context.Background(), args[0], domain.Today())
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d project(s), %d workstream(s), %d milestone(s), %d task(s)\n",
				res.Projects, res.Workstreams, res.Milestones, res.Tasks)
			return nil
		},
	}
}
