package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up a workspace interactively",
		Long: "Walks through project, workstream, and initial tasks, then imports the\n" +
			"result as one document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("init needs an interactive terminal (use 'cadence import' instead)")
			}
			return runInitWizard(context.Background(), app)
		},
	}
}

func runInitWizard(ctx context.Context, app *App) error {
	doc, err := collectOnboarding()
	if err != nil {
		return err
	}
	if doc == nil {
		fmt.Println("Cancelled.")
		return nil
	}

	res, err := app.Import.ImportDocument(ctx, doc, domain.Today())
	if err != nil {
		return err
	}
	fmt.Printf("Workspace ready: %d project(s), %d workstream(s), %d task(s)\n",
		res.Projects, res.Workstreams, res.Tasks)

	// Make the new workstream the default so board/log work immediately.
	workstreams, err := app.Workstreams.List(ctx)
	if err == nil && len(workstreams) > 0 {
		_ = app.Selection.SelectWorkstream(ctx, workstreams[0].ID)
	}
	return nil
}

// collectOnboarding runs the huh forms and assembles the import document.
// Returns nil when the user backs out at the confirmation step.
func collectOnboarding() (*importer.Document, error) {
	var (
		projectName    string
		workstreamName string
		cadenceStr     string
		lead           string
		milestone      string
		milestoneDate  string
		taskLines      string
		confirmed      bool
	)

	cadenceOptions := make([]huh.Option[string], 0, len(domain.CadenceOrder))
	for _, c := range domain.CadenceOrder {
		cadenceOptions = append(cadenceOptions, huh.NewOption(string(c), string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("Platform").
				Value(&projectName).
				Validate(required("project name")),
			huh.NewInput().
				Title("First workstream").
				Placeholder("Infra weekly sync").
				Value(&workstreamName).
				Validate(required("workstream name")),
			huh.NewSelect[string]().
				Title("Cadence").
				Options(cadenceOptions...).
				Value(&cadenceStr),
			huh.NewInput().
				Title("Workstream lead (optional)").
				Value(&lead),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Milestone (optional)").
				Placeholder("GA launch").
				Value(&milestone),
			huh.NewInput().
				Title("Milestone due date (YYYY-MM-DD, optional)").
				Value(&milestoneDate).
				Validate(optionalDate),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Initial tasks, one per line").
				Description("Optionally add an owner after a comma: \"Deploy pipeline, Alex\"").
				Value(&taskLines).
				Validate(required("at least one task")),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create this workspace?").
				Value(&confirmed),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}

	tasks := parseTaskLines(taskLines)
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks entered")
	}

	return &importer.Document{
		Projects: []importer.ProjectImport{{
			Name: strings.TrimSpace(projectName),
			Workstreams: []importer.WorkstreamImport{{
				Name:          strings.TrimSpace(workstreamName),
				Cadence:       cadenceStr,
				Lead:          strings.TrimSpace(lead),
				Milestone:     strings.TrimSpace(milestone),
				MilestoneDate: strings.TrimSpace(milestoneDate),
				Tasks:         tasks,
			}},
		}},
	}, nil
}

// parseTaskLines turns "name, owner" lines into task imports. Blank lines
// are skipped.
func parseTaskLines(text string) []importer.TaskImport {
	var tasks []importer.TaskImport
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, owner := line, ""
		if i := strings.LastIndex(line, ","); i >= 0 {
			name = strings.TrimSpace(line[:i])
			owner = strings.TrimSpace(line[i+1:])
		}
		if name == "" {
			continue
		}
		tasks = append(tasks, importer.TaskImport{Name: name, Owner: owner})
	}
	return tasks
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func optionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
