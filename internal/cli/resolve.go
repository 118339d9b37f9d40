package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// resolveByName resolves user input against a list of (id, name) pairs:
// exact name match (case-insensitive) first, then exact ID, then unique name
// prefix. Ambiguity is an error rather than a guess.
func resolveByName(kind, input string, ids, names []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s is required", kind)
	}

	for i, n := range names {
		if strings.EqualFold(n, input) {
			return ids[i], nil
		}
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for i, n := range names {
		if strings.HasPrefix(strings.ToLower(n), strings.ToLower(input)) {
			matches = append(matches, ids[i])
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(projects))
	names := make([]string, len(projects))
	for i, p := range projects {
		ids[i], names[i] = p.ID, p.Name
	}
	return resolveByName("project", input, ids, names)
}

func resolveWorkstreamID(ctx context.Context, app *App, input string) (string, error) {
	workstreams, err := app.Workstreams.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(workstreams))
	names := make([]string, len(workstreams))
	for i, w := range workstreams {
		ids[i], names[i] = w.ID, w.Name
	}
	return resolveByName("workstream", input, ids, names)
}

// currentWorkstream resolves the --workstream flag, falling back to the
// persisted selection when the flag is empty.
func currentWorkstream(ctx context.Context, app *App, flagValue string) (*domain.Workstream, error) {
	if flagValue != "" {
		id, err := resolveWorkstreamID(ctx, app, flagValue)
		if err != nil {
			return nil, err
		}
		return app.Workstreams.GetByID(ctx, id)
	}
	sel, err := app.Selection.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if sel.Workstream == nil {
		return nil, fmt.Errorf("no workstream selected (use --workstream or 'cadence workstream select')")
	}
	return sel.Workstream, nil
}

func resolveTaskID(ctx context.Context, app *App, workstreamID, input string) (string, error) {
	tasks, err := app.Tasks.ListByWorkstream(ctx, workstreamID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	names := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i], names[i] = t.ID, t.Name
	}
	return resolveByName("task", input, ids, names)
}

func resolveMilestoneID(ctx context.Context, app *App, workstreamID, input string) (string, error) {
	milestones, err := app.Milestones.ListByWorkstream(ctx, workstreamID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(milestones))
	names := make([]string, len(milestones))
	for i, m := range milestones {
		ids[i], names[i] = m.ID, m.Title
	}
	return resolveByName("milestone", input, ids, names)
}
