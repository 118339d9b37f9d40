package formatter

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
)

// PeriodLabel renders "#3  2025-01-27 → 2025-02-02" for the board header.
func PeriodLabel(index int, span period.Span) string {
	return fmt.Sprintf("%s  %s → %s",
		Bold(fmt.Sprintf("#%d", index)),
		domain.FormatDate(span.Start),
		domain.FormatDate(span.End))
}

// FormatBoard renders the current-period check-in table for one workstream.
// Every task row shows the carried-over plan next to what has been filled in
// so far this period.
func FormatBoard(w *domain.Workstream, tasks []*domain.Task, index int, span period.Span) string {
	title := fmt.Sprintf("%s · %s · period %s", w.Name, w.Cadence, PeriodLabel(index, span))

	headers := []string{"TASK", "OWNER", "PREV PLAN", "ACTUALS", "NEXT PLAN", "REVIEWED"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		if !t.Active() {
			continue
		}
		c := t.CycleAt(index)
		if c == nil {
			// Follow-up scheduled for the next period.
			rows = append(rows, []string{Bold(t.Name), ownerCell(t.Owner), Dim("starts next period"), "", "", ""})
			continue
		}
		rows = append(rows, []string{
			Bold(t.Name),
			ownerCell(c.Owner),
			Snippet(c.PreviousPlan, 32),
			Snippet(c.Actuals, 32),
			Snippet(c.NextPlan, 32),
			ReviewedMark(c.Reviewed),
		})
	}
	if len(rows) == 0 {
		return RenderBox(title, Dim("No active tasks."))
	}
	return RenderBox(title, RenderTable(headers, rows))
}

// MilestoneSection is one heading of the grouped board view. A nil Milestone
// is the trailing unassigned bucket.
type MilestoneSection struct {
	Milestone *domain.Milestone
	Tasks     []*domain.Task
}

// FormatBoardByMilestone renders the board grouped into milestone sections.
func FormatBoardByMilestone(w *domain.Workstream, groups []MilestoneSection, index int, span period.Span) string {
	title := fmt.Sprintf("%s · period %s", w.Name, PeriodLabel(index, span))

	out := ""
	for _, g := range groups {
		heading := "No milestone"
		if g.Milestone != nil {
			heading = g.Milestone.Title
			if g.Milestone.DueDate != nil {
				heading += Dim(fmt.Sprintf("  (due %s)", domain.FormatDate(*g.Milestone.DueDate)))
			}
		}
		if len(g.Tasks) == 0 {
			continue
		}
		rows := make([][]string, 0, len(g.Tasks))
		for _, t := range g.Tasks {
			c := t.CycleAt(index)
			if c == nil {
				rows = append(rows, []string{Bold(t.Name), ownerCell(t.Owner), Dim("starts next period"), ""})
				continue
			}
			rows = append(rows, []string{
				Bold(t.Name),
				ownerCell(c.Owner),
				Snippet(c.Actuals, 40),
				ReviewedMark(c.Reviewed),
			})
		}
		out += Header(heading) + "\n" + RenderTable([]string{"TASK", "OWNER", "ACTUALS", "REVIEWED"}, rows) + "\n\n"
	}
	if out == "" {
		return RenderBox(title, Dim("No active tasks."))
	}
	return RenderBox(title, out)
}

func ownerCell(owner string) string {
	if owner == "" {
		return Dim("unassigned")
	}
	return owner
}
