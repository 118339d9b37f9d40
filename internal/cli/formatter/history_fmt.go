package formatter

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatHistory renders a task's full cycle ledger, oldest first.
func FormatHistory(t *domain.Task, w *domain.Workstream) string {
	title := fmt.Sprintf("%s · %s", t.Name, w.Name)

	headers := []string{"#", "PERIOD", "STATUS", "PREV PLAN", "ACTUALS", "NEXT PLAN", "OWNER"}
	rows := make([][]string, 0, len(t.Cycles))
	for _, c := range t.Cycles {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Index),
			fmt.Sprintf("%s → %s", domain.FormatDate(c.StartDate), domain.FormatDate(c.EndDate)),
			CycleStatusPill(c.Status),
			Snippet(c.PreviousPlan, 28),
			Snippet(c.Actuals, 28),
			Snippet(c.NextPlan, 28),
			ownerCell(c.Owner),
		})
	}
	if len(rows) == 0 {
		return RenderBox(title, Dim("No cycles yet."))
	}
	return RenderBox(title, RenderTable(headers, rows))
}

// FormatWorkstreamList renders the workstream picker table.
func FormatWorkstreamList(workstreams []*domain.Workstream, selectedID string) string {
	headers := []string{"", "NAME", "CADENCE", "ANCHOR", "LEAD"}
	rows := make([][]string, 0, len(workstreams))
	for _, w := range workstreams {
		marker := " "
		if w.ID == selectedID {
			marker = StyleHeader.Render("▶")
		}
		rows = append(rows, []string{
			marker,
			Bold(w.Name),
			string(w.Cadence),
			domain.FormatDate(w.FirstCycleStart),
			ownerCell(w.Lead),
		})
	}
	return RenderBox("Workstreams", RenderTable(headers, rows))
}

// FormatTaskList renders the task table for a workstream.
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"TASK", "OWNER", "STATUS", "CYCLES"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			Bold(t.Name),
			ownerCell(t.Owner),
			LifecyclePill(t.Lifecycle),
			fmt.Sprintf("%d", len(t.Cycles)),
		})
	}
	if len(rows) == 0 {
		return Dim("No tasks.")
	}
	return RenderTable(headers, rows)
}

// FormatMilestoneList renders the milestone table for a workstream.
func FormatMilestoneList(milestones []*domain.Milestone) string {
	headers := []string{"MILESTONE", "DUE", "STATUS"}
	rows := make([][]string, 0, len(milestones))
	for _, m := range milestones {
		due := Dim("—")
		if m.DueDate != nil {
			due = domain.FormatDate(*m.DueDate)
		}
		rows = append(rows, []string{Bold(m.Title), due, LifecyclePill(m.Lifecycle)})
	}
	if len(rows) == 0 {
		return Dim("No milestones.")
	}
	return RenderTable(headers, rows)
}
