package formatter

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/charmbracelet/lipgloss"
)

// FormatReadiness renders the pre-close summary for a workstream.
func FormatReadiness(w *domain.Workstream, index int, span period.Span, total, prepared, missing int, canClose bool, tasks []*domain.Task) string {
	title := fmt.Sprintf("Close %s · period %s", w.Name, PeriodLabel(index, span))

	summary := fmt.Sprintf("%d active · %s prepared · %s missing\n",
		total,
		StyleGreen.Render(fmt.Sprintf("%d", prepared)),
		missingStyle(missing).Render(fmt.Sprintf("%d", missing)))
	if canClose {
		summary += StyleGreen.Render("Ready to close.")
	} else if total == 0 {
		summary += StyleRed.Render("Nothing to close: no active tasks.")
	} else {
		summary += StyleYellow.Render("Not ready: every active task must be reviewed.")
	}

	headers := []string{"TASK", "ACTUALS", "NEXT PLAN", "REVIEWED"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		if !t.Active() {
			continue
		}
		c := t.CycleAt(index)
		if c == nil {
			continue
		}
		rows = append(rows, []string{
			Bold(t.Name),
			filledMark(c.Actuals),
			filledMark(c.NextPlan),
			ReviewedMark(c.Reviewed),
		})
	}

	body := summary
	if len(rows) > 0 {
		body += "\n\n" + RenderTable(headers, rows)
	}
	return RenderBox(title, body)
}

func missingStyle(missing int) lipgloss.Style {
	if missing == 0 {
		return StyleGreen
	}
	return StyleYellow
}

func filledMark(text string) string {
	if text == "" {
		return StyleYellow.Render("·")
	}
	return StyleGreen.Render("✓")
}
