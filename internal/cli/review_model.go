package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/cycle"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	focusActuals = iota
	focusNext
)

type savedMsg struct {
	taskIdx  int
	reviewed bool
	err      error
}

// reviewModel steps through one workstream's active tasks for the current
// period, editing actuals and next plan in textareas.
type reviewModel struct {
	app   *App
	w     *domain.Workstream
	tasks []*domain.Task
	index int
	span  period.Span

	cur     int
	focus   int
	actuals textarea.Model
	next    textarea.Model
	status  string
	done    bool
}

func newReviewModel(app *App, w *domain.Workstream, tasks []*domain.Task, index int, span period.Span) *reviewModel {
	m := &reviewModel{
		app:     app,
		w:       w,
		tasks:   tasks,
		index:   index,
		span:    span,
		actuals: newReviewTextarea("What happened this period?"),
		next:    newReviewTextarea("What is the plan for next period?"),
	}
	m.loadCurrent()
	return m
}

func newReviewTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(64)
	ta.SetHeight(4)
	ta.ShowLineNumbers = false
	return ta
}

func (m *reviewModel) loadCurrent() {
	c := m.tasks[m.cur].CycleAt(m.index)
	m.actuals.SetValue(c.Actuals)
	m.next.SetValue(c.NextPlan)
	m.focus = focusActuals
	m.actuals.Focus()
	m.next.Blur()
}

func (m *reviewModel) Init() tea.Cmd {
	return textarea.Blink
}

// save persists the textarea contents for the current task, optionally
// marking it reviewed.
func (m *reviewModel) save(reviewed bool) tea.Cmd {
	taskID := m.tasks[m.cur].ID
	taskIdx := m.cur
	actuals := m.actuals.Value()
	next := m.next.Value()
	index := m.index

	return func() tea.Msg {
		patch := cycle.Patch{Actuals: &actuals, NextPlan: &next}
		if reviewed {
			v := true
			patch.Reviewed = &v
		}
		err := m.app.Tasks.UpdateCycle(context.Background(), taskID, index, patch)
		return savedMsg{taskIdx: taskIdx, reviewed: reviewed, err: err}
	}
}

func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(fmt.Sprintf("Save failed: %v", msg.err))
			return m, nil
		}
		// Mirror the write into the in-memory task so the header counts stay
		// honest without a reload.
		c := m.tasks[msg.taskIdx].CycleAt(m.index)
		c.Actuals = m.actuals.Value()
		c.NextPlan = m.next.Value()
		if msg.reviewed {
			c.Reviewed = true
		}
		if msg.reviewed && m.cur < len(m.tasks)-1 {
			m.cur++
			m.loadCurrent()
			m.status = ""
		} else if msg.reviewed {
			m.done = true
			return m, tea.Quit
		} else {
			m.status = formatter.StyleGreen.Render("Saved.")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			if m.focus == focusActuals {
				m.focus = focusNext
				m.actuals.Blur()
				m.next.Focus()
			} else {
				m.focus = focusActuals
				m.next.Blur()
				m.actuals.Focus()
			}
			return m, nil
		case "ctrl+s":
			return m, m.save(false)
		case "ctrl+r":
			return m, m.save(true)
		case "ctrl+n":
			if m.cur < len(m.tasks)-1 {
				m.cur++
				m.loadCurrent()
				m.status = ""
			}
			return m, nil
		case "ctrl+p":
			if m.cur > 0 {
				m.cur--
				m.loadCurrent()
				m.status = ""
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusActuals {
		m.actuals, cmd = m.actuals.Update(msg)
	} else {
		m.next, cmd = m.next.Update(msg)
	}
	return m, cmd
}

func (m *reviewModel) View() string {
	if m.done {
		return formatter.StyleGreen.Render("All tasks reviewed.") + "\n"
	}

	t := m.tasks[m.cur]
	c := t.CycleAt(m.index)

	reviewed := 0
	for _, task := range m.tasks {
		if tc := task.CycleAt(m.index); tc != nil && tc.Reviewed {
			reviewed++
		}
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Review %s · period %s", m.w.Name, formatter.PeriodLabel(m.index, m.span))))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("Task %d of %d · %d reviewed", m.cur+1, len(m.tasks), reviewed)))
	b.WriteString("\n\n")

	b.WriteString(formatter.Bold(t.Name))
	if c.Owner != "" {
		b.WriteString(formatter.Dim("  — " + c.Owner))
	}
	if c.Reviewed {
		b.WriteString("  " + formatter.StyleGreen.Render("✓ reviewed"))
	}
	b.WriteString("\n\n")

	if c.PreviousPlan != "" {
		b.WriteString(formatter.Dim("Plan carried in: ") + c.PreviousPlan + "\n\n")
	}

	b.WriteString(sectionTitle("Actuals", m.focus == focusActuals) + "\n")
	b.WriteString(m.actuals.View() + "\n\n")
	b.WriteString(sectionTitle("Next plan", m.focus == focusNext) + "\n")
	b.WriteString(m.next.View() + "\n\n")

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(formatter.Dim("tab switch · ctrl+s save · ctrl+r save+review · ctrl+n/p next/prev · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func sectionTitle(title string, focused bool) string {
	if focused {
		return formatter.StyleHeader.Render(title)
	}
	return lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(title)
}
