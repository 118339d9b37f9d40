package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(start, end string) period.Span {
	s, _ := domain.ParseDate(start)
	e, _ := domain.ParseDate(end)
	return period.Span{Start: s, End: e}
}

func TestFormatBoard(t *testing.T) {
	w := &domain.Workstream{Name: "Infra weekly", Cadence: domain.CadenceWeekly}
	tasks := []*domain.Task{
		{
			Name:      "Deploy pipeline",
			Owner:     "Alex",
			Lifecycle: domain.LifecycleActive,
			Cycles: []domain.Cycle{{
				Index:        0,
				Status:       domain.CycleOpen,
				PreviousPlan: "ship the runner",
				Actuals:      "runner shipped",
				NextPlan:     "monitor rollout",
				Owner:        "Alex",
				Reviewed:     true,
			}},
		},
		{Name: "Retired thing", Lifecycle: domain.LifecycleInactive},
	}

	out := FormatBoard(w, tasks, 0, span("2025-01-06", "2025-01-12"))
	assert.Contains(t, out, "Deploy pipeline")
	assert.Contains(t, out, "runner shipped")
	assert.NotContains(t, out, "Retired thing")
}

func TestFormatBoard_Empty(t *testing.T) {
	w := &domain.Workstream{Name: "Infra weekly", Cadence: domain.CadenceWeekly}
	out := FormatBoard(w, nil, 0, span("2025-01-06", "2025-01-12"))
	assert.Contains(t, out, "No active tasks")
}

func TestFormatHistory(t *testing.T) {
	w := &domain.Workstream{Name: "Infra weekly"}
	task := &domain.Task{
		Name: "Deploy pipeline",
		Cycles: []domain.Cycle{
			{Index: 0, Status: domain.CycleClosed, Actuals: "done"},
			{Index: 1, Status: domain.CycleOpen, PreviousPlan: "next up"},
		},
	}
	out := FormatHistory(task, w)
	assert.Contains(t, out, "CLOSED")
	assert.Contains(t, out, "OPEN")
	assert.Contains(t, out, "next up")
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", Snippet("short", 10))
	assert.Contains(t, Snippet("", 10), "—")

	long := Snippet(strings.Repeat("x", 50), 10)
	require.Len(t, []rune(long), 10)
	assert.True(t, strings.HasSuffix(long, "…"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"aa", "b"}, {"c", "dd"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "LONGER")
}
