package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/alexanderramin/cadence/internal/teatest"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(start, end string) period.Span {
	return period.Span{Start: testutil.Date(start), End: testutil.Date(end)}
}

type reviewEnv struct {
	app   *App
	w     *domain.Workstream
	tasks []*domain.Task
}

func newReviewEnv(t *testing.T, taskNames ...string) *reviewEnv {
	t.Helper()
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	projects := repository.NewSQLiteProjectRepo(database)
	workstreams := repository.NewSQLiteWorkstreamRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)

	app := &App{
		Tasks:  service.NewTaskService(tasks, workstreams, uow),
		Cycles: service.NewCycleService(uow),
	}

	p := testutil.NewTestProject("Platform")
	require.NoError(t, projects.Create(ctx, p))
	w := testutil.NewTestWorkstream(p.ID, "Infra weekly")
	require.NoError(t, workstreams.Create(ctx, w))

	for _, name := range taskNames {
		task := testutil.NewTestTask(w.ID, name, testutil.WithOwner("Alex"))
		require.NoError(t, app.Tasks.Create(ctx, task, testutil.Date("2025-01-08")))
	}

	reviewable, _, _, err := app.Cycles.RefreshWorkstream(ctx, w.ID, testutil.Date("2025-01-08"))
	require.NoError(t, err)

	return &reviewEnv{app: app, w: w, tasks: reviewable}
}

func TestReviewModel_SaveWritesOpenCycle(t *testing.T) {
	e := newReviewEnv(t, "Deploy pipeline")
	m := newReviewModel(e.app, e.w, e.tasks, 0, span("2025-01-06", "2025-01-12"))

	d := teatest.New(t, m)
	d.DrainInit()

	d.Type("shipped the runner")
	d.SendKey(tea.KeyTab)
	d.Type("monitor rollout")
	d.SendKey(tea.KeyCtrlS)

	got, err := e.app.Tasks.GetByID(context.Background(), e.tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "shipped the runner", got.Cycles[0].Actuals)
	assert.Equal(t, "monitor rollout", got.Cycles[0].NextPlan)
	assert.False(t, got.Cycles[0].Reviewed)
	assert.Contains(t, d.View(), "Saved.")
}

func TestReviewModel_ReviewAdvancesAndQuits(t *testing.T) {
	e := newReviewEnv(t, "Task A", "Task B")
	m := newReviewModel(e.app, e.w, e.tasks, 0, span("2025-01-06", "2025-01-12"))

	d := teatest.New(t, m)
	d.DrainInit()

	d.Type("done A")
	d.SendKey(tea.KeyCtrlR)
	assert.False(t, d.Quitting)
	assert.Contains(t, d.View(), "Task 2 of 2")

	d.Type("done B")
	d.SendKey(tea.KeyCtrlR)
	assert.True(t, d.Quitting)

	for _, task := range e.tasks {
		got, err := e.app.Tasks.GetByID(context.Background(), task.ID)
		require.NoError(t, err)
		assert.True(t, got.Cycles[0].Reviewed)
	}
}

func TestReviewModel_EscQuitsWithoutSaving(t *testing.T) {
	e := newReviewEnv(t, "Task A")
	m := newReviewModel(e.app, e.w, e.tasks, 0, span("2025-01-06", "2025-01-12"))

	d := teatest.New(t, m)
	d.DrainInit()

	d.Type("unsaved text")
	d.SendKey(tea.KeyEsc)
	assert.True(t, d.Quitting)

	got, err := e.app.Tasks.GetByID(context.Background(), e.tasks[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got.Cycles[0].Actuals)
}
