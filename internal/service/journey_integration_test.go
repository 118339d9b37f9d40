package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cadence/internal/cycle"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeeklyJourney walks a workstream through three weekly check-ins:
// onboarding import, filling and reviewing the first period, closing it, a
// skipped week that backfills, and a follow-up task joining mid-stream.
func TestWeeklyJourney(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Week 0: onboard on a Wednesday; the anchor snaps to the Monday.
	res, err := e.importSvc.ImportDocument(ctx, onboardingDocument(), testutil.Date("2025-01-08"))
	require.NoError(t, err)
	require.Equal(t, 2, res.Tasks)

	projects, err := e.projects.List(ctx)
	require.NoError(t, err)
	workstreams, err := e.workstreams.ListByProject(ctx, projects[0].ID)
	require.NoError(t, err)
	w := workstreams[0]
	require.True(t, testutil.Date("2025-01-06").Equal(w.FirstCycleStart))

	tasks, idx, span, err := e.cycleSvc.RefreshWorkstream(ctx, w.ID, testutil.Date("2025-01-08"))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.True(t, testutil.Date("2025-01-06").Equal(span.Start))
	require.Len(t, tasks, 2)

	// Fill in both tasks and review them.
	for _, task := range tasks {
		prepareTask(t, e, task.ID, 0)
	}
	r, err := e.closeSvc.Readiness(ctx, w.ID, testutil.Date("2025-01-08"))
	require.NoError(t, err)
	assert.True(t, r.CanClose)

	// A follow-up surfaces during the review; it targets next week.
	followUp, err := e.closeSvc.CaptureFollowUp(ctx, w.ID, "Document the rollout", "Blair", testutil.Date("2025-01-08"))
	require.NoError(t, err)
	require.Equal(t, 1, followUp.Cycles[0].Index)

	require.NoError(t, e.closeSvc.ClosePeriod(ctx, w.ID, testutil.Date("2025-01-08")))

	// Week 1 opened for everyone, with the plan carried forward.
	tasks, idx, _, err = e.cycleSvc.RefreshWorkstream(ctx, w.ID, testutil.Date("2025-01-13"))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		open := task.OpenCycle()
		require.NotNil(t, open)
		assert.Equal(t, 1, open.Index)
	}

	// The team skips a week; opening the board two weeks later backfills
	// the missed period as an empty closed cycle.
	tasks, idx, _, err = e.cycleSvc.RefreshWorkstream(ctx, w.ID, testutil.Date("2025-01-27"))
	require.NoError(t, err)
	require.Equal(t, 3, idx)
	for _, task := range tasks {
		if task.ID == followUp.ID {
			continue
		}
		require.Len(t, task.Cycles, 4)
		assert.Equal(t, domain.CycleClosed, task.Cycles[1].Status)
		assert.Empty(t, task.Cycles[1].Actuals)
		assert.Equal(t, domain.CycleClosed, task.Cycles[2].Status)
		assert.Equal(t, "more", task.Cycles[1].PreviousPlan, "unreviewed plan still carries into the gap")
		assert.Empty(t, task.Cycles[2].PreviousPlan, "empty weeks carry nothing forward")
	}

	// Closed history stays immutable through later edits.
	victim := tasks[0]
	if victim.ID == followUp.ID {
		victim = tasks[1]
	}
	stale := "revisionism"
	require.NoError(t, e.taskSvc.UpdateCycle(ctx, victim.ID, 1, cycle.Patch{Actuals: &stale}))
	got, err := e.taskSvc.GetByID(ctx, victim.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Cycles[1].Actuals)
}
