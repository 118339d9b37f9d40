package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneService_RetireClearsReferences(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	w := seedWorkstream(t, e)
	svc := NewMilestoneService(e.milestones, e.uow)

	m := testutil.NewTestMilestone(w.ID, "Beta")
	require.NoError(t, e.milestones.Create(ctx, m))

	task := testutil.NewTestTask(w.ID, "Cut branch", testutil.WithMilestoneID(m.ID))
	require.NoError(t, e.taskSvc.Create(ctx, task, testutil.Date("2025-01-08")))

	require.NoError(t, svc.Retire(ctx, m.ID))

	gotM, err := e.milestones.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LifecycleInactive, gotM.Lifecycle)

	gotT, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, gotT.MilestoneID)
	assert.Len(t, gotT.Cycles, 1, "cycles survive the cascade")
}

func TestWorkstreamService_CreateDefaultsAnchor(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	svc := NewWorkstreamService(e.workstreams)

	p := testutil.NewTestProject("Platform")
	require.NoError(t, e.projects.Create(ctx, p))

	w := &domain.Workstream{
		ProjectID: p.ID,
		Name:      "Monthly business review",
		Cadence:   domain.CadenceMonthly,
	}
	require.NoError(t, svc.Create(ctx, w, testutil.Date("2025-01-17")))
	assert.True(t, testutil.Date("2025-01-01").Equal(w.FirstCycleStart))

	bad := &domain.Workstream{ProjectID: p.ID, Name: "Broken", Cadence: "sometimes"}
	assert.Error(t, svc.Create(ctx, bad, testutil.Date("2025-01-17")))
}
