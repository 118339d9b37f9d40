package importer

import (
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsFullWorkspace(t *testing.T) {
	today, err := domain.ParseDate("2025-01-08") // a Wednesday
	require.NoError(t, err)

	ws, err := Convert(validDocument(), today)
	require.NoError(t, err)

	require.Len(t, ws.Projects, 1)
	require.Len(t, ws.Workstreams, 1)
	require.Len(t, ws.Milestones, 1)
	require.Len(t, ws.Tasks, 2)

	stream := ws.Workstreams[0]
	assert.Equal(t, ws.Projects[0].ID, stream.ProjectID)
	assert.Equal(t, domain.CadenceWeekly, stream.Cadence)
	assert.Equal(t, "2025-01-06", domain.FormatDate(stream.FirstCycleStart),
		"anchor defaults to the cadence-aligned start of the current period")
	assert.Equal(t, "Alex", stream.Lead)

	ms := ws.Milestones[0]
	assert.Equal(t, stream.ID, ms.WorkstreamID)
	assert.Equal(t, "GA launch", ms.Title)
	require.NotNil(t, ms.DueDate)
	assert.Equal(t, "2025-06-30", domain.FormatDate(*ms.DueDate))
	assert.Equal(t, domain.LifecycleActive, ms.Lifecycle)
}

func TestConvert_TasksStartWithOpenFirstCycle(t *testing.T) {
	today, _ := domain.ParseDate("2025-01-08")

	ws, err := Convert(validDocument(), today)
	require.NoError(t, err)

	for _, task := range ws.Tasks {
		assert.Equal(t, domain.LifecycleActive, task.Lifecycle)
		require.Len(t, task.Cycles, 1)
		c := task.Cycles[0]
		assert.Equal(t, 0, c.Index)
		assert.Equal(t, domain.CycleOpen, c.Status)
		assert.Equal(t, "2025-01-06", domain.FormatDate(c.StartDate))
		assert.Equal(t, "2025-01-12", domain.FormatDate(c.EndDate))
		assert.Empty(t, c.PreviousPlan)
		assert.Equal(t, task.Owner, c.Owner)
		assert.False(t, c.Reviewed)
	}
}

func TestConvert_MilestoneAssignedToTasks(t *testing.T) {
	today, _ := domain.ParseDate("2025-01-08")

	ws, err := Convert(validDocument(), today)
	require.NoError(t, err)

	msID := ws.Milestones[0].ID
	for _, task := range ws.Tasks {
		require.NotNil(t, task.MilestoneID)
		assert.Equal(t, msID, *task.MilestoneID)
	}
}

func TestConvert_NoMilestone(t *testing.T) {
	doc := validDocument()
	doc.Projects[0].Workstreams[0].Milestone = ""
	doc.Projects[0].Workstreams[0].MilestoneDate = ""
	today, _ := domain.ParseDate("2025-01-08")

	ws, err := Convert(doc, today)
	require.NoError(t, err)
	assert.Empty(t, ws.Milestones)
	for _, task := range ws.Tasks {
		assert.Nil(t, task.MilestoneID)
	}
}

func TestConvert_MonthlyAnchor(t *testing.T) {
	doc := validDocument()
	doc.Projects[0].Workstreams[0].Cadence = "monthly"
	today, _ := domain.ParseDate("2025-08-30")

	ws, err := Convert(doc, today)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", domain.FormatDate(ws.Workstreams[0].FirstCycleStart))
}
