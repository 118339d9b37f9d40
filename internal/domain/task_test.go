package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_OpenCycle(t *testing.T) {
	task := &Task{Cycles: []Cycle{
		{Index: 0, Status: CycleClosed},
		{Index: 1, Status: CycleOpen},
	}}
	assert.Equal(t, 1, task.OpenCycle().Index)

	closed := &Task{Cycles: []Cycle{{Index: 0, Status: CycleClosed}}}
	assert.Nil(t, closed.OpenCycle())
}

func TestTask_FirstIndex(t *testing.T) {
	assert.Equal(t, 0, (&Task{}).FirstIndex())

	followUp := &Task{Cycles: []Cycle{{Index: 3, Status: CycleOpen}}}
	assert.Equal(t, 3, followUp.FirstIndex())
}

func TestTask_Prepared(t *testing.T) {
	task := &Task{Cycles: []Cycle{{Index: 0, Status: CycleOpen}}}
	assert.False(t, task.Prepared())

	task.Cycles[0].Actuals = "done"
	assert.False(t, task.Prepared())

	task.Cycles[0].NextPlan = "more"
	assert.True(t, task.Prepared())
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2025-01-31")
	assert.NoError(t, err)
	assert.Equal(t, "2025-01-31", FormatDate(d))

	_, err = ParseDate("31/01/2025")
	assert.Error(t, err)
}

func TestWorkstream_Validate(t *testing.T) {
	w := &Workstream{ProjectID: "p", Name: "Sync", Cadence: CadenceWeekly}
	w.FirstCycleStart, _ = ParseDate("2025-01-06")
	assert.NoError(t, w.Validate())

	bad := &Workstream{ProjectID: "p", Name: "Sync", Cadence: "hourly"}
	bad.FirstCycleStart, _ = ParseDate("2025-01-06")
	assert.Error(t, bad.Validate())
}
