package domain

import "time"

// Task is a recurring check-in commitment inside a workstream. The task owns
// its cycle list exclusively; no other entity holds a cycle reference.
//
// Invariants maintained by the cycle package:
//   - at most one cycle is open
//   - cycle indices are contiguous from the task's first cycle upward
//   - cycles are sorted by index ascending
//   - every cycle's PreviousPlan equals its predecessor's NextPlan
type Task struct {
	ID           string
	WorkstreamID string
	MilestoneID  *string
	Name         string
	Owner        string
	Lifecycle    Lifecycle
	Cycles       []Cycle
	CreatedAt    time.Time
}

// Cycle is one discrete period's Plan/Actuals/Next-Plan record. Once closed,
// a cycle is read-only everywhere above the cycle store; the only exception
// is the derived PreviousPlan recompute.
type Cycle struct {
	Index        int
	Status       CycleStatus
	StartDate    time.Time
	EndDate      time.Time
	PreviousPlan string
	Actuals      string
	NextPlan     string
	Owner        string
	Reviewed     bool
}

// Active reports whether the task participates in cycle generation and
// closing.
func (t *Task) Active() bool {
	return t.Lifecycle == LifecycleActive
}

// OpenCycle returns the task's open cycle, or nil if none is open.
func (t *Task) OpenCycle() *Cycle {
	for i := range t.Cycles {
		if t.Cycles[i].Status == CycleOpen {
			return &t.Cycles[i]
		}
	}
	return nil
}

// CycleAt returns the cycle with the given index, or nil.
func (t *Task) CycleAt(index int) *Cycle {
	for i := range t.Cycles {
		if t.Cycles[i].Index == index {
			return &t.Cycles[i]
		}
	}
	return nil
}

// FirstIndex returns the index of the task's earliest cycle. Tasks created
// normally start at 0; follow-up tasks captured during a close are born at
// the next period's index.
func (t *Task) FirstIndex() int {
	if len(t.Cycles) == 0 {
		return 0
	}
	return t.Cycles[0].Index
}

// Prepared reports whether the open cycle has both actuals and a next plan
// filled in. Tasks without an open cycle are never prepared.
func (t *Task) Prepared() bool {
	c := t.OpenCycle()
	return c != nil && c.Actuals != "" && c.NextPlan != ""
}
