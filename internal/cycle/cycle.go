// Package cycle maintains each task's ordered, gap-free cycle history.
//
// All structural changes to a task's cycle list funnel through Normalize,
// which re-asserts the single-open-cycle invariant and re-derives every
// carry-forward in one place.
package cycle

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/period"
)

// Patch is a partial update to one cycle. Nil fields are left untouched.
type Patch struct {
	Actuals  *string
	NextPlan *string
	Owner    *string
	Reviewed *bool
}

// EnsureUpTo materializes the task's cycle history up to targetIndex and
// re-opens exactly the cycle at targetIndex, closing everything below it.
// Missing cycles are synthesized empty, with the period range derived from
// the workstream anchor and the owner snapshotted from the task.
//
// Tasks created normally fill from index 0. A follow-up task born mid-stream
// fills from its first existing cycle instead; if targetIndex is still below
// that, the task has not started yet and is left untouched.
//
// Calling EnsureUpTo twice with the same target is a no-op on an already
// correct list.
func EnsureUpTo(task *domain.Task, cadence domain.Cadence, anchor time.Time, targetIndex int) error {
	if targetIndex < 0 {
		return fmt.Errorf("%w: target %d", domain.ErrInvalidIndex, targetIndex)
	}

	base := task.FirstIndex()
	if targetIndex < base {
		return nil
	}

	for i := base; i <= targetIndex; i++ {
		if task.CycleAt(i) != nil {
			continue
		}
		span, err := period.Range(anchor, cadence, i)
		if err != nil {
			return err
		}
		task.Cycles = append(task.Cycles, domain.Cycle{
			Index:     i,
			Status:    domain.CycleClosed,
			StartDate: span.Start,
			EndDate:   span.End,
			Owner:     task.Owner,
		})
	}

	Normalize(task, targetIndex)
	return nil
}

// Normalize sorts the cycle list, forces status open on openIndex only, and
// re-derives every PreviousPlan from its predecessor's NextPlan. Re-closing
// a stale open flag left by an earlier, smaller target is deliberate: the
// clock advanced past that period.
func Normalize(task *domain.Task, openIndex int) {
	sort.Slice(task.Cycles, func(i, j int) bool {
		return task.Cycles[i].Index < task.Cycles[j].Index
	})
	for i := range task.Cycles {
		c := &task.Cycles[i]
		if c.Index == openIndex {
			c.Status = domain.CycleOpen
		} else {
			c.Status = domain.CycleClosed
		}
		if i == 0 {
			c.PreviousPlan = ""
		} else {
			c.PreviousPlan = task.Cycles[i-1].NextPlan
		}
	}
}

// ApplyPatch applies a partial update to the cycle at the given index and
// reports whether anything was written. Closed cycles reject every field,
// including reviewed: only the open cycle is editable. The UI disables
// these affordances, so the rejection is a silent guard, not an error.
func ApplyPatch(task *domain.Task, index int, p Patch) bool {
	c := task.CycleAt(index)
	if c == nil || c.Status != domain.CycleOpen {
		return false
	}

	if p.Actuals != nil {
		c.Actuals = *p.Actuals
	}
	if p.NextPlan != nil {
		c.NextPlan = *p.NextPlan
	}
	if p.Owner != nil {
		c.Owner = *p.Owner
	}
	if p.Reviewed != nil {
		c.Reviewed = *p.Reviewed
	}

	Normalize(task, index)
	return true
}
