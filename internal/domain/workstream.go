package domain

import (
	"fmt"
	"time"
)

// Workstream groups tasks that share a check-in cadence. FirstCycleStart is
// the anchor date of period index 0; it is set once at creation and never
// mutated, since shifting it would retroactively move every period boundary.
type Workstream struct {
	ID              string
	ProjectID       string
	Name            string
	Cadence         Cadence
	FirstCycleStart time.Time
	Lead            string
	CreatedAt       time.Time
}

// Validate checks the fields a workstream must carry before persistence.
func (w *Workstream) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("workstream name is required")
	}
	if !ValidCadences[string(w.Cadence)] {
		return fmt.Errorf("invalid cadence %q (expected daily, weekly, biweekly, monthly or quarterly)", w.Cadence)
	}
	if w.FirstCycleStart.IsZero() {
		return fmt.Errorf("workstream first cycle start date is required")
	}
	return nil
}
