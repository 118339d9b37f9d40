// Package period maps calendar dates onto discrete cadence periods.
//
// Every workstream anchors period index 0 at its first cycle start date;
// all boundaries derive from that single anchor. The functions here are
// pure and deterministic for a fixed (anchor, cadence, date) input.
package period

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// maxWalk bounds the forward walk in Current. An anchor more than a few
// thousand periods in the past is a data-integrity fault, not a real
// workstream; surfacing it beats hanging.
const maxWalk = 5000

// Span is one period's inclusive date range.
type Span struct {
	Start time.Time
	End   time.Time
}

// step returns the start date of the period at the given index. Daily,
// weekly and biweekly cadences advance by fixed day counts; monthly and
// quarterly use calendar-month arithmetic, so period lengths vary.
func step(anchor time.Time, cadence domain.Cadence, index int) time.Time {
	anchor = domain.DateOnly(anchor)
	switch cadence {
	case domain.CadenceDaily:
		return anchor.AddDate(0, 0, index)
	case domain.CadenceWeekly:
		return anchor.AddDate(0, 0, 7*index)
	case domain.CadenceBiweekly:
		return anchor.AddDate(0, 0, 14*index)
	case domain.CadenceMonthly:
		return anchor.AddDate(0, index, 0)
	case domain.CadenceQuarterly:
		return anchor.AddDate(0, 3*index, 0)
	default:
		return anchor.AddDate(0, 0, 7*index)
	}
}

// Range returns the date range of the period at the given index. The end
// date is the day before the next period starts.
func Range(anchor time.Time, cadence domain.Cadence, index int) (Span, error) {
	if index < 0 {
		return Span{}, fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index)
	}
	return Span{
		Start: step(anchor, cadence, index),
		End:   step(anchor, cadence, index+1).AddDate(0, 0, -1),
	}, nil
}

// Current returns the index and range of the period containing today.
// A future anchor yields index 0: the first, not-yet-started period is the
// current one; negative indices do not exist.
func Current(anchor time.Time, cadence domain.Cadence, today time.Time) (int, Span, error) {
	today = domain.DateOnly(today)
	for i := 0; ; i++ {
		if i > maxWalk {
			return 0, Span{}, fmt.Errorf("%w: anchor %s is more than %d %s periods before %s",
				domain.ErrInvalidIndex, domain.FormatDate(anchor), maxWalk, cadence, domain.FormatDate(today))
		}
		next := step(anchor, cadence, i+1)
		if next.After(today) {
			span, err := Range(anchor, cadence, i)
			return i, span, err
		}
	}
}

// AlignedStart returns the natural start of the period containing today for
// a workstream with no anchor yet: the import day for daily cadences, the
// Monday of the current week for weekly and biweekly, the first of the month
// for monthly, and the first day of the quarter for quarterly.
func AlignedStart(cadence domain.Cadence, today time.Time) time.Time {
	today = domain.DateOnly(today)
	switch cadence {
	case domain.CadenceWeekly, domain.CadenceBiweekly:
		offset := (int(today.Weekday()) + 6) % 7 // days since Monday
		return today.AddDate(0, 0, -offset)
	case domain.CadenceMonthly:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case domain.CadenceQuarterly:
		q := (int(today.Month()) - 1) / 3
		return time.Date(today.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, today.Location())
	default:
		return today
	}
}
