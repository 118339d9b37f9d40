package period

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRange_Weekly(t *testing.T) {
	anchor := date("2025-01-06") // a Monday

	span, err := Range(anchor, domain.CadenceWeekly, 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-01-12", domain.FormatDate(span.End))

	span, err = Range(anchor, domain.CadenceWeekly, 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-27", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-02-02", domain.FormatDate(span.End))
}

func TestRange_Daily(t *testing.T) {
	span, err := Range(date("2025-03-01"), domain.CadenceDaily, 5)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-06", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-03-06", domain.FormatDate(span.End), "daily periods are a single day")
}

func TestRange_Biweekly(t *testing.T) {
	span, err := Range(date("2025-01-06"), domain.CadenceBiweekly, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-20", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-02-02", domain.FormatDate(span.End))
}

func TestRange_MonthlyCalendarStepping(t *testing.T) {
	// A Jan 31 anchor must step by calendar months, not 30-day blocks.
	// Go normalizes Feb 31 to Mar 3 in non-leap years.
	span, err := Range(date("2025-01-31"), domain.CadenceMonthly, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-03-30", domain.FormatDate(span.End))
}

func TestRange_MonthlyVariableLength(t *testing.T) {
	anchor := date("2025-01-01")

	jan, err := Range(anchor, domain.CadenceMonthly, 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", domain.FormatDate(jan.End))

	feb, err := Range(anchor, domain.CadenceMonthly, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", domain.FormatDate(feb.Start))
	assert.Equal(t, "2025-02-28", domain.FormatDate(feb.End))
}

func TestRange_Quarterly(t *testing.T) {
	span, err := Range(date("2025-01-01"), domain.CadenceQuarterly, 2)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-09-30", domain.FormatDate(span.End))
}

func TestRange_NegativeIndex(t *testing.T) {
	_, err := Range(date("2025-01-06"), domain.CadenceWeekly, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestCurrent_AnchorDay(t *testing.T) {
	anchor := date("2025-01-06")

	idx, span, err := Current(anchor, domain.CadenceWeekly, date("2025-01-06"))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "2025-01-06", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-01-12", domain.FormatDate(span.End))
}

func TestCurrent_SecondWeek(t *testing.T) {
	anchor := date("2025-01-06")

	idx, span, err := Current(anchor, domain.CadenceWeekly, date("2025-01-13"))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "2025-01-13", domain.FormatDate(span.Start))
	assert.Equal(t, "2025-01-19", domain.FormatDate(span.End))
}

func TestCurrent_LastDayOfPeriod(t *testing.T) {
	idx, _, err := Current(date("2025-01-06"), domain.CadenceWeekly, date("2025-01-12"))
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "period end date still belongs to the period")
}

func TestCurrent_FutureAnchor(t *testing.T) {
	idx, span, err := Current(date("2025-06-01"), domain.CadenceWeekly, date("2025-01-06"))
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "future anchor yields the first, not-yet-started period")
	assert.Equal(t, "2025-06-01", domain.FormatDate(span.Start))
}

func TestCurrent_Deterministic(t *testing.T) {
	anchor := date("2024-02-29")
	today := date("2025-08-15")

	idxA, spanA, err := Current(anchor, domain.CadenceMonthly, today)
	require.NoError(t, err)
	idxB, spanB, err := Current(anchor, domain.CadenceMonthly, today)
	require.NoError(t, err)

	assert.Equal(t, idxA, idxB)
	assert.Equal(t, spanA, spanB)
}

func TestCurrent_RunawayWalk(t *testing.T) {
	// A daily anchor several decades back exceeds the walk bound; that is
	// a data-integrity fault, not a silent fallback.
	_, _, err := Current(date("1900-01-01"), domain.CadenceDaily, date("2025-01-06"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestAlignedStart(t *testing.T) {
	wednesday := date("2025-01-08")

	tests := []struct {
		name    string
		cadence domain.Cadence
		want    string
	}{
		{"daily", domain.CadenceDaily, "2025-01-08"},
		{"weekly", domain.CadenceWeekly, "2025-01-06"},
		{"biweekly", domain.CadenceBiweekly, "2025-01-06"},
		{"monthly", domain.CadenceMonthly, "2025-01-01"},
		{"quarterly", domain.CadenceQuarterly, "2025-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignedStart(tt.cadence, wednesday)
			assert.Equal(t, tt.want, domain.FormatDate(got))
		})
	}
}

func TestAlignedStart_SundayBelongsToPriorWeek(t *testing.T) {
	sunday := date("2025-01-12")
	got := AlignedStart(domain.CadenceWeekly, sunday)
	assert.Equal(t, "2025-01-06", domain.FormatDate(got))
}

func TestAlignedStart_MidQuarter(t *testing.T) {
	got := AlignedStart(domain.CadenceQuarterly, date("2025-08-30"))
	assert.Equal(t, "2025-07-01", domain.FormatDate(got))
}
