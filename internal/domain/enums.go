package domain

type Cadence string

const (
	CadenceDaily     Cadence = "daily"
	CadenceWeekly    Cadence = "weekly"
	CadenceBiweekly  Cadence = "biweekly"
	CadenceMonthly   Cadence = "monthly"
	CadenceQuarterly Cadence = "quarterly"
)

// ValidCadences is the canonical set of accepted cadence strings.
var ValidCadences = map[string]bool{
	"daily": true, "weekly": true, "biweekly": true,
	"monthly": true, "quarterly": true,
}

// CadenceOrder lists cadences from shortest to longest, for pickers.
var CadenceOrder = []Cadence{
	CadenceDaily, CadenceWeekly, CadenceBiweekly, CadenceMonthly, CadenceQuarterly,
}

type CycleStatus string

const (
	CycleOpen   CycleStatus = "open"
	CycleClosed CycleStatus = "closed"
)

type Lifecycle string

const (
	LifecycleActive   Lifecycle = "active"
	LifecycleInactive Lifecycle = "inactive"
)
