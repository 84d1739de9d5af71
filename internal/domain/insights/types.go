package insights

// The engine is a pure computation layer: it receives already-loaded
// collections and returns derived values. The types here deliberately carry
// no persistence concerns so the package stays free of I/O and importable
// from anywhere.

// ScheduleType distinguishes habits due every day from habits due on an
// explicit set of weekdays.
type ScheduleType string

const (
	ScheduleDaily  ScheduleType = "daily"
	ScheduleWeekly ScheduleType = "weekly"
)

// EntryStatus is the recorded outcome for a habit on a calendar date. Only
// StatusDone counts toward streaks and consistency; a skip is an explicit
// "not today" that still occupies the (habit, date) slot.
type EntryStatus string

const (
	StatusDone    EntryStatus = "done"
	StatusSkipped EntryStatus = "skipped"
)

// Schedule describes when a habit is due. For ScheduleWeekly, DaysOfWeek
// holds 0-6 weekday indices (Sunday = 0); for ScheduleDaily it is ignored.
type Schedule struct {
	Type       ScheduleType
	DaysOfWeek []int
}

// IsDueOn reports whether the schedule includes the given 0-6 weekday.
func (s Schedule) IsDueOn(dow int) bool {
	if s.Type == ScheduleDaily {
		return true
	}
	for _, d := range s.DaysOfWeek {
		if d == dow {
			return true
		}
	}
	return false
}

// HabitInfo is the engine's view of a habit: identity, schedule, and the two
// flags the analytics actually read. Descriptive fields stay opaque to this
// package.
type HabitInfo struct {
	ID           string
	Title        string
	Schedule     Schedule
	Active       bool
	HasBlueprint bool
}

// EntryRecord is one completion/skip fact: habit H had outcome Status on
// calendar date Date (YYYY-MM-DD). At most one entry per (HabitID, Date) is
// the upstream invariant; the engine de-duplicates defensively and never
// double-counts.
type EntryRecord struct {
	HabitID string
	Date    string
	Status  EntryStatus
}

// StreakStats is the derived streak summary for one habit.
type StreakStats struct {
	Current     int `json:"current"`
	Longest     int `json:"longest"`
	Consistency int `json:"consistency"` // percent, 0-100
}

// DayBucket is one column of the weekly chart.
type DayBucket struct {
	DayLabel       string `json:"day"`
	Date           string `json:"date"`
	CompletedCount int    `json:"completed"`
	ScheduledCount int    `json:"total"`
}

// PatternSummary names the strongest and weakest weekdays by completion rate.
type PatternSummary struct {
	BestDay  string `json:"best_day"`
	WorstDay string `json:"worst_day"`
}

// Insight is one motivational line with its library category.
type Insight struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}
