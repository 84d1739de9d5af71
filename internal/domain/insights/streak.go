package insights

import (
	"math"
	"sort"
	"time"
)

// StreakMode selects between the two streak algorithms the product ships.
// They are one algorithm with an explicit mode so call sites state which
// behavior they want.
type StreakMode int

const (
	// ModeScheduleAware skips unscheduled days entirely: they neither break
	// nor extend a streak, and consistency is measured against scheduled
	// occurrences. Used by single-habit detail views.
	ModeScheduleAware StreakMode = iota
	// ModeScheduleAgnostic treats every calendar day as due and uses the
	// literal window size as the consistency denominator. Used by the
	// multi-habit aggregate path.
	ModeScheduleAgnostic
)

// ComputeStreakStats derives current streak, longest streak, and trailing
// consistency for one habit from its set of completed dates.
//
// The current streak walks backward from referenceDate. A scheduled day that
// is completed extends the streak; a scheduled day that is missed ends it,
// unless it is the reference date itself, which is allowed to be pending so
// a fresh morning never shows a premature zero.
func ComputeStreakStats(schedule Schedule, mode StreakMode, completedDates []string, referenceDate string, cfg Config) (StreakStats, error) {
	ref, err := ParseDate(referenceDate)
	if err != nil {
		return StreakStats{}, err
	}

	// De-duplicate defensively and validate every date up front; a malformed
	// date must fail loudly rather than quietly skew the math.
	done := make(map[string]struct{}, len(completedDates))
	parsed := make([]time.Time, 0, len(completedDates))
	for _, d := range completedDates {
		if _, ok := done[d]; ok {
			continue
		}
		t, err := ParseDate(d)
		if err != nil {
			return StreakStats{}, err
		}
		done[d] = struct{}{}
		parsed = append(parsed, t)
	}

	stats := StreakStats{}
	if len(done) == 0 {
		return stats, nil
	}

	scheduledOn := func(t time.Time) bool {
		return mode == ModeScheduleAgnostic || schedule.IsDueOn(DayOfWeek(t))
	}

	// Current streak.
	for i := 0; i < cfg.StreakHorizonDays; i++ {
		day := AddDays(ref, -i)
		if !scheduledOn(day) {
			continue
		}
		if _, ok := done[FormatDate(day)]; ok {
			stats.Current++
			continue
		}
		if i == 0 {
			continue // today may still be pending
		}
		break
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })

	// Longest streak.
	switch mode {
	case ModeScheduleAgnostic:
		run := 0
		for i, day := range parsed {
			if i == 0 || DaysBetween(parsed[i-1], day) != 1 {
				run = 1
			} else {
				run++
			}
			if run > stats.Longest {
				stats.Longest = run
			}
		}
	default:
		// Walk every calendar day across the completed span; only scheduled
		// days advance or reset the run.
		run := 0
		for day := parsed[0]; !day.After(parsed[len(parsed)-1]); day = AddDays(day, 1) {
			if !scheduledOn(day) {
				continue
			}
			if _, ok := done[FormatDate(day)]; ok {
				run++
				if run > stats.Longest {
					stats.Longest = run
				}
			} else {
				run = 0
			}
		}
	}

	stats.Consistency = consistencyPercent(schedule, mode, done, ref, cfg.ConsistencyWindowDays)
	return stats, nil
}

// consistencyPercent measures completions over the trailing window ending at
// ref inclusive. Schedule-aware mode divides by scheduled occurrences;
// schedule-agnostic mode divides by the literal window length.
func consistencyPercent(schedule Schedule, mode StreakMode, done map[string]struct{}, ref time.Time, window int) int {
	if window <= 0 {
		return 0
	}

	scheduled, completed := 0, 0
	for i := 0; i < window; i++ {
		day := AddDays(ref, -i)
		if mode == ModeScheduleAware && !schedule.IsDueOn(DayOfWeek(day)) {
			continue
		}
		scheduled++
		if _, ok := done[FormatDate(day)]; ok {
			completed++
		}
	}

	denom := scheduled
	if mode == ModeScheduleAgnostic {
		denom = window
	}
	if denom == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(denom) * 100))
}
