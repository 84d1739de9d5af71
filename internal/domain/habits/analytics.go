package habits

import (
	"github.com/habitloop/backend/internal/domain/insights"
)

// HabitStreakView pairs a habit with its derived streak stats.
type HabitStreakView struct {
	HabitID     string               `json:"habit_id"`
	Title       string               `json:"title"`
	StreakStats insights.StreakStats `json:"streak"`
}

// AnchorHabitView is an anchor habit resolved to its title for display.
type AnchorHabitView struct {
	HabitID string  `json:"habit_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
}

// UserInsights is the full analytics payload for one user on one date. It is
// computed fresh per (user, date) and cached as a unit.
type UserInsights struct {
	Date           string               `json:"date"`
	WeeklyData     []insights.DayBucket `json:"weekly_data"`
	WeeklyRate     int                  `json:"weekly_rate"`
	BestDay        string               `json:"best_day,omitempty"`
	WorstDay       string               `json:"worst_day,omitempty"`
	AnchorHabits   []AnchorHabitView    `json:"anchor_habits"`
	HabitStreaks   []HabitStreakView    `json:"habit_streaks"`
	ImprovementTip string               `json:"improvement_tip"`
	DailyInsight   insights.Insight     `json:"daily_insight"`
}

// BuildUserInsights derives the full analytics payload from already-loaded
// records. Pure given its inputs; all date math anchors on the supplied
// reference date so one render pass is internally consistent.
func BuildUserInsights(all []Habit, entries []HabitEntry, referenceDate string, cfg insights.Config) (*UserInsights, error) {
	refDay, err := insights.ParseDate(referenceDate)
	if err != nil {
		return nil, err
	}

	active := make([]Habit, 0, len(all))
	for _, h := range all {
		if h.IsActive {
			active = append(active, h)
		}
	}

	infos := toHabitInfos(all)
	records := toEntryRecords(entries)
	doneByHabit := completedDatesByHabit(active, entries)

	out := &UserInsights{Date: referenceDate}

	out.WeeklyData, err = insights.ComputeWeeklyBuckets(infos, records, referenceDate)
	if err != nil {
		return nil, err
	}
	out.WeeklyRate = insights.WeeklyRate(out.WeeklyData)

	patterns, ok, err := insights.BestWorstDays(records)
	if err != nil {
		return nil, err
	}
	if ok {
		out.BestDay = patterns.BestDay
		out.WorstDay = patterns.WorstDay
	}

	titles := make(map[string]string, len(active))
	for _, h := range active {
		titles[h.ID.String()] = h.Title
	}
	out.AnchorHabits = make([]AnchorHabitView, 0)
	for _, a := range insights.DetectAnchorHabits(doneByHabit, cfg.AnchorThreshold) {
		out.AnchorHabits = append(out.AnchorHabits, AnchorHabitView{
			HabitID: a.HabitID,
			Title:   titles[a.HabitID],
			Score:   a.Score,
		})
	}

	out.HabitStreaks = make([]HabitStreakView, 0, len(active))
	perHabit := make([]insights.HabitConsistency, 0, len(active))
	maxStreak := 0
	for _, h := range active {
		stats, err := insights.ComputeStreakStats(
			scheduleOf(h), insights.ModeScheduleAware,
			doneByHabit[h.ID.String()], referenceDate, cfg,
		)
		if err != nil {
			return nil, err
		}
		out.HabitStreaks = append(out.HabitStreaks, HabitStreakView{
			HabitID:     h.ID.String(),
			Title:       h.Title,
			StreakStats: stats,
		})
		perHabit = append(perHabit, insights.HabitConsistency{
			HabitID:     h.ID.String(),
			Title:       h.Title,
			Consistency: stats.Consistency,
		})
		if stats.Current > maxStreak {
			maxStreak = stats.Current
		}
	}

	out.ImprovementTip = insights.ComposeImprovementTip(perHabit, out.WeeklyRate, out.WorstDay, cfg)

	state := buildSelectorState(active, entries, referenceDate, insights.FormatDate(insights.AddDays(refDay, -1)))
	state.CurrentStreak = maxStreak
	out.DailyInsight, err = insights.SelectInsight(state, referenceDate)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func scheduleOf(h Habit) insights.Schedule {
	if h.ScheduleType == ScheduleTypeWeekly {
		days := make([]int, 0, len(h.DaysOfWeek))
		for _, d := range h.DaysOfWeek {
			days = append(days, int(d))
		}
		return insights.Schedule{Type: insights.ScheduleWeekly, DaysOfWeek: days}
	}
	return insights.Schedule{Type: insights.ScheduleDaily}
}

func toHabitInfos(all []Habit) []insights.HabitInfo {
	infos := make([]insights.HabitInfo, 0, len(all))
	for _, h := range all {
		infos = append(infos, insights.HabitInfo{
			ID:           h.ID.String(),
			Title:        h.Title,
			Schedule:     scheduleOf(h),
			Active:       h.IsActive,
			HasBlueprint: h.HasBlueprint(),
		})
	}
	return infos
}

func toEntryRecords(entries []HabitEntry) []insights.EntryRecord {
	records := make([]insights.EntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, insights.EntryRecord{
			HabitID: e.HabitID.String(),
			Date:    e.Date,
			Status:  insights.EntryStatus(e.Status),
		})
	}
	return records
}

// completedDatesByHabit maps each active habit to its done dates. Every
// active habit gets a key so the anchor detector sees habits with zero
// completions too.
func completedDatesByHabit(active []Habit, entries []HabitEntry) map[string][]string {
	done := make(map[string][]string, len(active))
	for _, h := range active {
		done[h.ID.String()] = []string{}
	}
	for _, e := range entries {
		if e.Status != EntryStatusDone {
			continue
		}
		id := e.HabitID.String()
		if _, ok := done[id]; ok {
			done[id] = append(done[id], e.Date)
		}
	}
	return done
}

// buildSelectorState summarizes today and yesterday for the insight selector.
func buildSelectorState(active []Habit, entries []HabitEntry, today, yesterday string) insights.SelectorState {
	todayDay, err := insights.ParseDate(today)
	if err != nil {
		return insights.SelectorState{}
	}
	todayDow := insights.DayOfWeek(todayDay)
	yesterdayDow := (todayDow + 6) % 7

	state := insights.SelectorState{}
	dueYesterday := 0
	for _, h := range active {
		sched := scheduleOf(h)
		if sched.IsDueOn(todayDow) {
			state.TotalToday++
		}
		if sched.IsDueOn(yesterdayDow) {
			dueYesterday++
		}
		if h.HasBlueprint() {
			state.HasBlueprints = true
		}
	}

	byDate := map[string]map[string]struct{}{today: {}, yesterday: {}}
	for _, e := range entries {
		if e.Status != EntryStatusDone {
			continue
		}
		if set, ok := byDate[e.Date]; ok {
			set[e.HabitID.String()] = struct{}{}
		}
	}
	state.CompletedToday = len(byDate[today])
	state.MissedYesterday = dueYesterday > 0 && len(byDate[yesterday]) == 0

	return state
}
