package habits

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitloop/backend/internal/domain/insights"
)

func dailyHabit(title string, active bool) Habit {
	return Habit{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Title:        title,
		ScheduleType: ScheduleTypeDaily,
		IsActive:     active,
	}
}

func weeklyHabit(title string, days ...int64) Habit {
	return Habit{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Title:        title,
		ScheduleType: ScheduleTypeWeekly,
		DaysOfWeek:   days,
		IsActive:     true,
	}
}

func doneEntry(h Habit, date string) HabitEntry {
	return HabitEntry{ID: uuid.New(), HabitID: h.ID, UserID: h.UserID, Date: date, Status: EntryStatusDone}
}

func skippedEntry(h Habit, date string) HabitEntry {
	return HabitEntry{ID: uuid.New(), HabitID: h.ID, UserID: h.UserID, Date: date, Status: EntryStatusSkipped}
}

func TestBuildUserInsights(t *testing.T) {
	// 2024-01-10 is a Wednesday; 2024-01-08 the Monday before.
	meditate := dailyHabit("Meditate", true)
	meditate.Cue = "after morning coffee"
	review := weeklyHabit("Weekly Review", 1)
	retired := dailyHabit("Retired", false)

	all := []Habit{meditate, review, retired}
	entries := []HabitEntry{
		doneEntry(meditate, "2024-01-08"),
		doneEntry(meditate, "2024-01-09"),
		doneEntry(meditate, "2024-01-10"),
		skippedEntry(meditate, "2024-01-04"),
		doneEntry(review, "2024-01-08"),
		doneEntry(retired, "2024-01-09"),
	}

	out, err := BuildUserInsights(all, entries, "2024-01-10", insights.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", out.Date)

	require.Len(t, out.WeeklyData, 7)
	assert.Equal(t, "2024-01-04", out.WeeklyData[0].Date)
	assert.Equal(t, "2024-01-10", out.WeeklyData[6].Date)

	// Monday carries both habits, every other day just the daily one. The
	// inactive habit contributes nothing even though it has a done entry.
	for i, b := range out.WeeklyData {
		if b.Date == "2024-01-08" {
			assert.Equal(t, 2, b.ScheduledCount)
			assert.Equal(t, 2, b.CompletedCount)
		} else {
			assert.Equal(t, 1, b.ScheduledCount, "bucket %d", i)
		}
	}

	// 4 completions over 8 scheduled slots.
	assert.Equal(t, 50, out.WeeklyRate)

	// Monday is flawless across both habits; the skipped Thursday loses.
	assert.Equal(t, "Monday", out.BestDay)
	assert.Equal(t, "Thursday", out.WorstDay)

	// Every Weekly Review completion landed on a Meditate day, so Meditate
	// anchors the routine. The reverse overlap is only one third.
	require.Len(t, out.AnchorHabits, 1)
	assert.Equal(t, meditate.ID.String(), out.AnchorHabits[0].HabitID)
	assert.Equal(t, "Meditate", out.AnchorHabits[0].Title)
	assert.InDelta(t, 1.0, out.AnchorHabits[0].Score, 0.001)

	require.Len(t, out.HabitStreaks, 2)
	byTitle := map[string]insights.StreakStats{}
	for _, s := range out.HabitStreaks {
		byTitle[s.Title] = s.StreakStats
	}
	assert.Equal(t, 3, byTitle["Meditate"].Current)
	assert.Equal(t, 10, byTitle["Meditate"].Consistency)
	assert.Equal(t, 1, byTitle["Weekly Review"].Current)
	assert.Equal(t, 25, byTitle["Weekly Review"].Consistency)

	// Lowest consistency is under the floor, so the tip names that habit.
	assert.Contains(t, out.ImprovementTip, `"Meditate"`)
	assert.Contains(t, out.ImprovementTip, "10%")

	// Everything due today is done, so the insight comes from the
	// identity/consistency pool.
	assert.Contains(t, []string{insights.CategoryIdentity, insights.CategoryConsistency}, out.DailyInsight.Category)
	assert.NotEmpty(t, out.DailyInsight.Text)
}

func TestBuildUserInsightsDeterministic(t *testing.T) {
	h := dailyHabit("Read", true)
	entries := []HabitEntry{doneEntry(h, "2024-03-14"), doneEntry(h, "2024-03-15")}

	first, err := BuildUserInsights([]Habit{h}, entries, "2024-03-15", insights.DefaultConfig())
	require.NoError(t, err)
	second, err := BuildUserInsights([]Habit{h}, entries, "2024-03-15", insights.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildUserInsightsEmpty(t *testing.T) {
	out, err := BuildUserInsights(nil, nil, "2024-01-10", insights.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, out.WeeklyRate)
	assert.Empty(t, out.BestDay)
	assert.Empty(t, out.WorstDay)
	assert.Empty(t, out.AnchorHabits)
	assert.Empty(t, out.HabitStreaks)
	assert.NotEmpty(t, out.ImprovementTip)
	assert.NotEmpty(t, out.DailyInsight.Text)

	for _, b := range out.WeeklyData {
		assert.Zero(t, b.ScheduledCount)
		assert.Zero(t, b.CompletedCount)
	}
}

func TestBuildUserInsightsMissedYesterday(t *testing.T) {
	h := dailyHabit("Run", true)
	// Done two days ago, nothing yesterday or today.
	entries := []HabitEntry{doneEntry(h, "2024-01-08")}

	out, err := BuildUserInsights([]Habit{h}, entries, "2024-01-10", insights.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, []string{insights.CategoryRecovery, insights.CategoryStart}, out.DailyInsight.Category)
}

func TestBuildUserInsightsInvalidDate(t *testing.T) {
	_, err := BuildUserInsights(nil, nil, "10-01-2024", insights.DefaultConfig())
	assert.ErrorIs(t, err, insights.ErrInvalidDate)
}

func TestScheduleOf(t *testing.T) {
	weekly := weeklyHabit("Gym", 1, 3, 5)
	sched := scheduleOf(weekly)
	assert.Equal(t, insights.ScheduleWeekly, sched.Type)
	assert.Equal(t, []int{1, 3, 5}, sched.DaysOfWeek)
	assert.True(t, sched.IsDueOn(3))
	assert.False(t, sched.IsDueOn(2))

	daily := dailyHabit("Sleep", true)
	assert.Equal(t, insights.ScheduleDaily, scheduleOf(daily).Type)
	assert.True(t, scheduleOf(daily).IsDueOn(0))
}

func TestCompletedDatesByHabit(t *testing.T) {
	a := dailyHabit("A", true)
	b := dailyHabit("B", true)
	inactive := dailyHabit("C", false)

	entries := []HabitEntry{
		doneEntry(a, "2024-01-01"),
		skippedEntry(a, "2024-01-02"),
		doneEntry(inactive, "2024-01-01"),
	}

	done := completedDatesByHabit([]Habit{a, b}, entries)

	assert.Equal(t, []string{"2024-01-01"}, done[a.ID.String()])
	assert.Empty(t, done[b.ID.String()])
	assert.NotContains(t, done, inactive.ID.String())

	// Habits with no completions still get a key for the anchor detector.
	_, ok := done[b.ID.String()]
	assert.True(t, ok)
}
