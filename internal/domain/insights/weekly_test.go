package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHabits() []HabitInfo {
	return []HabitInfo{
		{ID: "h1", Title: "Exercise", Schedule: daily(), Active: true},
		{ID: "h2", Title: "Weekly Review", Schedule: weekly(Monday), Active: true},
		{ID: "h3", Title: "Old Habit", Schedule: daily(), Active: false},
	}
}

func TestComputeWeeklyBuckets(t *testing.T) {
	entries := []EntryRecord{
		{HabitID: "h1", Date: "2024-01-01", Status: StatusDone},
		{HabitID: "h2", Date: "2024-01-01", Status: StatusDone},
		{HabitID: "h1", Date: "2024-01-03", Status: StatusDone},
		{HabitID: "h1", Date: "2024-01-04", Status: StatusSkipped}, // skips never count
		{HabitID: "h2", Date: "2024-01-02", Status: StatusDone},   // h2 not scheduled Tuesdays
		{HabitID: "h3", Date: "2024-01-02", Status: StatusDone},   // archived habit
	}

	buckets, err := ComputeWeeklyBuckets(testHabits(), entries, "2024-01-07")
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, labelsOf(buckets))
	assert.Equal(t, "2024-01-01", buckets[0].Date)
	assert.Equal(t, "2024-01-07", buckets[6].Date)

	// Monday has both active habits scheduled, the rest only the daily one.
	assert.Equal(t, 2, buckets[0].ScheduledCount)
	assert.Equal(t, 2, buckets[0].CompletedCount)
	for i := 1; i < 7; i++ {
		assert.Equal(t, 1, buckets[i].ScheduledCount, "day %s", buckets[i].Date)
	}
	assert.Equal(t, 0, buckets[1].CompletedCount) // h2's Tuesday entry filtered out
	assert.Equal(t, 1, buckets[2].CompletedCount)
	assert.Equal(t, 0, buckets[3].CompletedCount)

	assert.Equal(t, 38, WeeklyRate(buckets)) // round(3/8*100)
}

func labelsOf(buckets []DayBucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.DayLabel
	}
	return out
}

func TestComputeWeeklyBuckets_InvalidReference(t *testing.T) {
	_, err := ComputeWeeklyBuckets(testHabits(), nil, "07-01-2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeeklyRate_NothingScheduled(t *testing.T) {
	buckets, err := ComputeWeeklyBuckets(nil, nil, "2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, 0, WeeklyRate(buckets))
}

func TestWeeklyRate_FullWeek(t *testing.T) {
	habits := []HabitInfo{{ID: "h1", Schedule: daily(), Active: true}}
	var entries []EntryRecord
	for _, d := range consecutiveDates(t, "2024-01-07", 7) {
		entries = append(entries, EntryRecord{HabitID: "h1", Date: d, Status: StatusDone})
	}
	buckets, err := ComputeWeeklyBuckets(habits, entries, "2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, 100, WeeklyRate(buckets))
}
