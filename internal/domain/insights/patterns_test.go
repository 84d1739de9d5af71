package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestWorstDays(t *testing.T) {
	t.Run("done mondays and wednesdays, skipped tuesdays and thursdays", func(t *testing.T) {
		entries := []EntryRecord{
			{HabitID: "h1", Date: "2024-01-01", Status: StatusDone},    // Mon
			{HabitID: "h1", Date: "2024-01-08", Status: StatusDone},    // Mon
			{HabitID: "h1", Date: "2024-01-03", Status: StatusDone},    // Wed
			{HabitID: "h1", Date: "2024-01-02", Status: StatusSkipped}, // Tue
			{HabitID: "h1", Date: "2024-01-04", Status: StatusSkipped}, // Thu
		}
		summary, ok, err := BestWorstDays(entries)
		require.NoError(t, err)
		require.True(t, ok)
		// Monday and Wednesday both sit at 100%; the tie goes to the lower
		// weekday index. Same rule picks Tuesday over Thursday at 0%.
		assert.Equal(t, "Monday", summary.BestDay)
		assert.Equal(t, "Tuesday", summary.WorstDay)
	})

	t.Run("weekdays without observations are excluded", func(t *testing.T) {
		entries := []EntryRecord{
			{HabitID: "h1", Date: "2024-01-05", Status: StatusDone},    // Fri 1/1
			{HabitID: "h1", Date: "2024-01-06", Status: StatusSkipped}, // Sat 0/1
		}
		summary, ok, err := BestWorstDays(entries)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Friday", summary.BestDay)
		assert.Equal(t, "Saturday", summary.WorstDay)
	})

	t.Run("no observations", func(t *testing.T) {
		_, ok, err := BestWorstDays(nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed entry date", func(t *testing.T) {
		_, _, err := BestWorstDays([]EntryRecord{{HabitID: "h1", Date: "garbage", Status: StatusDone}})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestDetectAnchorHabits(t *testing.T) {
	t.Run("overlap is asymmetric", func(t *testing.T) {
		// A covers all of B's days, so A scores 2/2 = 1.0; B covers only
		// half of A's, scoring 2/4 = 0.5 and falling under the threshold.
		byHabit := map[string][]string{
			"a": {"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
			"b": {"2024-01-01", "2024-01-02"},
		}
		anchors := DetectAnchorHabits(byHabit, 0.70)
		require.Len(t, anchors, 1)
		assert.Equal(t, "a", anchors[0].HabitID)
		assert.InDelta(t, 1.0, anchors[0].Score, 1e-9)
	})

	t.Run("fewer than two habits", func(t *testing.T) {
		assert.Empty(t, DetectAnchorHabits(map[string][]string{"a": {"2024-01-01"}}, 0.70))
		assert.Empty(t, DetectAnchorHabits(nil, 0.70))
	})

	t.Run("habits without completions are skipped as comparisons", func(t *testing.T) {
		byHabit := map[string][]string{
			"a": {"2024-01-01"},
			"b": {},
		}
		assert.Empty(t, DetectAnchorHabits(byHabit, 0.70))
	})

	t.Run("equal scores order by habit id", func(t *testing.T) {
		shared := []string{"2024-01-01", "2024-01-02"}
		byHabit := map[string][]string{"c": shared, "a": shared, "b": shared}
		anchors := DetectAnchorHabits(byHabit, 0.70)
		require.Len(t, anchors, 3)
		assert.Equal(t, "a", anchors[0].HabitID)
		assert.Equal(t, "b", anchors[1].HabitID)
		assert.Equal(t, "c", anchors[2].HabitID)
	})

	t.Run("threshold is strict", func(t *testing.T) {
		// Both habits score exactly 0.5 against each other.
		byHabit := map[string][]string{
			"a": {"2024-01-01", "2024-01-02"},
			"b": {"2024-01-01", "2024-01-03"},
		}
		assert.Empty(t, DetectAnchorHabits(byHabit, 0.5))
	})
}
