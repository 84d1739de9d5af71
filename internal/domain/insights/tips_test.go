package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeImprovementTip(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("struggling habit wins over weak week", func(t *testing.T) {
		perHabit := []HabitConsistency{
			{HabitID: "h1", Title: "Exercise", Consistency: 80},
			{HabitID: "h2", Title: "Meditate", Consistency: 30},
		}
		tip := ComposeImprovementTip(perHabit, 40, "Tuesday", cfg)
		assert.Contains(t, tip, "Meditate")
		assert.Contains(t, tip, "30%")
		assert.NotContains(t, tip, "Tuesday")
	})

	t.Run("ties keep first habit in input order", func(t *testing.T) {
		perHabit := []HabitConsistency{
			{HabitID: "h1", Title: "Journal", Consistency: 20},
			{HabitID: "h2", Title: "Stretch", Consistency: 20},
		}
		tip := ComposeImprovementTip(perHabit, 90, "", cfg)
		assert.Contains(t, tip, "Journal")
		assert.NotContains(t, tip, "Stretch")
	})

	t.Run("weak week points at the worst day", func(t *testing.T) {
		perHabit := []HabitConsistency{{HabitID: "h1", Title: "Exercise", Consistency: 75}}
		tip := ComposeImprovementTip(perHabit, 55, "Tuesday", cfg)
		assert.Contains(t, tip, "Tuesday")
	})

	t.Run("no habits still surfaces the weekly tip", func(t *testing.T) {
		tip := ComposeImprovementTip(nil, 55, "Monday", cfg)
		assert.Contains(t, tip, "Monday")
	})

	t.Run("on track gets reinforcement", func(t *testing.T) {
		perHabit := []HabitConsistency{{HabitID: "h1", Title: "Exercise", Consistency: 90}}
		tip := ComposeImprovementTip(perHabit, 85, "Sunday", cfg)
		assert.NotContains(t, tip, "Sunday")
		assert.NotContains(t, tip, "Exercise")
		assert.NotEmpty(t, tip)
	})

	t.Run("weekly branch needs a worst day name", func(t *testing.T) {
		tip := ComposeImprovementTip(nil, 10, "", cfg)
		assert.Equal(t, "You're showing up consistently. Keep casting votes for the person you're becoming.", tip)
	})
}
