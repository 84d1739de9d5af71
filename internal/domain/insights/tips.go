package insights

import "fmt"

// HabitConsistency pairs a habit with its trailing consistency percentage for
// the tip composer.
type HabitConsistency struct {
	HabitID     string
	Title       string
	Consistency int
}

// ComposeImprovementTip produces exactly one recommendation. Priority order:
// a habit struggling below the consistency floor beats a weak week, which
// beats plain reinforcement. Ties on lowest consistency keep the first habit
// in input order so the tip is stable across renders.
func ComposeImprovementTip(perHabit []HabitConsistency, weeklyRate int, worstDay string, cfg Config) string {
	if len(perHabit) > 0 {
		lowest := perHabit[0]
		for _, h := range perHabit[1:] {
			if h.Consistency < lowest.Consistency {
				lowest = h
			}
		}
		if lowest.Consistency < cfg.ConsistencyFloor {
			return fmt.Sprintf(
				"%q is at %d%% over the last month. Try shrinking it to a two-minute version you can't say no to.",
				lowest.Title, lowest.Consistency,
			)
		}
	}

	if weeklyRate < cfg.WeeklyRateTarget && worstDay != "" {
		return fmt.Sprintf(
			"%ss are your hardest day. Prepare the night before and anchor your habits to something you already do that morning.",
			worstDay,
		)
	}

	return "You're showing up consistently. Keep casting votes for the person you're becoming."
}
