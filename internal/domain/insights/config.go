package insights

// Config carries the engine's tunables. The values were inline literals in
// earlier revisions; they are configuration now so operators can adjust them
// without a release.
type Config struct {
	// ConsistencyWindowDays is the trailing window for the consistency
	// percentage, ending at the reference date inclusive.
	ConsistencyWindowDays int
	// AnchorThreshold is the minimum average overlap score for a habit to
	// qualify as an anchor.
	AnchorThreshold float64
	// StreakHorizonDays bounds the backward walk of the current-streak
	// calculation.
	StreakHorizonDays int
	// ConsistencyFloor is the per-habit 30-day consistency (percent) below
	// which the improvement tip recommends simplifying the habit.
	ConsistencyFloor int
	// WeeklyRateTarget is the weekly completion rate (percent) below which
	// the improvement tip recommends addressing the weakest day.
	WeeklyRateTarget int
}

// DefaultConfig returns the engine defaults matching the shipped product
// behavior.
func DefaultConfig() Config {
	return Config{
		ConsistencyWindowDays: 30,
		AnchorThreshold:       0.70,
		StreakHorizonDays:     365,
		ConsistencyFloor:      50,
		WeeklyRateTarget:      70,
	}
}
