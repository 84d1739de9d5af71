package insights

// SelectorState is the snapshot of today the insight selector reads.
type SelectorState struct {
	CompletedToday  int
	TotalToday      int
	CurrentStreak   int
	MissedYesterday bool
	HasBlueprints   bool
}

// SelectInsight picks one motivational line for the day. The candidate pool
// narrows by the first matching state rule, then the pick is a deterministic
// index from day-of-month plus streak so the same day renders the same line
// no matter how often the screen refreshes.
func SelectInsight(state SelectorState, referenceDate string) (Insight, error) {
	ref, err := ParseDate(referenceDate)
	if err != nil {
		return Insight{}, err
	}

	pool := insightLibrary
	switch {
	case state.MissedYesterday && state.CompletedToday == 0:
		pool = filterByCategory(CategoryRecovery, CategoryStart)
	case state.TotalToday > 0 && state.CompletedToday == state.TotalToday:
		pool = filterByCategory(CategoryIdentity, CategoryConsistency)
	case state.CompletedToday == 0 && state.TotalToday > 0:
		pool = filterByCategory(CategoryStart)
	case !state.HasBlueprints:
		pool = filterByCategory(CategoryCue, CategoryFriction)
	}

	idx := (ref.Day() + state.CurrentStreak) % len(pool)
	if idx < 0 {
		idx += len(pool)
	}
	return pool[idx], nil
}
