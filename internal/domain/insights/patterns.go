package insights

import "sort"

// BestWorstDays finds the strongest and weakest weekdays by completion rate
// over an arbitrary entry set. Weekdays with no recorded entries are excluded
// from both rankings; ties resolve to the lowest weekday index (Sunday first).
// ok is false when the entry set holds no observations at all.
func BestWorstDays(entries []EntryRecord) (summary PatternSummary, ok bool, err error) {
	var completed, total [7]int
	for _, e := range entries {
		day, perr := ParseDate(e.Date)
		if perr != nil {
			return PatternSummary{}, false, perr
		}
		dow := DayOfWeek(day)
		total[dow]++
		if e.Status == StatusDone {
			completed[dow]++
		}
	}

	bestRate, worstRate := -1.0, 2.0
	best, worst := 0, 0
	for i := 0; i < 7; i++ {
		if total[i] == 0 {
			continue
		}
		ok = true
		rate := float64(completed[i]) / float64(total[i])
		if rate > bestRate {
			bestRate, best = rate, i
		}
		if rate < worstRate {
			worstRate, worst = rate, i
		}
	}
	if !ok {
		return PatternSummary{}, false, nil
	}
	return PatternSummary{BestDay: WeekdayName(best), WorstDay: WeekdayName(worst)}, true, nil
}

// AnchorHabit is a habit whose completion strongly co-occurs with the rest of
// the user's habits, with its average overlap score.
type AnchorHabit struct {
	HabitID string  `json:"habit_id"`
	Score   float64 `json:"score"`
}

// DetectAnchorHabits scores each habit by how much of every other habit's
// completed-date set falls inside its own. The measure is deliberately
// asymmetric: a habit done daily can fully cover a twice-a-week habit while
// the reverse overlap stays small. Habits averaging above threshold are
// returned strongest first; fewer than two habits yields nothing to compare.
func DetectAnchorHabits(completedByHabit map[string][]string, threshold float64) []AnchorHabit {
	if len(completedByHabit) < 2 {
		return nil
	}

	ids := make([]string, 0, len(completedByHabit))
	for id := range completedByHabit {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	dateSets := make(map[string]map[string]struct{}, len(ids))
	for id, dates := range completedByHabit {
		set := make(map[string]struct{}, len(dates))
		for _, d := range dates {
			set[d] = struct{}{}
		}
		dateSets[id] = set
	}

	var anchors []AnchorHabit
	for _, target := range ids {
		targetSet := dateSets[target]
		sum, comparisons := 0.0, 0
		for _, other := range ids {
			if other == target || len(dateSets[other]) == 0 {
				continue
			}
			overlap := 0
			for d := range dateSets[other] {
				if _, hit := targetSet[d]; hit {
					overlap++
				}
			}
			sum += float64(overlap) / float64(len(dateSets[other]))
			comparisons++
		}
		if comparisons == 0 {
			continue
		}
		if score := sum / float64(comparisons); score > threshold {
			anchors = append(anchors, AnchorHabit{HabitID: target, Score: score})
		}
	}

	sort.Slice(anchors, func(i, j int) bool {
		if anchors[i].Score != anchors[j].Score {
			return anchors[i].Score > anchors[j].Score
		}
		return anchors[i].HabitID < anchors[j].HabitID
	})
	return anchors
}
