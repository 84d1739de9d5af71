package insights

import (
	"math"
	"time"
)

// ComputeWeeklyBuckets builds the 7-day completion chart ending at
// referenceDate, oldest day first. Each bucket counts how many active habits
// were scheduled that day and how many of those have a done entry. Habits not
// scheduled on a day contribute to neither count, so a Monday-only habit
// cannot drag down a Tuesday column.
func ComputeWeeklyBuckets(habits []HabitInfo, entries []EntryRecord, referenceDate string) ([]DayBucket, error) {
	ref, err := ParseDate(referenceDate)
	if err != nil {
		return nil, err
	}

	done := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Status == StatusDone {
			done[e.HabitID+"|"+e.Date] = struct{}{}
		}
	}

	buckets := make([]DayBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := AddDays(ref, -i)
		buckets = append(buckets, bucketFor(habits, done, day))
	}
	return buckets, nil
}

func bucketFor(habits []HabitInfo, done map[string]struct{}, day time.Time) DayBucket {
	dateStr := FormatDate(day)
	dow := DayOfWeek(day)

	b := DayBucket{DayLabel: WeekdayAbbrev(dow), Date: dateStr}
	for _, h := range habits {
		if !h.Active || !h.Schedule.IsDueOn(dow) {
			continue
		}
		b.ScheduledCount++
		if _, ok := done[h.ID+"|"+dateStr]; ok {
			b.CompletedCount++
		}
	}
	return b
}

// WeeklyRate is the aggregate completion percentage across a set of buckets.
// A week with nothing scheduled reports 0 rather than dividing by zero.
func WeeklyRate(buckets []DayBucket) int {
	completed, scheduled := 0, 0
	for _, b := range buckets {
		completed += b.CompletedCount
		scheduled += b.ScheduledCount
	}
	if scheduled == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(scheduled) * 100))
}
