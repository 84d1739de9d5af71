package habits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name         string
		scheduleType string
		daysOfWeek   []int64
		wantErr      bool
	}{
		{
			name:         "daily ignores days",
			scheduleType: ScheduleTypeDaily,
		},
		{
			name:         "weekly with valid days",
			scheduleType: ScheduleTypeWeekly,
			daysOfWeek:   []int64{1, 3, 5},
		},
		{
			name:         "weekly single day",
			scheduleType: ScheduleTypeWeekly,
			daysOfWeek:   []int64{0},
		},
		{
			name:         "weekly without days",
			scheduleType: ScheduleTypeWeekly,
			wantErr:      true,
		},
		{
			name:         "weekly with out of range day",
			scheduleType: ScheduleTypeWeekly,
			daysOfWeek:   []int64{1, 7},
			wantErr:      true,
		},
		{
			name:         "weekly with negative day",
			scheduleType: ScheduleTypeWeekly,
			daysOfWeek:   []int64{-1},
			wantErr:      true,
		},
		{
			name:         "weekly with duplicate day",
			scheduleType: ScheduleTypeWeekly,
			daysOfWeek:   []int64{2, 2},
			wantErr:      true,
		},
		{
			name:         "unknown schedule type",
			scheduleType: "monthly",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSchedule(tt.scheduleType, tt.daysOfWeek)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHabitHasBlueprint(t *testing.T) {
	h := Habit{}
	assert.False(t, h.HasBlueprint())

	h.Cue = "after breakfast"
	assert.True(t, h.HasBlueprint())

	h = Habit{MinimumAction: "one push-up"}
	assert.True(t, h.HasBlueprint())

	h = Habit{Reward: "coffee"}
	assert.False(t, h.HasBlueprint())
}
