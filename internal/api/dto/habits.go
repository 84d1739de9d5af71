package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitloop/backend/internal/domain/habits"
)

// CreateHabitRequest represents the request to create a new habit
type CreateHabitRequest struct {
	Title         string  `json:"title" binding:"required,max=255"`
	Description   string  `json:"description"`
	ScheduleType  string  `json:"schedule_type" binding:"required,oneof=daily weekly"`
	DaysOfWeek    []int64 `json:"days_of_week" binding:"omitempty,dive,min=0,max=6"`
	Color         string  `json:"color" binding:"omitempty,max=16"`
	Icon          string  `json:"icon" binding:"omitempty,max=64"`
	Cue           string  `json:"cue"`
	MinimumAction string  `json:"minimum_action"`
	Reward        string  `json:"reward"`
	FrictionNotes string  `json:"friction_notes"`
	Identity      string  `json:"identity"`
	ReminderTime  string  `json:"reminder_time" binding:"omitempty,len=5"`
}

// UpdateHabitRequest represents the request to update an existing habit.
// Omitted fields are left untouched.
type UpdateHabitRequest struct {
	Title         *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Description   *string  `json:"description,omitempty"`
	ScheduleType  *string  `json:"schedule_type,omitempty" binding:"omitempty,oneof=daily weekly"`
	DaysOfWeek    *[]int64 `json:"days_of_week,omitempty" binding:"omitempty,dive,min=0,max=6"`
	Color         *string  `json:"color,omitempty" binding:"omitempty,max=16"`
	Icon          *string  `json:"icon,omitempty" binding:"omitempty,max=64"`
	Cue           *string  `json:"cue,omitempty"`
	MinimumAction *string  `json:"minimum_action,omitempty"`
	Reward        *string  `json:"reward,omitempty"`
	FrictionNotes *string  `json:"friction_notes,omitempty"`
	Identity      *string  `json:"identity,omitempty"`
	ReminderTime  *string  `json:"reminder_time,omitempty" binding:"omitempty,len=5"`
}

// ToggleEntryRequest represents the request to toggle a habit entry for a day
type ToggleEntryRequest struct {
	Date   string `json:"date" binding:"required,dateonly"`
	Status string `json:"status" binding:"required,oneof=done skipped"`
}

// HabitResponse represents a habit in API responses
type HabitResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ScheduleType  string    `json:"schedule_type"`
	DaysOfWeek    []int64   `json:"days_of_week"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	IsActive      bool      `json:"is_active"`
	Cue           string    `json:"cue"`
	MinimumAction string    `json:"minimum_action"`
	Reward        string    `json:"reward"`
	FrictionNotes string    `json:"friction_notes"`
	Identity      string    `json:"identity"`
	ReminderTime  string    `json:"reminder_time"`
	HasBlueprint  bool      `json:"has_blueprint"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits
type HabitListResponse struct {
	Habits     []HabitResponse `json:"habits"`
	TotalCount int             `json:"total_count"`
}

// EntryResponse represents a habit entry in API responses
type EntryResponse struct {
	ID      uuid.UUID `json:"id"`
	HabitID uuid.UUID `json:"habit_id"`
	Date    string    `json:"date"`
	Status  string    `json:"status"`
}

// ToggleEntryResponse reports what the toggle did
type ToggleEntryResponse struct {
	Entry   *EntryResponse `json:"entry,omitempty"`
	Removed bool           `json:"removed"`
}

// ToHabitResponse converts a domain habit to its API representation
func ToHabitResponse(h *habits.Habit) HabitResponse {
	days := make([]int64, len(h.DaysOfWeek))
	copy(days, h.DaysOfWeek)

	return HabitResponse{
		ID:            h.ID,
		UserID:        h.UserID,
		Title:         h.Title,
		Description:   h.Description,
		ScheduleType:  h.ScheduleType,
		DaysOfWeek:    days,
		Color:         h.Color,
		Icon:          h.Icon,
		IsActive:      h.IsActive,
		Cue:           h.Cue,
		MinimumAction: h.MinimumAction,
		Reward:        h.Reward,
		FrictionNotes: h.FrictionNotes,
		Identity:      h.Identity,
		ReminderTime:  h.ReminderTime,
		HasBlueprint:  h.HasBlueprint(),
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

// ToHabitListResponse converts a slice of domain habits
func ToHabitListResponse(list []habits.Habit) HabitListResponse {
	out := make([]HabitResponse, len(list))
	for i := range list {
		out[i] = ToHabitResponse(&list[i])
	}
	return HabitListResponse{Habits: out, TotalCount: len(out)}
}

// ToToggleEntryResponse converts a toggle result
func ToToggleEntryResponse(r *habits.ToggleResult) ToggleEntryResponse {
	out := ToggleEntryResponse{Removed: r.Removed}
	if r.Entry != nil {
		out.Entry = &EntryResponse{
			ID:      r.Entry.ID,
			HabitID: r.Entry.HabitID,
			Date:    r.Entry.Date,
			Status:  r.Entry.Status,
		}
	}
	return out
}
