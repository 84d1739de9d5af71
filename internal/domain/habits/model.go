package habits

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ScheduleTypeDaily  = "daily"
	ScheduleTypeWeekly = "weekly"

	EntryStatusDone    = "done"
	EntryStatusSkipped = "skipped"
)

// Habit is a user-defined recurring intention with a schedule and optional
// behavior-design blueprint fields.
type Habit struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string        `gorm:"size:255;not null" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	ScheduleType string        `gorm:"size:16;not null;default:'daily'" json:"schedule_type"`
	DaysOfWeek   pq.Int64Array `gorm:"type:integer[]" json:"days_of_week"`
	Color        string        `gorm:"size:16" json:"color"`
	Icon         string        `gorm:"size:64" json:"icon"`
	IsActive     bool          `gorm:"not null;default:true" json:"is_active"`

	// Blueprint fields from the habit-design flow. The analytics only ever
	// ask whether a blueprint exists; the content is for display.
	Cue           string `gorm:"type:text" json:"cue"`
	MinimumAction string `gorm:"type:text" json:"minimum_action"`
	Reward        string `gorm:"type:text" json:"reward"`
	FrictionNotes string `gorm:"type:text" json:"friction_notes"`
	Identity      string `gorm:"type:text" json:"identity"`
	ReminderTime  string `gorm:"size:5" json:"reminder_time"` // HH:MM, consumed by the notification service

	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

// HasBlueprint reports whether the habit has any behavior design attached.
func (h *Habit) HasBlueprint() bool {
	return h.Cue != "" || h.MinimumAction != ""
}

// TableName specifies the table name for the Habit model
func (Habit) TableName() string {
	return "habits"
}

// BeforeCreate is called before creating a new habit record
func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// HabitEntry is one completion or skip fact: habit H had outcome Status on
// calendar date Date. The unique index enforces at most one entry per habit
// per day, which the whole analytics layer depends on.
type HabitEntry struct {
	ID       uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HabitID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_habit_entry_date,priority:1;index" json:"habit_id"`
	UserID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_entry_user_date,priority:1" json:"user_id"`
	Date     string         `gorm:"size:10;not null;uniqueIndex:idx_habit_entry_date,priority:2;index:idx_entry_user_date,priority:2" json:"date"` // YYYY-MM-DD
	Status   string         `gorm:"size:16;not null" json:"status"`
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the HabitEntry model
func (HabitEntry) TableName() string {
	return "habit_entries"
}

// BeforeCreate is called before creating a new entry record
func (e *HabitEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// CreateHabitInput represents the input for creating a new habit
type CreateHabitInput struct {
	UserID        uuid.UUID
	Title         string
	Description   string
	ScheduleType  string
	DaysOfWeek    []int64
	Color         string
	Icon          string
	Cue           string
	MinimumAction string
	Reward        string
	FrictionNotes string
	Identity      string
	ReminderTime  string
}

// UpdateHabitInput represents the input for updating a habit. Nil fields are
// left untouched.
type UpdateHabitInput struct {
	Title         *string
	Description   *string
	ScheduleType  *string
	DaysOfWeek    *[]int64
	Color         *string
	Icon          *string
	Cue           *string
	MinimumAction *string
	Reward        *string
	FrictionNotes *string
	Identity      *string
	ReminderTime  *string
}

// ToggleResult describes what the toggle state machine did with an entry.
type ToggleResult struct {
	Entry   *HabitEntry `json:"entry,omitempty"`
	Removed bool        `json:"removed"`
}
