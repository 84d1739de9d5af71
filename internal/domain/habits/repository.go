package habits

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitloop/backend/internal/infrastructure/persistence/postgres/connection"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// HabitFilter defines the filtering options for habits
type HabitFilter struct {
	UserID     *uuid.UUID
	ActiveOnly bool
}

// Repository defines the interface for habit persistence operations
type Repository interface {
	Create(ctx context.Context, habit *Habit) error
	FindByID(ctx context.Context, id uuid.UUID) (*Habit, error)
	FindAll(ctx context.Context, filter HabitFilter) ([]Habit, error)
	Update(ctx context.Context, habit *Habit) error
	Delete(ctx context.Context, id uuid.UUID) error

	ToggleEntry(ctx context.Context, habitID, userID uuid.UUID, date, status string) (*ToggleResult, error)
	FindEntry(ctx context.Context, habitID uuid.UUID, date string) (*HabitEntry, error)
	FindEntriesByHabit(ctx context.Context, habitID uuid.UUID, from, to string) ([]HabitEntry, error)
	FindEntriesByUser(ctx context.Context, userID uuid.UUID, from, to string) ([]HabitEntry, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, habit *Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Habit, error) {
	var habit Habit
	result := r.db.WithContext(ctx).First(&habit, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, result.Error
	}
	return &habit, nil
}

func (r *repository) FindAll(ctx context.Context, filter HabitFilter) ([]Habit, error) {
	var habits []Habit
	query := r.db.WithContext(ctx).Model(&Habit{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	err := query.Order("created_at asc").Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *repository) Update(ctx context.Context, habit *Habit) error {
	result := r.db.WithContext(ctx).Save(habit)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// Delete removes a habit and all of its entries in one transaction.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&HabitEntry{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Habit{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrHabitNotFound
		}
		return nil
	})
}

// ToggleEntry runs the entry state machine for one (habit, date) slot:
// no entry yet creates one, toggling to the same status deletes it (undo),
// toggling to a different status patches it in place.
func (r *repository) ToggleEntry(ctx context.Context, habitID, userID uuid.UUID, date, status string) (*ToggleResult, error) {
	var out *ToggleResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing HabitEntry
		err := tx.Where("habit_id = ? AND date = ?", habitID, date).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry := &HabitEntry{
				HabitID: habitID,
				UserID:  userID,
				Date:    date,
				Status:  status,
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
			out = &ToggleResult{Entry: entry}
			return nil

		case err != nil:
			return err

		case existing.Status == status:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			out = &ToggleResult{Removed: true}
			return nil

		default:
			existing.Status = status
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			out = &ToggleResult{Entry: &existing}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) FindEntry(ctx context.Context, habitID uuid.UUID, date string) (*HabitEntry, error) {
	var entry HabitEntry
	result := r.db.WithContext(ctx).Where("habit_id = ? AND date = ?", habitID, date).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, result.Error
	}
	return &entry, nil
}

func (r *repository) FindEntriesByHabit(ctx context.Context, habitID uuid.UUID, from, to string) ([]HabitEntry, error) {
	var entries []HabitEntry
	err := r.db.WithContext(ctx).
		Where("habit_id = ? AND date BETWEEN ? AND ?", habitID, from, to).
		Order("date asc").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindEntriesByUser(ctx context.Context, userID uuid.UUID, from, to string) ([]HabitEntry, error) {
	var entries []HabitEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&entries).Error
	return entries, err
}
