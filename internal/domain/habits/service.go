package habits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/domain/insights"
	"github.com/habitloop/backend/internal/infrastructure/cache"
)

var (
	ErrInvalidSchedule = errors.New("invalid schedule")
	ErrInvalidStatus   = errors.New("invalid entry status")
	ErrHabitArchived   = errors.New("habit is archived")
)

type Service interface {
	CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error)
	GetHabit(ctx context.Context, id uuid.UUID) (*Habit, error)
	ListHabits(ctx context.Context, filter HabitFilter) ([]Habit, error)
	UpdateHabit(ctx context.Context, id uuid.UUID, input UpdateHabitInput) (*Habit, error)
	DeleteHabit(ctx context.Context, id uuid.UUID) error
	ArchiveHabit(ctx context.Context, id uuid.UUID) (*Habit, error)
	RestoreHabit(ctx context.Context, id uuid.UUID) (*Habit, error)

	ToggleEntry(ctx context.Context, habitID, userID uuid.UUID, date, status string) (*ToggleResult, error)
	GetHabitsDueOn(ctx context.Context, userID uuid.UUID, date string) ([]Habit, error)
	GetHabitStats(ctx context.Context, habitID uuid.UUID, date string) (*insights.StreakStats, error)
	GetUserInsights(ctx context.Context, userID uuid.UUID, date string) (*UserInsights, error)
	GetDailyInsight(ctx context.Context, userID uuid.UUID, date string) (*insights.Insight, error)
}

type service struct {
	repo      Repository
	redis     *cache.RedisClient
	logger    *zap.Logger
	engineCfg insights.Config
	cacheTTL  time.Duration
}

func NewService(repo Repository, redis *cache.RedisClient, logger *zap.Logger, engineCfg insights.Config, cacheTTL time.Duration) Service {
	return &service{
		repo:      repo,
		redis:     redis,
		logger:    logger,
		engineCfg: engineCfg,
		cacheTTL:  cacheTTL,
	}
}

func validateSchedule(scheduleType string, daysOfWeek []int64) error {
	switch scheduleType {
	case ScheduleTypeDaily:
		return nil
	case ScheduleTypeWeekly:
		if len(daysOfWeek) == 0 {
			return fmt.Errorf("%w: weekly habits require at least one day", ErrInvalidSchedule)
		}
		seen := make(map[int64]struct{}, len(daysOfWeek))
		for _, d := range daysOfWeek {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: days must be 0-6 (Sunday-Saturday)", ErrInvalidSchedule)
			}
			if _, dup := seen[d]; dup {
				return fmt.Errorf("%w: duplicate day %d", ErrInvalidSchedule, d)
			}
			seen[d] = struct{}{}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown schedule type %q", ErrInvalidSchedule, scheduleType)
	}
}

func (s *service) CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := validateSchedule(input.ScheduleType, input.DaysOfWeek); err != nil {
		return nil, err
	}

	habit := &Habit{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Title:         input.Title,
		Description:   input.Description,
		ScheduleType:  input.ScheduleType,
		DaysOfWeek:    input.DaysOfWeek,
		Color:         input.Color,
		Icon:          input.Icon,
		IsActive:      true,
		Cue:           input.Cue,
		MinimumAction: input.MinimumAction,
		Reward:        input.Reward,
		FrictionNotes: input.FrictionNotes,
		Identity:      input.Identity,
		ReminderTime:  input.ReminderTime,
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx, input.UserID)
	s.logger.Info("habit created",
		zap.String("habit_id", habit.ID.String()),
		zap.String("user_id", habit.UserID.String()),
		zap.String("schedule_type", habit.ScheduleType))

	return habit, nil
}

func (s *service) GetHabit(ctx context.Context, id uuid.UUID) (*Habit, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListHabits(ctx context.Context, filter HabitFilter) ([]Habit, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UpdateHabit(ctx context.Context, id uuid.UUID, input UpdateHabitInput) (*Habit, error) {
	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		habit.Title = *input.Title
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.ScheduleType != nil {
		habit.ScheduleType = *input.ScheduleType
	}
	if input.DaysOfWeek != nil {
		habit.DaysOfWeek = *input.DaysOfWeek
	}
	if input.Color != nil {
		habit.Color = *input.Color
	}
	if input.Icon != nil {
		habit.Icon = *input.Icon
	}
	if input.Cue != nil {
		habit.Cue = *input.Cue
	}
	if input.MinimumAction != nil {
		habit.MinimumAction = *input.MinimumAction
	}
	if input.Reward != nil {
		habit.Reward = *input.Reward
	}
	if input.FrictionNotes != nil {
		habit.FrictionNotes = *input.FrictionNotes
	}
	if input.Identity != nil {
		habit.Identity = *input.Identity
	}
	if input.ReminderTime != nil {
		habit.ReminderTime = *input.ReminderTime
	}

	if err := validateSchedule(habit.ScheduleType, habit.DaysOfWeek); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx, habit.UserID)
	return habit, nil
}

func (s *service) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateInsights(ctx, habit.UserID)
	s.logger.Info("habit deleted with entries",
		zap.String("habit_id", id.String()),
		zap.String("user_id", habit.UserID.String()))
	return nil
}

func (s *service) ArchiveHabit(ctx context.Context, id uuid.UUID) (*Habit, error) {
	return s.setActive(ctx, id, false)
}

func (s *service) RestoreHabit(ctx context.Context, id uuid.UUID) (*Habit, error) {
	return s.setActive(ctx, id, true)
}

func (s *service) setActive(ctx context.Context, id uuid.UUID, active bool) (*Habit, error) {
	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit.IsActive == active {
		return habit, nil
	}

	habit.IsActive = active
	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx, habit.UserID)
	return habit, nil
}

// ToggleEntry cycles the entry for one (habit, date): first toggle creates,
// same status again undoes, a different status patches in place.
func (s *service) ToggleEntry(ctx context.Context, habitID, userID uuid.UUID, date, status string) (*ToggleResult, error) {
	if status != EntryStatusDone && status != EntryStatusSkipped {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if _, err := insights.ParseDate(date); err != nil {
		return nil, err
	}

	habit, err := s.repo.FindByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if !habit.IsActive {
		return nil, ErrHabitArchived
	}

	result, err := s.repo.ToggleEntry(ctx, habitID, userID, date, status)
	if err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx, userID)
	return result, nil
}

// GetHabitsDueOn returns the active habits scheduled on the given date's
// weekday.
func (s *service) GetHabitsDueOn(ctx context.Context, userID uuid.UUID, date string) ([]Habit, error) {
	day, err := insights.ParseDate(date)
	if err != nil {
		return nil, err
	}
	dow := insights.DayOfWeek(day)

	all, err := s.repo.FindAll(ctx, HabitFilter{UserID: &userID, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	due := make([]Habit, 0, len(all))
	for _, h := range all {
		if scheduleOf(h).IsDueOn(dow) {
			due = append(due, h)
		}
	}
	return due, nil
}

// GetHabitStats computes streak stats for one habit against its own
// schedule.
func (s *service) GetHabitStats(ctx context.Context, habitID uuid.UUID, date string) (*insights.StreakStats, error) {
	day, err := insights.ParseDate(date)
	if err != nil {
		return nil, err
	}

	habit, err := s.repo.FindByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	from := insights.FormatDate(insights.AddDays(day, -s.engineCfg.StreakHorizonDays))
	entries, err := s.repo.FindEntriesByHabit(ctx, habitID, from, date)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, e := range entries {
		if e.Status == EntryStatusDone {
			done = append(done, e.Date)
		}
	}

	stats, err := insights.ComputeStreakStats(scheduleOf(*habit), insights.ModeScheduleAware, done, date, s.engineCfg)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetUserInsights returns the full analytics payload for (user, date),
// served from Redis when a fresh copy exists.
func (s *service) GetUserInsights(ctx context.Context, userID uuid.UUID, date string) (*UserInsights, error) {
	day, err := insights.ParseDate(date)
	if err != nil {
		return nil, err
	}

	key := cache.UserInsightsKey(userID.String(), date)
	if cached, err := s.redis.Get(ctx, key); err == nil {
		var out UserInsights
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return &out, nil
		}
		s.logger.Warn("dropping undecodable insights cache entry", zap.String("key", key))
	}

	all, err := s.repo.FindAll(ctx, HabitFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}

	from := insights.FormatDate(insights.AddDays(day, -s.engineCfg.StreakHorizonDays))
	entries, err := s.repo.FindEntriesByUser(ctx, userID, from, date)
	if err != nil {
		return nil, err
	}

	out, err := BuildUserInsights(all, entries, date, s.engineCfg)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(out); err == nil {
		if err := s.redis.Set(ctx, key, string(data), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache insights", zap.String("key", key), zap.Error(err))
		}
	}

	return out, nil
}

func (s *service) GetDailyInsight(ctx context.Context, userID uuid.UUID, date string) (*insights.Insight, error) {
	out, err := s.GetUserInsights(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return &out.DailyInsight, nil
}

func (s *service) invalidateInsights(ctx context.Context, userID uuid.UUID) {
	if err := s.redis.InvalidateUserInsights(ctx, userID.String()); err != nil {
		s.logger.Warn("failed to invalidate insights cache",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}
