package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitloop/backend/internal/api/dto"
	"github.com/habitloop/backend/internal/api/middleware"
	"github.com/habitloop/backend/internal/domain/habits"
	"github.com/habitloop/backend/internal/domain/insights"
)

// HabitsHandler handles HTTP requests for habits operations
type HabitsHandler struct {
	service habits.Service
}

// NewHabitsHandler creates a new HabitsHandler instance
func NewHabitsHandler(service habits.Service) *HabitsHandler {
	return &HabitsHandler{service: service}
}

func habitErrorStatus(err error) int {
	switch {
	case errors.Is(err, habits.ErrHabitNotFound), errors.Is(err, habits.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, habits.ErrInvalidInput),
		errors.Is(err, habits.ErrInvalidSchedule),
		errors.Is(err, habits.ErrInvalidStatus),
		errors.Is(err, insights.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, habits.ErrHabitArchived):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ownedHabit loads the habit and verifies it belongs to the authenticated
// user. A foreign habit reads as not found.
func (h *HabitsHandler) ownedHabit(c *gin.Context) (*habits.Habit, uuid.UUID, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return nil, uuid.Nil, false
	}

	habit, err := h.service.GetHabit(c.Request.Context(), id)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return nil, uuid.Nil, false
	}
	if habit.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": habits.ErrHabitNotFound.Error()})
		return nil, uuid.Nil, false
	}

	return habit, userID, true
}

func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	input := habits.CreateHabitInput{
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		ScheduleType:  req.ScheduleType,
		DaysOfWeek:    req.DaysOfWeek,
		Color:         req.Color,
		Icon:          req.Icon,
		Cue:           req.Cue,
		MinimumAction: req.MinimumAction,
		Reward:        req.Reward,
		FrictionNotes: req.FrictionNotes,
		Identity:      req.Identity,
		ReminderTime:  req.ReminderTime,
	}

	created, err := h.service.CreateHabit(c.Request.Context(), input)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": dto.ToHabitResponse(created)})
}

func (h *HabitsHandler) GetHabit(c *gin.Context) {
	habit, _, ok := h.ownedHabit(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHabitResponse(habit)})
}

func (h *HabitsHandler) ListHabits(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	filter := habits.HabitFilter{
		UserID:     &userID,
		ActiveOnly: c.Query("include_archived") != "true",
	}

	list, err := h.service.ListHabits(c.Request.Context(), filter)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHabitListResponse(list)})
}

func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	habit, _, ok := h.ownedHabit(c)
	if !ok {
		return
	}

	var req dto.UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := habits.UpdateHabitInput{
		Title:         req.Title,
		Description:   req.Description,
		ScheduleType:  req.ScheduleType,
		DaysOfWeek:    req.DaysOfWeek,
		Color:         req.Color,
		Icon:          req.Icon,
		Cue:           req.Cue,
		MinimumAction: req.MinimumAction,
		Reward:        req.Reward,
		FrictionNotes: req.FrictionNotes,
		Identity:      req.Identity,
		ReminderTime:  req.ReminderTime,
	}

	updated, err := h.service.UpdateHabit(c.Request.Context(), habit.ID, input)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHabitResponse(updated)})
}

func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	habit, _, ok := h.ownedHabit(c)
	if !ok {
		return
	}

	if err := h.service.DeleteHabit(c.Request.Context(), habit.ID); err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "habit deleted"})
}

func (h *HabitsHandler) ArchiveHabit(c *gin.Context) {
	habit, _, ok := h.ownedHabit(c)
	if !ok {
		return
	}

	archived, err := h.service.ArchiveHabit(c.Request.Context(), habit.ID)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHabitResponse(archived)})
}

func (h *HabitsHandler) RestoreHabit(c *gin.Context) {
	habit, _, ok := h.ownedHabit(c)
	if !ok {
		return
	}

	restored, err := h.service.RestoreHabit(c.Request.Context(), habit.ID)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHabitResponse(restored)})
}

func (h *HabitsHandler) ToggleEntry(c *gin.Context) {
	habit, userID, ok := h.ownedHabit(c)
	if !ok {
		return
	}

	var req dto.ToggleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.ToggleEntry(c.Request.Context(), habit.ID, userID, req.Date, req.Status)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToToggleEntryResponse(result)})
}

func (h *HabitsHandler) GetHabitStats(c *gin.Context) {
	habit, _, ok := h.ownedHabit(c)
	if !ok {
		return
	}

	var query dto.InsightsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.service.GetHabitStats(c.Request.Context(), habit.ID, query.Date)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToStreakResponse(habits.HabitStreakView{
		HabitID:     habit.ID.String(),
		Title:       habit.Title,
		StreakStats: *stats,
	})})
}

func (h *HabitsHandler) GetHabitsDueOn(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var query dto.InsightsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := h.service.GetHabitsDueOn(c.Request.Context(), userID, query.Date)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToHabitListResponse(due)})
}
