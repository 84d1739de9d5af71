package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/api/handlers"
	"github.com/habitloop/backend/internal/api/middleware"
)

type HabitsRoutes struct {
	handler   *handlers.HabitsHandler
	jwtSecret string
}

func NewHabitsRoutes(handler *handlers.HabitsHandler, jwtSecret string) *HabitsRoutes {
	return &HabitsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all habit-related routes
func (h *HabitsRoutes) RegisterRoutes(router *gin.Engine) {
	habits := router.Group("/api/habits")
	habits.Use(middleware.NewAuthMiddleware(h.jwtSecret))

	// Specific routes before parameterized ones
	habits.GET("", gzip.Gzip(gzip.DefaultCompression), h.handler.ListHabits)
	habits.POST("", h.handler.CreateHabit)
	habits.GET("/due", gzip.Gzip(gzip.DefaultCompression), h.handler.GetHabitsDueOn)

	habits.GET("/:id", h.handler.GetHabit)
	habits.PUT("/:id", h.handler.UpdateHabit)
	habits.DELETE("/:id", h.handler.DeleteHabit)

	habits.POST("/:id/archive", h.handler.ArchiveHabit)
	habits.POST("/:id/restore", h.handler.RestoreHabit)

	habits.POST("/:id/toggle", h.handler.ToggleEntry)
	habits.GET("/:id/stats", h.handler.GetHabitStats)
}
