package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/api/dto"
	"github.com/habitloop/backend/internal/api/middleware"
	"github.com/habitloop/backend/internal/domain/habits"
)

// InsightsHandler serves the analytics surface: the full per-day payload and
// the standalone daily insight.
type InsightsHandler struct {
	service habits.Service
}

// NewInsightsHandler creates a new InsightsHandler instance
func NewInsightsHandler(service habits.Service) *InsightsHandler {
	return &InsightsHandler{service: service}
}

func (h *InsightsHandler) GetUserInsights(c *gin.Context) {
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

	payload, err := h.service.GetUserInsights(c.Request.Context(), userID, query.Date)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToUserInsightsResponse(payload)})
}

func (h *InsightsHandler) GetDailyInsight(c *gin.Context) {
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

	insight, err := h.service.GetDailyInsight(c.Request.Context(), userID, query.Date)
	if err != nil {
		c.JSON(habitErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToInsightResponse(insight)})
}
