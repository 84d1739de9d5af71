package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/api/handlers"
	"github.com/habitloop/backend/internal/api/middleware"
)

type InsightsRoutes struct {
	handler   *handlers.InsightsHandler
	jwtSecret string
}

func NewInsightsRoutes(handler *handlers.InsightsHandler, jwtSecret string) *InsightsRoutes {
	return &InsightsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the analytics endpoints
func (r *InsightsRoutes) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/insights")
	group.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	group.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.GetUserInsights)
	group.GET("/daily", r.handler.GetDailyInsight)
}
