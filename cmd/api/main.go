package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/api/dto"
	"github.com/habitloop/backend/internal/api/handlers"
	"github.com/habitloop/backend/internal/api/middleware"
	"github.com/habitloop/backend/internal/api/routes"
	"github.com/habitloop/backend/internal/domain/habits"
	"github.com/habitloop/backend/internal/domain/insights"
	"github.com/habitloop/backend/internal/infrastructure/cache"
	"github.com/habitloop/backend/internal/infrastructure/persistence/postgres/connection"
	"github.com/habitloop/backend/internal/infrastructure/persistence/postgres/migrations"
	"github.com/habitloop/backend/internal/infrastructure/scheduler"
	"github.com/habitloop/backend/pkg/config"
	"github.com/habitloop/backend/pkg/logger"
	"github.com/habitloop/backend/pkg/security/auth"
)

func engineConfig(cfg *config.Config) insights.Config {
	engine := insights.DefaultConfig()
	if cfg.Analytics.ConsistencyWindowDays > 0 {
		engine.ConsistencyWindowDays = cfg.Analytics.ConsistencyWindowDays
	}
	if cfg.Analytics.AnchorThreshold > 0 {
		engine.AnchorThreshold = cfg.Analytics.AnchorThreshold
	}
	if cfg.Analytics.StreakHorizonDays > 0 {
		engine.StreakHorizonDays = cfg.Analytics.StreakHorizonDays
	}
	if cfg.Analytics.ConsistencyFloor > 0 {
		engine.ConsistencyFloor = cfg.Analytics.ConsistencyFloor
	}
	if cfg.Analytics.WeeklyRateTarget > 0 {
		engine.WeeklyRateTarget = cfg.Analytics.WeeklyRateTarget
	}
	return engine
}

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	dto.RegisterValidators()

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLoggerMiddleware(log))
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Encoding",
			"Content-Type",
			"Authorization",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Encoding",
			"Content-Type",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	redisConfig := cache.NewConfigFromEnv(cfg)
	redisClient, err := cache.NewRedisClient(redisConfig)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	rateLimiter := auth.NewRedisRateLimiter(redisClient.GetClient(), 1*time.Minute, 1000)

	habitsRepo := habits.NewRepository(db)
	habitsService := habits.NewService(
		habitsRepo,
		redisClient,
		log.Logger,
		engineConfig(cfg),
		cfg.Analytics.InsightsCacheTTL,
	)

	habitsHandler := handlers.NewHabitsHandler(habitsService)
	insightsHandler := handlers.NewInsightsHandler(habitsService)

	cacheScheduler := scheduler.NewScheduler(redisClient, log)
	cacheScheduler.Start()

	routes.SetupHealthRoutes(router, db, redisClient)

	router.GET("/health/cache", func(c *gin.Context) {
		if err := redisClient.HealthCheck(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"component": "cache",
				"error":     err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"component": "cache",
			"metrics":   redisClient.GetMetrics(),
		})
	})

	router.Use(middleware.RateLimitMiddleware(rateLimiter))

	habitsRoutes := routes.NewHabitsRoutes(habitsHandler, cfg.Auth.JWTSecret)
	habitsRoutes.RegisterRoutes(router)
	log.Info("Registered habits routes at /api/habits")

	insightsRoutes := routes.NewInsightsRoutes(insightsHandler, cfg.Auth.JWTSecret)
	insightsRoutes.RegisterRoutes(router)
	log.Info("Registered insights routes at /api/insights")

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
