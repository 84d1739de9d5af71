package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/domain/insights"
	"github.com/habitloop/backend/internal/infrastructure/cache"
	"github.com/habitloop/backend/pkg/logger"
)

// Scheduler runs nightly cache hygiene. Cached insight payloads are keyed by
// calendar date, so entries for past dates can never be served again and are
// swept a little after midnight.
type Scheduler struct {
	redis  *cache.RedisClient
	logger *logger.Logger
}

func NewScheduler(redis *cache.RedisClient, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		redis:  redis,
		logger: logger,
	}
}

func (s *Scheduler) Start() {
	// Run immediately at startup
	s.runNightlyTasks()

	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	timeUntilMidnight := nextMidnight.Sub(now)

	s.logger.Info("Insights cache scheduler initialized",
		zap.Time("current_time", now),
		zap.Time("next_run", nextMidnight),
		zap.Duration("time_until_next_run", timeUntilMidnight),
	)

	go func() {
		time.Sleep(timeUntilMidnight)

		ticker := time.NewTicker(24 * time.Hour)
		for range ticker.C {
			s.runNightlyTasks()
		}
	}()
}

func (s *Scheduler) runNightlyTasks() {
	ctx := context.Background()
	startTime := time.Now()

	s.logger.Info("Starting nightly insights cache sweep", zap.Time("start_time", startTime))

	today := insights.FormatDate(time.Now().UTC())
	purged, err := s.redis.PurgeInsightsBefore(ctx, today)
	if err != nil {
		s.logger.Error("Failed to purge stale insights cache", zap.Error(err))
	} else {
		s.logger.Info("Purged stale insights cache entries",
			zap.Int("purged_count", purged),
			zap.String("cutoff", today),
		)
	}

	metrics := s.redis.ExportMetrics()
	s.logger.Info("Completed nightly insights cache sweep",
		zap.Time("end_time", time.Now()),
		zap.Duration("duration", time.Since(startTime)),
		zap.Float64("cache_hit_rate", metrics["cache_hit_rate"]),
	)
}
