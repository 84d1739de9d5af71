package migrations

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/habitloop/backend/internal/domain/habits"
	"github.com/habitloop/backend/internal/infrastructure/persistence/postgres/connection"
)

// MigrationRecord tracks the migration history
type MigrationRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null;unique"`
	Version   int       `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for migration records
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *connection.Database, logger *zap.Logger) error {
	logger.Info("Starting automatic database migration...")

	// Enable UUID extension for PostgreSQL
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		logger.Error("Failed to create UUID extension", zap.Error(err))
		return fmt.Errorf("failed to create UUID extension: %v", err)
	}

	models := []interface{}{
		&MigrationRecord{},
		&habits.Habit{},
		&habits.HabitEntry{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := recordMigration(db.DB, "auto_migrate_habits"); err != nil {
		logger.Warn("Could not record migration", zap.Error(err))
	}

	logger.Info("Database migration completed successfully")
	return nil
}

func recordMigration(db *gorm.DB, name string) error {
	var existing MigrationRecord
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return db.Model(&existing).Update("applied_at", time.Now().UTC()).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return db.Create(&MigrationRecord{
		Name:      name,
		Version:   1,
		AppliedAt: time.Now().UTC(),
	}).Error
}
