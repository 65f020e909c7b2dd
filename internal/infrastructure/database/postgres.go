package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Mental-Health-Matters/Psych/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey, which the services map
// to the duplicate-account outcome.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	if err := db.AutoMigrate(&repositories.DBQuestionnaire{}); err != nil {
		return fmt.Errorf("failed to migrate questionnaires table: %w", err)
	}
	return nil
}
