// Package migration keeps the database schema in sync with the
// persistence models.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/reelhub/reelhub/internal/infrastructure/persistence/models"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// AutoMigrateModels lists every model included in schema migration.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CategoryModel{},
		&models.UserModel{},
		&models.VideoModel{},
	}
}

// Run applies gorm AutoMigrate for all registered models.
func Run(db *gorm.DB) error {
	migrateModels := AutoMigrateModels()
	logger.Info("starting database migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
