package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/todo-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the users and todos tables.
func Migrate(db *gorm.DB, log *slog.Logger) error {
	log.Info("Running database migrations...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Todo{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database migrations completed")
	return nil
}
