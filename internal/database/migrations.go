package database

import (
	"gorm.io/gorm"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
)

// AutoMigrate creates or updates the schema for all tracked entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Rule{},
		&models.Event{},
		&models.Alert{},
		&models.Notification{},
	)
}
