package database

import (
	"internship_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema. The uuid-ossp extension backs
// the uuid_generate_v4() column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Internship{},
		&models.Application{},
		&models.Profile{},
	)
}
