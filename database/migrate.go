package database

import (
	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Survey{},
		&model.Question{},
		&model.Answer{},
		&model.SurveyResponse{},
	)
}
