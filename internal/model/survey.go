package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Survey struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	UUID      uuid.UUID  `json:"uuid" gorm:"type:uuid;not null;uniqueIndex"`
	Title     string     `json:"title"`
	Desc      string     `json:"desc"`
	Questions []Question `json:"-" gorm:"foreignKey:SurveyID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate fills the survey UUID; clients never supply it.
func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == uuid.Nil {
		s.UUID = uuid.New()
	}
	return nil
}
