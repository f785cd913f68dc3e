package model

import (
	"time"
)

type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	SurveyID  uint      `json:"survey_id" gorm:"not null;index"`
	Survey    *Survey   `json:"-" gorm:"foreignKey:SurveyID"`
	Answers   []Answer  `json:"-" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
