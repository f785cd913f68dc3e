package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Rating     *int      `json:"rating"`
	UserUUID   uuid.UUID `json:"user_uuid" gorm:"type:uuid;not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   *Question `json:"-" gorm:"foreignKey:QuestionID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewAnswer is the only way answers are built before being written: the
// rating is clamped here so every write path stores a value in [1,5] or nil.
func NewAnswer(questionID uint, rating *int, userUUID uuid.UUID) Answer {
	return Answer{
		QuestionID: questionID,
		Rating:     ClampRating(rating),
		UserUUID:   userUUID,
	}
}

// ClampRating returns a copy of rating limited to [MinRating, MaxRating].
// A nil rating means the question was skipped and stays nil.
func ClampRating(rating *int) *int {
	if rating == nil {
		return nil
	}
	r := min(MaxRating, max(MinRating, *rating))
	return &r
}
