package model

import (
	"time"

	"github.com/google/uuid"
)

// SurveyResponse records that a user submitted a survey. The unique index on
// (survey_id, user_uuid) is what rejects a second concurrent submission.
type SurveyResponse struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	SurveyID    uint      `json:"survey_id" gorm:"not null;uniqueIndex:idx_survey_responses_survey_user"`
	UserUUID    uuid.UUID `json:"user_uuid" gorm:"type:uuid;not null;uniqueIndex:idx_survey_responses_survey_user"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}
