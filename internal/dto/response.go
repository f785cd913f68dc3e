package dto

import (
	"time"

	"github.com/google/uuid"
)

type SurveyResponse struct {
	ID        uint      `json:"id"`
	UUID      uuid.UUID `json:"uuid"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type QuestionResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	SurveyID  uint      `json:"surveyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AnswerResponse struct {
	ID         uint      `json:"id"`
	Rating     *int      `json:"rating"`
	UserUUID   uuid.UUID `json:"userUuid"`
	QuestionID uint      `json:"questionId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ResponseModel wraps a record with its id, as served by the /json listings.
type ResponseModel[T any] struct {
	ID   uint `json:"id"`
	Data T    `json:"data"`
}

type SortedSurveys struct {
	Answered    []SurveyResponse `json:"answered"`
	NotAnswered []SurveyResponse `json:"notAnswered"`
}

type AnsweredResponse struct {
	Answered bool `json:"answered"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}
