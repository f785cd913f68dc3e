package dto

import "github.com/google/uuid"

// SurveyResult is the full summary of a survey: every question with all of
// its answers.
type SurveyResult struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Desc      string           `json:"desc"`
	Questions []QuestionResult `json:"questions"`
}

type QuestionResult struct {
	ID      uint           `json:"id"`
	Text    string         `json:"text"`
	Answers []AnswerResult `json:"answers"`
}

type AnswerResult struct {
	ID       uint      `json:"id"`
	Rating   *int      `json:"rating"`
	UserUUID uuid.UUID `json:"userUuid"`
}

// UserResult groups one user's answers to a survey.
type UserResult struct {
	UserUUID    uuid.UUID `json:"userUuid"`
	UserAnswers []Result  `json:"userAnswers"`
}

type Result struct {
	AnswerID     uint   `json:"idAnswer"`
	QuestionID   uint   `json:"idQuestion"`
	QuestionText string `json:"textQuestion"`
	Rating       *int   `json:"answerRating"`
}

// SurveyInsight is a generated narrative over a survey's full summary.
type SurveyInsight struct {
	SurveyID uint   `json:"surveyId"`
	Model    string `json:"model"`
	Summary  string `json:"summary"`
}
