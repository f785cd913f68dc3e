package dto

import "github.com/google/uuid"

type SurveyRequest struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// QuestionRequest carries only the text; the owning survey comes from the path.
type QuestionRequest struct {
	Text string `json:"text"`
}

// AnswerRequest is used both to create an answer and to edit its rating.
// On edit the UUID must equal the stored one.
type AnswerRequest struct {
	Rating   *int       `json:"rating"`
	UserUUID *uuid.UUID `json:"userUuid"`
}

// SubmissionItem is one (question, rating) pair of a submission. A nil rating
// marks a skipped question.
type SubmissionItem struct {
	QuestionID uint `json:"questionId" binding:"required"`
	Rating     *int `json:"rating"`
}

type UserSubmissionRequest struct {
	UserUUID    *uuid.UUID       `json:"userUuid"`
	Submissions []SubmissionItem `json:"submissions" binding:"dive"`
}
