package service

import (
	"testing"

	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/lshigami/Surveyor/internal/testutil"
	"gorm.io/gorm"
)

// services bundles every service over one fresh test database.
type services struct {
	db        *gorm.DB
	surveys   SurveyService
	questions QuestionService
	answers   AnswerService
	responses ResponseService
}

func newServices(t *testing.T) *services {
	t.Helper()
	db := testutil.DB(t)
	surveyRepo := repository.NewSurveyRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	responseRepo := repository.NewSurveyResponseRepository(db)
	return &services{
		db:        db,
		surveys:   NewSurveyService(surveyRepo, questionRepo, answerRepo, responseRepo, db),
		questions: NewQuestionService(questionRepo, surveyRepo, answerRepo, responseRepo, db),
		answers:   NewAnswerService(answerRepo, questionRepo, responseRepo, db),
		responses: NewResponseService(surveyRepo, questionRepo, answerRepo, responseRepo, db),
	}
}
