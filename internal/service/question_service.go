package service

import (
	"context"
	"strings"

	"github.com/lshigami/Surveyor/internal/apperr"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, surveyID uint, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error)
	GetAllQuestions(ctx context.Context) ([]dto.QuestionResponse, error)
	GetAllQuestionsJSON(ctx context.Context) ([]dto.ResponseModel[dto.QuestionResponse], error)
	UpdateQuestion(ctx context.Context, id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) error
	DeleteQuestionsOfSurvey(ctx context.Context, surveyID uint) error
}

type questionService struct {
	repo         repository.QuestionRepository
	surveyRepo   repository.SurveyRepository
	answerRepo   repository.AnswerRepository
	responseRepo repository.SurveyResponseRepository
	db           *gorm.DB
}

func NewQuestionService(
	repo repository.QuestionRepository,
	surveyRepo repository.SurveyRepository,
	answerRepo repository.AnswerRepository,
	responseRepo repository.SurveyResponseRepository,
	db *gorm.DB,
) QuestionService {
	return &questionService{
		repo:         repo,
		surveyRepo:   surveyRepo,
		answerRepo:   answerRepo,
		responseRepo: responseRepo,
		db:           db,
	}
}

func questionNotFound(id uint) *apperr.Error {
	return apperr.NotFound("question_not_found", "question %d not found", id)
}

func (s *questionService) CreateQuestion(ctx context.Context, surveyID uint, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperr.InvalidArgument("missing_text", "question text is required")
	}
	if _, err := s.surveyRepo.FindByID(ctx, surveyID); err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("Question created against unknown survey")
		return nil, storageErr(err, surveyNotFound(surveyID), "find survey %d", surveyID)
	}

	question := model.Question{SurveyID: surveyID, Text: text}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to create question")
		return nil, apperr.Internal(err, "create question")
	}
	resp, err := mapTo[dto.QuestionResponse](&question)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, questionNotFound(id), "find question %d", id)
	}
	resp, err := mapTo[dto.QuestionResponse](question)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *questionService) GetAllQuestions(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, apperr.Internal(err, "list questions")
	}
	return mapSlice[dto.QuestionResponse](questions)
}

func (s *questionService) GetAllQuestionsJSON(ctx context.Context) ([]dto.ResponseModel[dto.QuestionResponse], error) {
	questions, err := s.GetAllQuestions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResponseModel[dto.QuestionResponse], len(questions))
	for i, q := range questions {
		out[i] = dto.ResponseModel[dto.QuestionResponse]{ID: q.ID, Data: q}
	}
	return out, nil
}

// UpdateQuestion rewrites the text. The survey a question belongs to never
// changes.
func (s *questionService) UpdateQuestion(ctx context.Context, id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperr.InvalidArgument("missing_text", "question text is required")
	}
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, questionNotFound(id), "find question %d", id)
	}
	question.Text = text
	if err := s.repo.Update(ctx, question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, apperr.Internal(err, "update question %d", id)
	}
	resp, err := mapTo[dto.QuestionResponse](question)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteQuestion removes the question and its answers. Users left without any
// answer in the survey lose their submission record and may submit again.
func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions := s.repo.WithTx(tx)
		question, err := questions.FindByID(ctx, id)
		if err != nil {
			return storageErr(err, questionNotFound(id), "find question %d", id)
		}
		if err := s.answerRepo.WithTx(tx).DeleteByQuestionID(ctx, id); err != nil {
			return apperr.Internal(err, "delete answers of question %d", id)
		}
		if err := questions.Delete(ctx, id); err != nil {
			return apperr.Internal(err, "delete question %d", id)
		}
		if err := s.responseRepo.WithTx(tx).PruneStale(ctx, question.SurveyID); err != nil {
			return apperr.Internal(err, "prune responses of survey %d", question.SurveyID)
		}
		return nil
	})
	if err != nil {
		logFailure(err, "Failed to delete question", "questionID", id)
	}
	return err
}

func (s *questionService) DeleteQuestionsOfSurvey(ctx context.Context, surveyID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.surveyRepo.WithTx(tx).FindByID(ctx, surveyID); err != nil {
			return storageErr(err, surveyNotFound(surveyID), "find survey %d", surveyID)
		}
		questions := s.repo.WithTx(tx)
		qs, err := questions.FindBySurveyID(ctx, surveyID)
		if err != nil {
			return apperr.Internal(err, "list questions of survey %d", surveyID)
		}
		if err := s.answerRepo.WithTx(tx).DeleteByQuestionIDs(ctx, questionIDs(qs)); err != nil {
			return apperr.Internal(err, "delete answers of survey %d", surveyID)
		}
		if err := questions.DeleteBySurveyID(ctx, surveyID); err != nil {
			return apperr.Internal(err, "delete questions of survey %d", surveyID)
		}
		// No answers remain, so every submission record is stale.
		if err := s.responseRepo.WithTx(tx).DeleteBySurveyID(ctx, surveyID); err != nil {
			return apperr.Internal(err, "delete responses of survey %d", surveyID)
		}
		return nil
	})
	if err != nil {
		logFailure(err, "Failed to delete questions of survey", "surveyID", surveyID)
	}
	return err
}
