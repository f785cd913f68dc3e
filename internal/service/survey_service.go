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

type SurveyService interface {
	CreateSurvey(ctx context.Context, req dto.SurveyRequest) (*dto.SurveyResponse, error)
	GetSurvey(ctx context.Context, id uint) (*dto.SurveyResponse, error)
	GetAllSurveys(ctx context.Context) ([]dto.SurveyResponse, error)
	GetAllSurveysJSON(ctx context.Context) ([]dto.ResponseModel[dto.SurveyResponse], error)
	UpdateSurvey(ctx context.Context, id uint, req dto.SurveyRequest) (*dto.SurveyResponse, error)
	DeleteSurvey(ctx context.Context, id uint) error
}

type surveyService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	responseRepo repository.SurveyResponseRepository
	db           *gorm.DB // For transactions
}

func NewSurveyService(
	surveyRepo repository.SurveyRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	responseRepo repository.SurveyResponseRepository,
	db *gorm.DB,
) SurveyService {
	return &surveyService{
		surveyRepo:   surveyRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		responseRepo: responseRepo,
		db:           db,
	}
}

func surveyNotFound(id uint) *apperr.Error {
	return apperr.NotFound("survey_not_found", "survey %d not found", id)
}

func (s *surveyService) CreateSurvey(ctx context.Context, req dto.SurveyRequest) (*dto.SurveyResponse, error) {
	survey := model.Survey{
		Title: strings.TrimSpace(req.Title),
		Desc:  req.Desc,
	}
	if err := s.surveyRepo.Create(ctx, &survey); err != nil {
		log.Error().Err(err).Msg("Failed to create survey")
		return nil, apperr.Internal(err, "create survey")
	}
	log.Info().Uint("surveyID", survey.ID).Str("uuid", survey.UUID.String()).Msg("Survey created")

	resp, err := mapTo[dto.SurveyResponse](&survey)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *surveyService) GetSurvey(ctx context.Context, id uint) (*dto.SurveyResponse, error) {
	survey, err := s.surveyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, surveyNotFound(id), "find survey %d", id)
	}
	resp, err := mapTo[dto.SurveyResponse](survey)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *surveyService) GetAllSurveys(ctx context.Context) ([]dto.SurveyResponse, error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list surveys")
		return nil, apperr.Internal(err, "list surveys")
	}
	return mapSlice[dto.SurveyResponse](surveys)
}

func (s *surveyService) GetAllSurveysJSON(ctx context.Context) ([]dto.ResponseModel[dto.SurveyResponse], error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list surveys")
		return nil, apperr.Internal(err, "list surveys")
	}
	return wrapSurveys(surveys)
}

// UpdateSurvey rewrites title and description. Questions are managed through
// QuestionService.
func (s *surveyService) UpdateSurvey(ctx context.Context, id uint, req dto.SurveyRequest) (*dto.SurveyResponse, error) {
	survey, err := s.surveyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, surveyNotFound(id), "find survey %d", id)
	}
	survey.Title = strings.TrimSpace(req.Title)
	survey.Desc = req.Desc
	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		log.Error().Err(err).Uint("surveyID", id).Msg("Failed to update survey")
		return nil, apperr.Internal(err, "update survey %d", id)
	}
	resp, err := mapTo[dto.SurveyResponse](survey)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSurvey removes the survey together with its submission records,
// the answers of its questions and the questions themselves, in one
// transaction.
func (s *surveyService) DeleteSurvey(ctx context.Context, id uint) error {
	var deleted int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		surveys := s.surveyRepo.WithTx(tx)
		questions := s.questionRepo.WithTx(tx)

		if _, err := surveys.FindByID(ctx, id); err != nil {
			return storageErr(err, surveyNotFound(id), "find survey %d", id)
		}
		qs, err := questions.FindBySurveyID(ctx, id)
		if err != nil {
			return apperr.Internal(err, "list questions of survey %d", id)
		}
		deleted = len(qs)
		if err := s.answerRepo.WithTx(tx).DeleteByQuestionIDs(ctx, questionIDs(qs)); err != nil {
			return apperr.Internal(err, "delete answers of survey %d", id)
		}
		if err := questions.DeleteBySurveyID(ctx, id); err != nil {
			return apperr.Internal(err, "delete questions of survey %d", id)
		}
		if err := s.responseRepo.WithTx(tx).DeleteBySurveyID(ctx, id); err != nil {
			return apperr.Internal(err, "delete responses of survey %d", id)
		}
		if err := surveys.Delete(ctx, id); err != nil {
			return apperr.Internal(err, "delete survey %d", id)
		}
		return nil
	})
	if err != nil {
		logFailure(err, "Failed to delete survey", "surveyID", id)
		return err
	}
	log.Info().Uint("surveyID", id).Int("questions", deleted).Msg("Survey deleted")
	return nil
}

func questionIDs(questions []model.Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
