package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/internal/apperr"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AnswerService interface {
	CreateAnswer(ctx context.Context, questionID uint, req dto.AnswerRequest) (*dto.AnswerResponse, error)
	GetAnswer(ctx context.Context, id uint) (*dto.AnswerResponse, error)
	GetAllAnswers(ctx context.Context) ([]dto.AnswerResponse, error)
	GetAnswersOfQuestion(ctx context.Context, questionID uint) ([]dto.AnswerResponse, error)
	UpdateAnswer(ctx context.Context, id uint, req dto.AnswerRequest) (*dto.AnswerResponse, error)
	DeleteAnswer(ctx context.Context, id uint) error
	DeleteAnswersOfQuestion(ctx context.Context, questionID uint) error
}

type answerService struct {
	repo         repository.AnswerRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.SurveyResponseRepository
	db           *gorm.DB
}

func NewAnswerService(
	repo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.SurveyResponseRepository,
	db *gorm.DB,
) AnswerService {
	return &answerService{repo: repo, questionRepo: questionRepo, responseRepo: responseRepo, db: db}
}

func answerNotFound(id uint) *apperr.Error {
	return apperr.NotFound("answer_not_found", "answer %d not found", id)
}

func missingUserUUID() *apperr.Error {
	return apperr.InvalidArgument("missing_user_uuid", "user uuid is required")
}

func (s *answerService) CreateAnswer(ctx context.Context, questionID uint, req dto.AnswerRequest) (*dto.AnswerResponse, error) {
	if req.UserUUID == nil || *req.UserUUID == uuid.Nil {
		return nil, missingUserUUID()
	}
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		return nil, storageErr(err, questionNotFound(questionID), "find question %d", questionID)
	}

	answer := model.NewAnswer(questionID, req.Rating, *req.UserUUID)
	if err := s.repo.Create(ctx, &answer); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create answer")
		return nil, apperr.Internal(err, "create answer")
	}
	resp, err := mapTo[dto.AnswerResponse](&answer)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *answerService) GetAnswer(ctx context.Context, id uint) (*dto.AnswerResponse, error) {
	answer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, answerNotFound(id), "find answer %d", id)
	}
	resp, err := mapTo[dto.AnswerResponse](answer)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *answerService) GetAllAnswers(ctx context.Context) ([]dto.AnswerResponse, error) {
	answers, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list answers")
		return nil, apperr.Internal(err, "list answers")
	}
	return mapSlice[dto.AnswerResponse](answers)
}

func (s *answerService) GetAnswersOfQuestion(ctx context.Context, questionID uint) ([]dto.AnswerResponse, error) {
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		return nil, storageErr(err, questionNotFound(questionID), "find question %d", questionID)
	}
	answers, err := s.repo.FindByQuestionID(ctx, questionID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to list answers of question")
		return nil, apperr.Internal(err, "list answers of question %d", questionID)
	}
	return mapSlice[dto.AnswerResponse](answers)
}

// UpdateAnswer changes the rating of an answer. The supplied user UUID must
// be the one the answer was created with; otherwise the row is left as is.
func (s *answerService) UpdateAnswer(ctx context.Context, id uint, req dto.AnswerRequest) (*dto.AnswerResponse, error) {
	answer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, answerNotFound(id), "find answer %d", id)
	}
	if req.UserUUID == nil || *req.UserUUID != answer.UserUUID {
		log.Warn().Uint("answerID", id).Msg("Rejected answer edit with foreign user uuid")
		return nil, apperr.AccessDenied("uuid_mismatch", "answer %d belongs to another user", id)
	}

	answer.Rating = model.ClampRating(req.Rating)
	if err := s.repo.Update(ctx, answer); err != nil {
		log.Error().Err(err).Uint("answerID", id).Msg("Failed to update answer")
		return nil, apperr.Internal(err, "update answer %d", id)
	}
	resp, err := mapTo[dto.AnswerResponse](answer)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *answerService) DeleteAnswer(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answers := s.repo.WithTx(tx)
		answer, err := answers.FindByID(ctx, id)
		if err != nil {
			return storageErr(err, answerNotFound(id), "find answer %d", id)
		}
		question, err := s.questionRepo.WithTx(tx).FindByID(ctx, answer.QuestionID)
		if err != nil {
			return apperr.Internal(err, "find question %d of answer %d", answer.QuestionID, id)
		}
		if err := answers.Delete(ctx, id); err != nil {
			return apperr.Internal(err, "delete answer %d", id)
		}
		if err := s.responseRepo.WithTx(tx).PruneStale(ctx, question.SurveyID); err != nil {
			return apperr.Internal(err, "prune responses of survey %d", question.SurveyID)
		}
		return nil
	})
	if err != nil {
		logFailure(err, "Failed to delete answer", "answerID", id)
	}
	return err
}

func (s *answerService) DeleteAnswersOfQuestion(ctx context.Context, questionID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question, err := s.questionRepo.WithTx(tx).FindByID(ctx, questionID)
		if err != nil {
			return storageErr(err, questionNotFound(questionID), "find question %d", questionID)
		}
		if err := s.repo.WithTx(tx).DeleteByQuestionID(ctx, questionID); err != nil {
			return apperr.Internal(err, "delete answers of question %d", questionID)
		}
		if err := s.responseRepo.WithTx(tx).PruneStale(ctx, question.SurveyID); err != nil {
			return apperr.Internal(err, "prune responses of survey %d", question.SurveyID)
		}
		return nil
	})
	if err != nil {
		logFailure(err, "Failed to delete answers of question", "questionID", questionID)
	}
	return err
}
