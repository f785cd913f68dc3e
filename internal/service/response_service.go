package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/internal/apperr"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// classifyConcurrency bounds the per-survey lookups of SurveysSortedForUser.
const classifyConcurrency = 4

var tracer = otel.Tracer("github.com/lshigami/Surveyor/internal/service")

// ResponseService handles submissions and everything computed from answers:
// per-survey summaries, per-user views and the answered/not-answered split.
type ResponseService interface {
	// ProcessSubmission validates every item before writing any answer and
	// stores them all in one transaction. It assumes the caller checked that
	// the user has not answered yet.
	ProcessSubmission(ctx context.Context, userUUID uuid.UUID, items []dto.SubmissionItem) error
	SubmitSurvey(ctx context.Context, surveyID uint, req dto.UserSubmissionRequest) error

	QuestionsOfSurvey(ctx context.Context, surveyID uint) ([]dto.QuestionResponse, error)
	AllAnswersForSurvey(ctx context.Context, surveyID uint) ([][]dto.AnswerResponse, error)
	SurveyResultsFullSummary(ctx context.Context, surveyID uint) (*dto.SurveyResult, error)
	SurveyResultsByUser(ctx context.Context, surveyID uint) ([]dto.UserResult, error)

	AnswersOfSurveyFromUser(ctx context.Context, surveyID uint, userUUID uuid.UUID) ([]dto.AnswerResponse, error)
	AnswersFromUser(ctx context.Context, userUUID uuid.UUID) ([]dto.AnswerResponse, error)
	HasAnsweredSurvey(ctx context.Context, userUUID uuid.UUID, surveyID uint) (bool, error)
	HasAnsweredQuestion(ctx context.Context, userUUID uuid.UUID, questionID uint) (bool, error)
	SurveysSortedForUser(ctx context.Context, userUUID uuid.UUID) (*dto.SortedSurveys, error)
	// SurveyForUser returns the survey when the user may still answer it.
	SurveyForUser(ctx context.Context, surveyID uint, userUUID uuid.UUID) (*dto.SurveyResponse, error)
}

type responseService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	responseRepo repository.SurveyResponseRepository
	db           *gorm.DB
}

func NewResponseService(
	surveyRepo repository.SurveyRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	responseRepo repository.SurveyResponseRepository,
	db *gorm.DB,
) ResponseService {
	return &responseService{
		surveyRepo:   surveyRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		responseRepo: responseRepo,
		db:           db,
	}
}

// surveyAnswers is a survey loaded with its questions in storage order and,
// at the same index, the answers of each question.
type surveyAnswers struct {
	survey    *model.Survey
	questions []model.Question
	answers   [][]model.Answer
}

func (sa *surveyAnswers) total() int {
	n := 0
	for _, as := range sa.answers {
		n += len(as)
	}
	return n
}

func unknownSurvey(id uint) *apperr.Error {
	return apperr.InvalidArgument("survey_not_found", "survey %d does not exist", id)
}

func isUnknownSurvey(err error) bool {
	return errors.Is(err, apperr.ErrInvalidArgument) && apperr.CodeOf(err) == "survey_not_found"
}

func (s *responseService) loadSurveyAnswers(ctx context.Context, surveyID uint) (*surveyAnswers, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, storageErr(err, unknownSurvey(surveyID), "find survey %d", surveyID)
	}
	questions, err := s.questionRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, apperr.Internal(err, "list questions of survey %d", surveyID)
	}
	answers := make([][]model.Answer, len(questions))
	for i, q := range questions {
		as, err := s.answerRepo.FindByQuestionID(ctx, q.ID)
		if err != nil {
			return nil, apperr.Internal(err, "list answers of question %d", q.ID)
		}
		answers[i] = as
	}
	return &surveyAnswers{survey: survey, questions: questions, answers: answers}, nil
}

func (s *responseService) ProcessSubmission(ctx context.Context, userUUID uuid.UUID, items []dto.SubmissionItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return processSubmission(ctx, s.questionRepo.WithTx(tx), s.answerRepo.WithTx(tx), 0, userUUID, items)
	})
}

// processSubmission resolves every item before writing. A non-zero surveyID
// restricts the items to questions of that survey.
func processSubmission(
	ctx context.Context,
	questions repository.QuestionRepository,
	answers repository.AnswerRepository,
	surveyID uint,
	userUUID uuid.UUID,
	items []dto.SubmissionItem,
) error {
	pending := make([]model.Answer, 0, len(items))
	resolved := make(map[uint]bool, len(items))
	for _, item := range items {
		if !resolved[item.QuestionID] {
			q, err := questions.FindByID(ctx, item.QuestionID)
			if err != nil {
				return storageErr(err,
					apperr.InvalidArgument("question_not_found", "question %d does not exist", item.QuestionID),
					"find question %d", item.QuestionID)
			}
			if surveyID != 0 && q.SurveyID != surveyID {
				return apperr.InvalidArgument("question_not_in_survey",
					"question %d does not belong to survey %d", item.QuestionID, surveyID)
			}
			resolved[item.QuestionID] = true
		}
		pending = append(pending, model.NewAnswer(item.QuestionID, item.Rating, userUUID))
	}
	if err := answers.CreateBatch(ctx, pending); err != nil {
		return apperr.Internal(err, "store %d answers", len(pending))
	}
	return nil
}

func (s *responseService) SubmitSurvey(ctx context.Context, surveyID uint, req dto.UserSubmissionRequest) (err error) {
	ctx, span := tracer.Start(ctx, "ResponseService.SubmitSurvey")
	span.SetAttributes(
		attribute.Int64("survey.id", int64(surveyID)),
		attribute.Int("submission.items", len(req.Submissions)),
	)
	defer func() {
		if err != nil && errors.Is(err, apperr.ErrInternal) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if req.UserUUID == nil || *req.UserUUID == uuid.Nil {
		return missingUserUUID()
	}
	if len(req.Submissions) == 0 {
		return apperr.InvalidArgument("empty_submission", "submission contains no answers")
	}
	userUUID := *req.UserUUID

	if _, err := s.surveyRepo.FindByID(ctx, surveyID); err != nil {
		return storageErr(err, unknownSurvey(surveyID), "find survey %d", surveyID)
	}
	locked, err := s.responseRepo.Exists(ctx, surveyID, userUUID)
	if err != nil {
		return apperr.Internal(err, "check response to survey %d", surveyID)
	}
	if locked {
		return alreadyAnswered(surveyID)
	}
	// Answers created one by one through the admin API hold no lock row.
	answered, err := s.HasAnsweredSurvey(ctx, userUUID, surveyID)
	if err != nil {
		return err
	}
	if answered {
		return alreadyAnswered(surveyID)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lock := model.SurveyResponse{SurveyID: surveyID, UserUUID: userUUID}
		if err := s.responseRepo.WithTx(tx).Create(ctx, &lock); err != nil {
			if repository.IsUniqueViolation(err) {
				return alreadyAnswered(surveyID)
			}
			return apperr.Internal(err, "record response to survey %d", surveyID)
		}
		return processSubmission(ctx, s.questionRepo.WithTx(tx), s.answerRepo.WithTx(tx), surveyID, userUUID, req.Submissions)
	})
	if err != nil {
		logFailure(err, "Submission rejected", "surveyID", surveyID)
		return err
	}
	log.Info().Uint("surveyID", surveyID).Str("user", userUUID.String()).Int("answers", len(req.Submissions)).Msg("Survey submitted")
	return nil
}

func alreadyAnswered(surveyID uint) *apperr.Error {
	return apperr.AccessDenied("already_answered", "survey %d already answered", surveyID)
}

func (s *responseService) QuestionsOfSurvey(ctx context.Context, surveyID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.surveyRepo.FindByID(ctx, surveyID); err != nil {
		return nil, storageErr(err, unknownSurvey(surveyID), "find survey %d", surveyID)
	}
	questions, err := s.questionRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, apperr.Internal(err, "list questions of survey %d", surveyID)
	}
	return mapSlice[dto.QuestionResponse](questions)
}

func (s *responseService) AllAnswersForSurvey(ctx context.Context, surveyID uint) ([][]dto.AnswerResponse, error) {
	sa, err := s.loadSurveyAnswers(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	out := make([][]dto.AnswerResponse, len(sa.answers))
	for i, as := range sa.answers {
		if out[i], err = mapSlice[dto.AnswerResponse](as); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SurveyResultsFullSummary returns every question with all of its answers. A
// survey nobody answered has no summary and yields a NotFound error.
func (s *responseService) SurveyResultsFullSummary(ctx context.Context, surveyID uint) (*dto.SurveyResult, error) {
	sa, err := s.loadSurveyAnswers(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if sa.total() == 0 {
		return nil, apperr.NotFound("no_results", "survey %d has no answers", surveyID)
	}

	result := &dto.SurveyResult{
		ID:        sa.survey.ID,
		Title:     sa.survey.Title,
		Desc:      sa.survey.Desc,
		Questions: make([]dto.QuestionResult, len(sa.questions)),
	}
	for i, q := range sa.questions {
		answers := make([]dto.AnswerResult, len(sa.answers[i]))
		for j, a := range sa.answers[i] {
			answers[j] = dto.AnswerResult{ID: a.ID, Rating: a.Rating, UserUUID: a.UserUUID}
		}
		result.Questions[i] = dto.QuestionResult{ID: q.ID, Text: q.Text, Answers: answers}
	}
	return result, nil
}

// SurveyResultsByUser groups the answers of a survey per user. Users appear in
// the order they are first met when walking questions, then answers, in
// storage order.
func (s *responseService) SurveyResultsByUser(ctx context.Context, surveyID uint) ([]dto.UserResult, error) {
	sa, err := s.loadSurveyAnswers(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	results := make([]dto.UserResult, 0)
	index := make(map[uuid.UUID]int)
	for i, q := range sa.questions {
		for _, a := range sa.answers[i] {
			pos, seen := index[a.UserUUID]
			if !seen {
				pos = len(results)
				index[a.UserUUID] = pos
				results = append(results, dto.UserResult{UserUUID: a.UserUUID})
			}
			results[pos].UserAnswers = append(results[pos].UserAnswers, dto.Result{
				AnswerID:     a.ID,
				QuestionID:   q.ID,
				QuestionText: q.Text,
				Rating:       a.Rating,
			})
		}
	}
	return results, nil
}

func (s *responseService) AnswersOfSurveyFromUser(ctx context.Context, surveyID uint, userUUID uuid.UUID) ([]dto.AnswerResponse, error) {
	sa, err := s.loadSurveyAnswers(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	var mine []model.Answer
	for _, as := range sa.answers {
		for _, a := range as {
			if a.UserUUID == userUUID {
				mine = append(mine, a)
			}
		}
	}
	return mapSlice[dto.AnswerResponse](mine)
}

// AnswersFromUser scans every survey for the user's answers.
func (s *responseService) AnswersFromUser(ctx context.Context, userUUID uuid.UUID) ([]dto.AnswerResponse, error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "list surveys")
	}
	all := make([]dto.AnswerResponse, 0)
	for _, survey := range surveys {
		answers, err := s.AnswersOfSurveyFromUser(ctx, survey.ID, userUUID)
		if err != nil {
			return nil, err
		}
		all = append(all, answers...)
	}
	return all, nil
}

// HasAnsweredSurvey reports whether the user has at least one answer in the
// survey. Skipped questions (nil rating) count.
func (s *responseService) HasAnsweredSurvey(ctx context.Context, userUUID uuid.UUID, surveyID uint) (bool, error) {
	answers, err := s.AnswersOfSurveyFromUser(ctx, surveyID, userUUID)
	if err != nil {
		return false, err
	}
	return len(answers) > 0, nil
}

func (s *responseService) HasAnsweredQuestion(ctx context.Context, userUUID uuid.UUID, questionID uint) (bool, error) {
	answers, err := s.AnswersFromUser(ctx, userUUID)
	if err != nil {
		return false, err
	}
	for _, a := range answers {
		if a.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

// SurveysSortedForUser splits all surveys into the ones the user answered and
// the rest. Both lists keep ascending id order.
func (s *responseService) SurveysSortedForUser(ctx context.Context, userUUID uuid.UUID) (*dto.SortedSurveys, error) {
	ctx, span := tracer.Start(ctx, "ResponseService.SurveysSortedForUser")
	defer span.End()

	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "list surveys")
	}
	span.SetAttributes(attribute.Int("surveys", len(surveys)))

	answered := make([]bool, len(surveys))
	gone := make([]bool, len(surveys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(classifyConcurrency)
	for i := range surveys {
		g.Go(func() error {
			ok, err := s.HasAnsweredSurvey(gctx, userUUID, surveys[i].ID)
			if isUnknownSurvey(err) {
				// Deleted after the listing.
				gone[i] = true
				return nil
			}
			if err != nil {
				return err
			}
			answered[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		log.Error().Err(err).Str("user", userUUID.String()).Msg("Failed to classify surveys")
		return nil, err
	}

	sorted := &dto.SortedSurveys{
		Answered:    make([]dto.SurveyResponse, 0),
		NotAnswered: make([]dto.SurveyResponse, 0),
	}
	for i := range surveys {
		if gone[i] {
			continue
		}
		resp, err := mapTo[dto.SurveyResponse](&surveys[i])
		if err != nil {
			return nil, err
		}
		if answered[i] {
			sorted.Answered = append(sorted.Answered, resp)
		} else {
			sorted.NotAnswered = append(sorted.NotAnswered, resp)
		}
	}
	return sorted, nil
}

func (s *responseService) SurveyForUser(ctx context.Context, surveyID uint, userUUID uuid.UUID) (*dto.SurveyResponse, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, storageErr(err, surveyNotFound(surveyID), "find survey %d", surveyID)
	}
	answered, err := s.HasAnsweredSurvey(ctx, userUUID, surveyID)
	if err != nil {
		return nil, err
	}
	if answered {
		return nil, alreadyAnswered(surveyID)
	}
	resp, err := mapTo[dto.SurveyResponse](survey)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
