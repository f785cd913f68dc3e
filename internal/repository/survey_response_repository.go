package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

type SurveyResponseRepository interface {
	WithTx(tx *gorm.DB) SurveyResponseRepository
	// Create fails with an error satisfying IsUniqueViolation when the user
	// already holds a response for the survey.
	Create(ctx context.Context, response *model.SurveyResponse) error
	Exists(ctx context.Context, surveyID uint, userUUID uuid.UUID) (bool, error)
	DeleteBySurveyID(ctx context.Context, surveyID uint) error
	PruneStale(ctx context.Context, surveyID uint) error
}

type surveyResponseRepository struct {
	db *gorm.DB
}

func NewSurveyResponseRepository(db *gorm.DB) SurveyResponseRepository {
	return &surveyResponseRepository{db: db}
}

func (r *surveyResponseRepository) WithTx(tx *gorm.DB) SurveyResponseRepository {
	return &surveyResponseRepository{db: tx}
}

func (r *surveyResponseRepository) Create(ctx context.Context, response *model.SurveyResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *surveyResponseRepository) Exists(ctx context.Context, surveyID uint, userUUID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SurveyResponse{}).
		Where("survey_id = ? AND user_uuid = ?", surveyID, userUUID).
		Count(&count).Error
	return count > 0, err
}

func (r *surveyResponseRepository) DeleteBySurveyID(ctx context.Context, surveyID uint) error {
	return r.db.WithContext(ctx).Where("survey_id = ?", surveyID).Delete(&model.SurveyResponse{}).Error
}

// PruneStale drops the responses of a survey whose user no longer has any
// answer left in it, so that the user can submit again after their answers
// were deleted.
func (r *surveyResponseRepository) PruneStale(ctx context.Context, surveyID uint) error {
	return r.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Where(`NOT EXISTS (
			SELECT 1 FROM answers
			JOIN questions ON questions.id = answers.question_id
			WHERE questions.survey_id = survey_responses.survey_id
			AND answers.user_uuid = survey_responses.user_uuid)`).
		Delete(&model.SurveyResponse{}).Error
}
