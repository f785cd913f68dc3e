package repository

import (
	"context"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	WithTx(tx *gorm.DB) SurveyRepository
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, id uint) (*model.Survey, error)
	FindAll(ctx context.Context) ([]model.Survey, error)
	Update(ctx context.Context, survey *model.Survey) error
	Delete(ctx context.Context, id uint) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) WithTx(tx *gorm.DB) SurveyRepository {
	return &surveyRepository{db: tx}
}

func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *surveyRepository) FindByID(ctx context.Context, id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.WithContext(ctx).First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindAll returns every survey in ascending id order; the classifier relies on it.
func (r *surveyRepository) FindAll(ctx context.Context) ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepository) Update(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Model(survey).Select("Title", "Desc").Updates(survey).Error
}

// Delete removes only the survey row. Children are removed by SurveyService first.
func (r *surveyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Survey{}, id).Error
}
