package repository

import (
	"context"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	Create(ctx context.Context, answer *model.Answer) error
	CreateBatch(ctx context.Context, answers []model.Answer) error
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	FindAll(ctx context.Context) ([]model.Answer, error)
	FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error)
	Update(ctx context.Context, answer *model.Answer) error
	Delete(ctx context.Context, id uint) error
	DeleteByQuestionID(ctx context.Context, questionID uint) error
	DeleteByQuestionIDs(ctx context.Context, questionIDs []uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Omit("Question").Create(answer).Error
}

// CreateBatch inserts answers in one statement. IDs are written back into the slice.
func (r *answerRepository) CreateBatch(ctx context.Context, answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Question").Create(&answers).Error
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindAll(ctx context.Context) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// FindByQuestionID returns answers in storage (insertion) order.
func (r *answerRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// Update writes the rating and user UUID. The question link is never repointed.
func (r *answerRepository) Update(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Model(answer).Select("Rating", "UserUUID").Updates(answer).Error
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Answer{}, id).Error
}

func (r *answerRepository) DeleteByQuestionID(ctx context.Context, questionID uint) error {
	return r.db.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.Answer{}).Error
}

func (r *answerRepository) DeleteByQuestionIDs(ctx context.Context, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("question_id IN ?", questionIDs).Delete(&model.Answer{}).Error
}
