package repositories

import (
	"context"
	"errors"

	"formbox.link/configs/configslog"
	"formbox.link/models"
	"formbox.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAnswerRepository is the data-access surface for submissions. The
// multi-row submission transaction itself lives in the answer service; this
// layer only does single writes and reads.
type IAnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	CreateQuestionAnswer(ctx context.Context, qa *models.QuestionAnswer) error
	FindByID(ctx context.Context, id uint) (*models.Answer, error)
	FindByFormIDPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.Answer, int64, error)
}

type AnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository returns a repository bound to the given connection.
func NewAnswerRepository(db *gorm.DB) IAnswerRepository {
	return &AnswerRepository{db: db}
}

// NewAnswerRepositoryTx binds a repository to an open transaction.
func NewAnswerRepositoryTx(tx *gorm.DB) IAnswerRepository {
	return &AnswerRepository{db: tx}
}

func (r *AnswerRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *AnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	if answer == nil || answer.FormID == 0 {
		return errors.New("answer requires a form")
	}
	return r.getDB(ctx).Create(answer).Error
}

func (r *AnswerRepository) CreateQuestionAnswer(ctx context.Context, qa *models.QuestionAnswer) error {
	if qa == nil || qa.AnswerID == 0 || qa.QuestionID == 0 {
		return errors.New("question answer requires a question and an answer")
	}
	return r.getDB(ctx).Create(qa).Error
}

// FindByID loads an answer with its question answers in creation order.
func (r *AnswerRepository) FindByID(ctx context.Context, id uint) (*models.Answer, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var answer models.Answer
	err := r.getDB(ctx).
		Preload("QuestionAnswers", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_answers.id ASC")
		}).
		First(&answer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AnswerRepository.FindByID: db error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &answer, nil
}

// FindByFormIDPaginated returns one page of a form's submissions, newest
// last, with question answers preloaded.
func (r *AnswerRepository) FindByFormIDPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.Answer, int64, error) {
	if formID == 0 {
		return nil, 0, ErrNotFound
	}
	db := r.getDB(ctx)

	var totalCount int64
	if err := db.Model(&models.Answer{}).Where("form_id = ?", formID).Count(&totalCount).Error; err != nil {
		configslog.Log.Error("AnswerRepository.Count: db error", zap.Uint("formID", formID), zap.Error(err))
		return nil, 0, err
	}

	var answers []models.Answer
	if totalCount == 0 {
		return answers, 0, nil
	}
	err := db.
		Preload("QuestionAnswers", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_answers.id ASC")
		}).
		Where("form_id = ?", formID).
		Order("answers.id ASC").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&answers).Error
	if err != nil {
		configslog.Log.Error("AnswerRepository.FindByFormIDPaginated: db error", zap.Uint("formID", formID), zap.Error(err))
		return nil, totalCount, err
	}
	return answers, totalCount, nil
}

var _ IAnswerRepository = (*AnswerRepository)(nil)
