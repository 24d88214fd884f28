package repositories

import (
	"context"
	"errors"

	"formbox.link/configs/configslog"
	"formbox.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IQuestionRepository is the data-access surface for questions.
type IQuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	FindByID(ctx context.Context, id uint) (*models.Question, error)
	FindByFormID(ctx context.Context, formID uint) ([]models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, question *models.Question) error
}

type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository returns a repository bound to the given connection.
func NewQuestionRepository(db *gorm.DB) IQuestionRepository {
	return &QuestionRepository{db: db}
}

// NewQuestionRepositoryTx binds a repository to an open transaction.
func NewQuestionRepositoryTx(tx *gorm.DB) IQuestionRepository {
	return &QuestionRepository{db: tx}
}

func (r *QuestionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question == nil || question.FormID == 0 {
		return errors.New("question requires a form")
	}
	return r.getDB(ctx).Create(question).Error
}

// FindByID loads a question together with its parent form, which the
// ownership check needs.
func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var question models.Question
	err := r.getDB(ctx).Preload("Form").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("QuestionRepository.FindByID: db error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &question, nil
}

// FindByFormID returns a form's questions in creation order.
func (r *QuestionRepository) FindByFormID(ctx context.Context, formID uint) ([]models.Question, error) {
	if formID == 0 {
		return nil, ErrNotFound
	}
	var questions []models.Question
	err := r.getDB(ctx).Where("form_id = ?", formID).Order("questions.id ASC").Find(&questions).Error
	if err != nil {
		configslog.Log.Error("QuestionRepository.FindByFormID: db error", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) error {
	if question == nil || question.ID == 0 {
		return errors.New("question is not persisted")
	}
	return r.getDB(ctx).Save(question).Error
}

// Delete removes the question and its question answers in one transaction.
func (r *QuestionRepository) Delete(ctx context.Context, question *models.Question) error {
	if question == nil || question.ID == 0 {
		return errors.New("question is not persisted")
	}
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", question.ID).Delete(&models.QuestionAnswer{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Question{}, question.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

var _ IQuestionRepository = (*QuestionRepository)(nil)
