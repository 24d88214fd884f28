package repositories

import (
	"context"
	"errors"

	"formbox.link/configs/configslog"
	"formbox.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFormRepository is the data-access surface for forms. Delete removes the
// whole aggregate: questions, answers and question answers go with the form.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	FindByKey(ctx context.Context, key string) (*models.Form, error)
	FindAll(ctx context.Context) ([]models.Form, error)
	Update(ctx context.Context, form *models.Form) error
	Delete(ctx context.Context, form *models.Form) error
}

type FormRepository struct {
	db *gorm.DB
}

// NewFormRepository returns a repository bound to the given connection.
func NewFormRepository(db *gorm.DB) IFormRepository {
	return &FormRepository{db: db}
}

// NewFormRepositoryTx binds a repository to an open transaction.
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	return &FormRepository{db: tx}
}

func (r *FormRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	if form == nil || form.UserID == 0 {
		return errors.New("form requires an owner")
	}
	return r.getDB(ctx).Create(form).Error
}

func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var form models.Form
	err := r.getDB(ctx).First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByID: db error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindByKey resolves a form by its friendly key with its questions preloaded
// in creation order.
func (r *FormRepository) FindByKey(ctx context.Context, key string) (*models.Form, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var form models.Form
	err := r.getDB(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Where("key = ?", key).
		First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByKey: db error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindAll returns every form in insertion order.
func (r *FormRepository) FindAll(ctx context.Context) ([]models.Form, error) {
	var forms []models.Form
	err := r.getDB(ctx).Order("forms.id ASC").Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.FindAll: db error", zap.Error(err))
		return nil, err
	}
	return forms, nil
}

func (r *FormRepository) Update(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("form is not persisted")
	}
	return r.getDB(ctx).Save(form).Error
}

// Delete removes the form and all descendant rows in one transaction. The
// children are deleted explicitly rather than relying on database-level
// cascades, so the contract holds on every backend the tests run against.
func (r *FormRepository) Delete(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("form is not persisted")
	}
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&models.Question{}).Select("id").Where("form_id = ?", form.ID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.QuestionAnswer{}).Error; err != nil {
			return err
		}
		answerIDs := tx.Model(&models.Answer{}).Select("id").Where("form_id = ?", form.ID)
		if err := tx.Where("answer_id IN (?)", answerIDs).Delete(&models.QuestionAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", form.ID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", form.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Form{}, form.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

var _ IFormRepository = (*FormRepository)(nil)
