package services

import (
	"context"
	"errors"

	"formbox.link/configs/configslog"
	"formbox.link/models"
	"formbox.link/pkg/linkkey"
	"formbox.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormServiceError is the error kind handlers translate into HTTP statuses.
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound      FormServiceError = "form not found"
	ErrFormForbidden     FormServiceError = "you do not own this form"
	ErrFormTitleRequired FormServiceError = "form title is required"
	ErrFormInvalidInput  FormServiceError = "invalid form data"
	ErrFormKeyExhausted  FormServiceError = "could not allocate a form key"
)

// FormInput carries the writable form fields. Key and owner are never
// client-assignable.
type FormInput struct {
	Title       string
	Description string
	IsEnabled   *bool
}

// IFormService implements the form lifecycle and the ownership policy around
// it. A disabled form is concealed (not found) from everyone but its owner;
// an existing form mutated by a non-owner is refused (forbidden).
type IFormService interface {
	CreateForm(ctx context.Context, userID uint, input FormInput) (*models.Form, error)
	ListForms(ctx context.Context) ([]models.Form, error)
	GetFormByKey(ctx context.Context, key string, requestingUserID uint) (*models.Form, error)
	UpdateForm(ctx context.Context, key string, userID uint, input FormInput) (*models.Form, error)
	DeleteForm(ctx context.Context, key string, userID uint) error
}

type FormService struct {
	repo repositories.IFormRepository
	db   *gorm.DB
}

// NewFormService wires a form service onto the given connection.
func NewFormService(db *gorm.DB) IFormService {
	return &FormService{
		repo: repositories.NewFormRepository(db),
		db:   db,
	}
}

// ValidateFormInput checks the required fields shared by create and update.
func ValidateFormInput(input FormInput) error {
	if input.Title == "" {
		return ErrFormTitleRequired
	}
	return nil
}

// OwnsForm is the ownership predicate: the form's owner is the only
// principal allowed to mutate it or its questions.
func OwnsForm(form *models.Form, userID uint) bool {
	return form != nil && userID != 0 && form.UserID == userID
}

func (s *FormService) CreateForm(ctx context.Context, userID uint, input FormInput) (*models.Form, error) {
	if userID == 0 {
		return nil, ErrFormInvalidInput
	}
	if err := ValidateFormInput(input); err != nil {
		return nil, err
	}

	key, err := s.allocateKey(ctx)
	if err != nil {
		return nil, err
	}

	enabled := true
	if input.IsEnabled != nil {
		enabled = *input.IsEnabled
	}
	form := models.Form{
		UserID:      userID,
		Key:         key,
		Title:       input.Title,
		Description: input.Description,
		IsEnabled:   enabled,
	}
	if err := s.repo.Create(ctx, &form); err != nil {
		configslog.Log.Error("CreateForm failed", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("form created: id=%d key=%s owner=%d", form.ID, form.Key, userID)
	return &form, nil
}

// allocateKey draws random keys until one is free. The unique index on
// forms.key closes the remaining race window.
func (s *FormService) allocateKey(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		key, err := linkkey.Generate()
		if err != nil {
			return "", err
		}
		_, err = s.repo.FindByKey(ctx, key)
		if errors.Is(err, repositories.ErrNotFound) {
			return key, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrFormKeyExhausted
}

func (s *FormService) ListForms(ctx context.Context) ([]models.Form, error) {
	forms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range forms {
		if forms[i].Questions == nil {
			forms[i].Questions = []models.Question{}
		}
	}
	return forms, nil
}

// GetFormByKey resolves a form for a reader. Disabled forms exist only for
// their owner; everyone else gets not-found, never forbidden, so that the
// form's existence is not revealed.
func (s *FormService) GetFormByKey(ctx context.Context, key string, requestingUserID uint) (*models.Form, error) {
	form, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if !form.IsEnabled && !OwnsForm(form, requestingUserID) {
		return nil, ErrFormNotFound
	}
	if form.Questions == nil {
		// Clients always get a questions array, even before any exist.
		form.Questions = []models.Question{}
	}
	return form, nil
}

func (s *FormService) UpdateForm(ctx context.Context, key string, userID uint, input FormInput) (*models.Form, error) {
	form, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if !OwnsForm(form, userID) {
		return nil, ErrFormForbidden
	}
	if err := ValidateFormInput(input); err != nil {
		return nil, err
	}

	form.Title = input.Title
	form.Description = input.Description
	if input.IsEnabled != nil {
		form.IsEnabled = *input.IsEnabled
	}
	if err := s.repo.Update(ctx, form); err != nil {
		configslog.Log.Error("UpdateForm failed", zap.Uint("id", form.ID), zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return form, nil
}

// DeleteForm cascades: the form's questions, answers and question answers are
// removed with it.
func (s *FormService) DeleteForm(ctx context.Context, key string, userID uint) error {
	form, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFormNotFound
		}
		return err
	}
	if !OwnsForm(form, userID) {
		return ErrFormForbidden
	}
	if err := s.repo.Delete(ctx, form); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFormNotFound
		}
		configslog.Log.Error("DeleteForm failed", zap.Uint("id", form.ID), zap.Uint("userID", userID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("form deleted: id=%d key=%s by=%d", form.ID, form.Key, userID)
	return nil
}

var _ IFormService = (*FormService)(nil)
