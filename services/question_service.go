package services

import (
	"context"
	"errors"

	"formbox.link/configs/configslog"
	"formbox.link/models"
	"formbox.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuestionServiceError is the error kind handlers translate into HTTP statuses.
type QuestionServiceError string

func (e QuestionServiceError) Error() string { return string(e) }

const (
	ErrQuestionNotFound      QuestionServiceError = "question not found"
	ErrQuestionForbidden     QuestionServiceError = "you do not own this question's form"
	ErrQuestionTitleRequired QuestionServiceError = "question title is required"
	ErrQuestionKindInvalid   QuestionServiceError = "question kind is invalid"
)

// QuestionInput carries the writable question fields.
type QuestionInput struct {
	Title string
	Kind  models.QuestionKind
}

// IQuestionService implements the question lifecycle. Every mutation is gated
// on ownership of the parent form.
type IQuestionService interface {
	CreateQuestion(ctx context.Context, userID uint, formID uint, input QuestionInput) (*models.Question, error)
	UpdateQuestion(ctx context.Context, id uint, userID uint, input QuestionInput) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id uint, userID uint) error
}

type QuestionService struct {
	repo     repositories.IQuestionRepository
	formRepo repositories.IFormRepository
	db       *gorm.DB
}

// NewQuestionService wires a question service onto the given connection.
func NewQuestionService(db *gorm.DB) IQuestionService {
	return &QuestionService{
		repo:     repositories.NewQuestionRepository(db),
		formRepo: repositories.NewFormRepository(db),
		db:       db,
	}
}

// ValidateQuestionInput checks the required fields shared by create and update.
func ValidateQuestionInput(input QuestionInput) error {
	if input.Title == "" {
		return ErrQuestionTitleRequired
	}
	if !input.Kind.Valid() {
		return ErrQuestionKindInvalid
	}
	return nil
}

// CreateQuestion resolves the target form first: an unresolvable form is
// not-found regardless of how broken the question payload is.
func (s *QuestionService) CreateQuestion(ctx context.Context, userID uint, formID uint, input QuestionInput) (*models.Question, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if !OwnsForm(form, userID) {
		return nil, ErrQuestionForbidden
	}
	if err := ValidateQuestionInput(input); err != nil {
		return nil, err
	}

	question := models.Question{
		FormID: form.ID,
		Title:  input.Title,
		Kind:   input.Kind,
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		configslog.Log.Error("CreateQuestion failed", zap.Uint("formID", formID), zap.Error(err))
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint, userID uint, input QuestionInput) (*models.Question, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if !OwnsForm(&question.Form, userID) {
		return nil, ErrQuestionForbidden
	}
	if err := ValidateQuestionInput(input); err != nil {
		return nil, err
	}

	question.Title = input.Title
	question.Kind = input.Kind
	if err := s.repo.Update(ctx, question); err != nil {
		configslog.Log.Error("UpdateQuestion failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint, userID uint) error {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	if !OwnsForm(&question.Form, userID) {
		return ErrQuestionForbidden
	}
	if err := s.repo.Delete(ctx, question); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		configslog.Log.Error("DeleteQuestion failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

var _ IQuestionService = (*QuestionService)(nil)
