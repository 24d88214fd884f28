package services

import (
	"context"
	"errors"

	"formbox.link/configs/configslog"
	"formbox.link/models"
	"formbox.link/pkg/queryparams"
	"formbox.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnswerServiceError is the error kind handlers translate into HTTP statuses.
type AnswerServiceError string

func (e AnswerServiceError) Error() string { return string(e) }

const (
	ErrAnswerQuestionMismatch AnswerServiceError = "question does not belong to this form"
	ErrAnswerSubmissionFailed AnswerServiceError = "submission could not be stored"
)

// QuestionAnswerInput is the whitelist for one submitted record: only the
// question id and its value ever reach the database, whatever else the client
// sent alongside them.
type QuestionAnswerInput struct {
	QuestionID uint   `json:"question_id"`
	Value      string `json:"value"`
}

// IAnswerService implements anonymous submission and the owner-facing read
// side of it.
type IAnswerService interface {
	SubmitAnswer(ctx context.Context, formID uint, inputs []QuestionAnswerInput) (*models.Answer, error)
	ListAnswersForForm(ctx context.Context, key string, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

type AnswerService struct {
	repo         repositories.IAnswerRepository
	formRepo     repositories.IFormRepository
	questionRepo repositories.IQuestionRepository
	db           *gorm.DB
}

// NewAnswerService wires an answer service onto the given connection.
func NewAnswerService(db *gorm.DB) IAnswerService {
	return &AnswerService{
		repo:         repositories.NewAnswerRepository(db),
		formRepo:     repositories.NewFormRepository(db),
		questionRepo: repositories.NewQuestionRepository(db),
		db:           db,
	}
}

// SubmitAnswer creates one answer row plus one question-answer row per input,
// all inside a single transaction: either the whole submission lands or none
// of it does. Submission carries no ownership check; holding the form id is
// what "filling out the form" means. Every submitted question id must belong
// to the target form.
func (s *AnswerService) SubmitAnswer(ctx context.Context, formID uint, inputs []QuestionAnswerInput) (*models.Answer, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	questions, err := s.questionRepo.FindByFormID(ctx, form.ID)
	if err != nil {
		return nil, err
	}
	formQuestions := make(map[uint]struct{}, len(questions))
	for _, q := range questions {
		formQuestions[q.ID] = struct{}{}
	}
	for _, in := range inputs {
		if _, ok := formQuestions[in.QuestionID]; !ok {
			return nil, ErrAnswerQuestionMismatch
		}
	}

	var created *models.Answer
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answerRepoTx := repositories.NewAnswerRepositoryTx(tx)

		answer := models.Answer{FormID: form.ID}
		if err := answerRepoTx.Create(ctx, &answer); err != nil {
			return err
		}
		for _, in := range inputs {
			qa := models.QuestionAnswer{
				AnswerID:   answer.ID,
				QuestionID: in.QuestionID,
				Value:      in.Value,
			}
			if err := answerRepoTx.CreateQuestionAnswer(ctx, &qa); err != nil {
				return err
			}
			answer.QuestionAnswers = append(answer.QuestionAnswers, qa)
		}
		created = &answer
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("SubmitAnswer transaction failed", zap.Uint("formID", formID), zap.Error(txErr))
		return nil, ErrAnswerSubmissionFailed
	}

	configslog.SLog.Infof("answer submitted: form=%d answer=%d values=%d", form.ID, created.ID, len(inputs))
	return created, nil
}

// ListAnswersForForm returns one page of a form's submissions to its owner.
func (s *AnswerService) ListAnswersForForm(ctx context.Context, key string, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	form, err := s.formRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	// Same concealment rule as GetFormByKey: a disabled form must not be
	// revealed to non-owners, not even as a forbidden listing.
	if !form.IsEnabled && !OwnsForm(form, userID) {
		return nil, ErrFormNotFound
	}
	if !OwnsForm(form, userID) {
		return nil, ErrFormForbidden
	}

	params.Validate()
	answers, totalCount, err := s.repo.FindByFormIDPaginated(ctx, form.ID, params)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []models.Answer{}
	}
	return &queryparams.PaginatedResult{
		Data: answers,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

var _ IAnswerService = (*AnswerService)(nil)
