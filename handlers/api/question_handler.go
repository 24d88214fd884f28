package handlers

import (
	"formbox.link/middlewares"
	"formbox.link/models"
	"formbox.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type questionPayload struct {
	Title string              `json:"title" validate:"required,max=255"`
	Kind  models.QuestionKind `json:"kind" validate:"required,oneof=short_text long_text integer boolean"`
}

type createQuestionRequest struct {
	Question *questionPayload `json:"question"`
	FormID   uint             `json:"form_id"`
}

type updateQuestionRequest struct {
	Question *questionPayload `json:"question"`
}

// QuestionHandler serves the authenticated question CRUD endpoints. All of
// them are gated on ownership of the parent form.
type QuestionHandler struct {
	service services.IQuestionService
}

// NewQuestionHandler wires a question handler onto the given connection.
func NewQuestionHandler(db *gorm.DB) *QuestionHandler {
	return &QuestionHandler{service: services.NewQuestionService(db)}
}

// CreateQuestion persists a question under the form named by form_id. The
// form is resolved before the payload is judged: a bad form id is 404 even
// when the question fields are broken too.
// POST /api/v1/questions
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req createQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Required parameter missing: question")
	}

	input := services.QuestionInput{}
	if req.Question != nil {
		input.Title = req.Question.Title
		input.Kind = req.Question.Kind
	}
	question, err := h.service.CreateQuestion(c.UserContext(), middlewares.CurrentUserID(c), req.FormID, input)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(question)
}

// UpdateQuestion applies field updates to a question of an owned form.
// PUT /api/v1/questions/:id
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": services.ErrQuestionNotFound.Error()})
	}

	var req updateQuestionRequest
	if err := c.BodyParser(&req); err != nil || req.Question == nil {
		return badRequest(c, "Required parameter missing: question")
	}

	input := services.QuestionInput{Title: req.Question.Title, Kind: req.Question.Kind}
	question, err := h.service.UpdateQuestion(c.UserContext(), uint(id), middlewares.CurrentUserID(c), input)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(question)
}

// DeleteQuestion removes a question of an owned form together with its
// question answers.
// DELETE /api/v1/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": services.ErrQuestionNotFound.Error()})
	}
	if err := h.service.DeleteQuestion(c.UserContext(), uint(id), middlewares.CurrentUserID(c)); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
