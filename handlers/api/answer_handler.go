package handlers

import (
	"formbox.link/middlewares"
	"formbox.link/pkg/queryparams"
	"formbox.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// submitAnswerRequest is the anonymous submission body. Each entry in
// QuestionsAnswers is decoded through the whitelist input type, so extra
// fields a client smuggles in are dropped on the floor.
type submitAnswerRequest struct {
	FormID           uint                           `json:"form_id"`
	QuestionsAnswers []services.QuestionAnswerInput `json:"questions_answers"`
}

// AnswerHandler serves submission and the owner-facing answers listing.
type AnswerHandler struct {
	service services.IAnswerService
}

// NewAnswerHandler wires an answer handler onto the given connection.
func NewAnswerHandler(db *gorm.DB) *AnswerHandler {
	return &AnswerHandler{service: services.NewAnswerService(db)}
}

// SubmitAnswer records one submission against a form. No authentication:
// submitting is the public act of filling out the form.
// POST /api/v1/answers
func (h *AnswerHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req submitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Required parameter missing: form_id")
	}

	answer, err := h.service.SubmitAnswer(c.UserContext(), req.FormID, req.QuestionsAnswers)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(answer)
}

// ListAnswers returns one page of an owned form's submissions.
// GET /api/v1/forms/:key/answers
func (h *AnswerHandler) ListAnswers(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("id")
	}

	result, err := h.service.ListAnswersForForm(c.UserContext(), c.Params("key"), middlewares.CurrentUserID(c), params)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(result)
}
