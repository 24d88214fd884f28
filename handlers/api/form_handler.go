package handlers

import (
	"formbox.link/middlewares"
	"formbox.link/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// formPayload is the writable part of a form request body. The owner and the
// friendly key are server-assigned and deliberately absent.
type formPayload struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	IsEnabled   *bool  `json:"is_enabled"`
}

type formRequest struct {
	Form *formPayload `json:"form" validate:"required"`
}

// FormHandler serves the authenticated form CRUD endpoints.
type FormHandler struct {
	service services.IFormService
}

// NewFormHandler wires a form handler onto the given connection.
func NewFormHandler(db *gorm.DB) *FormHandler {
	return &FormHandler{service: services.NewFormService(db)}
}

// ListForms returns every form in insertion order.
// GET /api/v1/forms
func (h *FormHandler) ListForms(c *fiber.Ctx) error {
	forms, err := h.service.ListForms(c.UserContext())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(forms)
}

// GetForm returns one form with its questions. Disabled forms are not found
// for anyone but their owner.
// GET /api/v1/forms/:key
func (h *FormHandler) GetForm(c *fiber.Ctx) error {
	form, err := h.service.GetFormByKey(c.UserContext(), c.Params("key"), middlewares.CurrentUserID(c))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(form)
}

// CreateForm persists a new form owned by the caller.
// POST /api/v1/forms
func (h *FormHandler) CreateForm(c *fiber.Ctx) error {
	var req formRequest
	if err := c.BodyParser(&req); err != nil || req.Form == nil {
		return badRequest(c, "Required parameter missing: form")
	}
	if err := validate.Struct(req.Form); err != nil {
		return badRequest(c, "Required parameter missing: form.title")
	}

	form, err := h.service.CreateForm(c.UserContext(), middlewares.CurrentUserID(c), formInput(req.Form))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(form)
}

// UpdateForm applies field updates to an owned form.
// PUT /api/v1/forms/:key
func (h *FormHandler) UpdateForm(c *fiber.Ctx) error {
	var req formRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Required parameter missing: form")
	}
	if req.Form == nil {
		return badRequest(c, "Required parameter missing: form")
	}

	form, err := h.service.UpdateForm(c.UserContext(), c.Params("key"), middlewares.CurrentUserID(c), formInput(req.Form))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(form)
}

// DeleteForm cascade-deletes an owned form and all its descendants.
// DELETE /api/v1/forms/:key
func (h *FormHandler) DeleteForm(c *fiber.Ctx) error {
	if err := h.service.DeleteForm(c.UserContext(), c.Params("key"), middlewares.CurrentUserID(c)); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func formInput(p *formPayload) services.FormInput {
	return services.FormInput{
		Title:       p.Title,
		Description: p.Description,
		IsEnabled:   p.IsEnabled,
	}
}
