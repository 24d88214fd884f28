package handlers

import (
	"formbox.link/middlewares"
	"formbox.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler serves registration, login and the profile endpoint.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler wires an auth handler onto the given connection.
func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{service: services.NewAuthService(db)}
}

// Register creates an account.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, services.ErrAuthInvalidInput.Error())
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, services.ErrAuthInvalidInput.Error())
	}

	user, err := h.service.Register(c.UserContext(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(user)
}

// Login verifies credentials and returns a bearer token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, services.ErrAuthInvalidInput.Error())
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, services.ErrAuthInvalidInput.Error())
	}

	token, user, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

// Profile returns the authenticated user.
// GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(user)
}
