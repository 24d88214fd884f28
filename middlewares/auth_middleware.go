package middlewares

import (
	"strings"

	"formbox.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserIDKey is the Locals key the authenticated user id is stored under.
const UserIDKey = "userID"

// AuthMiddleware authenticates the bearer token on the Authorization header
// and stores the acting user id in Locals. Missing or invalid credentials are
// a uniform 401; no route behind this middleware runs unauthenticated.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	authService := services.NewAuthService(db)

	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return unauthorized(c)
		}
		userID, err := authService.ParseToken(token)
		if err != nil {
			return unauthorized(c)
		}
		if _, err := authService.GetUserByID(c.UserContext(), userID); err != nil {
			return unauthorized(c)
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(UserIDKey).(uint); ok {
		return id
	}
	return 0
}

func extractBearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	// Bare token without a scheme is accepted as well.
	return strings.TrimSpace(header)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
}
