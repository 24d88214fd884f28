package routes

import (
	"formbox.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// SetupRoutes installs the shared middleware and every route group on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(middlewares.RequestID())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	registerAuthRoutes(app, db)
	registerAnswerRoutes(app, db)
	registerFormRoutes(app, db)

	// Catch-all for unmatched routes, after every group.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	})
}
