package routes

import (
	api_handlers "formbox.link/handlers/api"
	"formbox.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerAuthRoutes(app *fiber.App, db *gorm.DB) {
	authHandler := api_handlers.NewAuthHandler(db)
	authGroup := app.Group("/api/v1/auth")

	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", middlewares.AuthMiddleware(db), authHandler.Profile)
}
