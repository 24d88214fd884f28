package routes

import (
	api_handlers "formbox.link/handlers/api"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAnswerRoutes wires the public submission endpoint. It carries no
// auth middleware: anyone holding a form id may submit.
func registerAnswerRoutes(app *fiber.App, db *gorm.DB) {
	answerHandler := api_handlers.NewAnswerHandler(db)

	app.Post("/api/v1/answers", answerHandler.SubmitAnswer) // POST /api/v1/answers
}
