package routes

import (
	api_handlers "formbox.link/handlers/api"
	"formbox.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerFormRoutes wires the authenticated form and question endpoints.
// Every route here requires a valid bearer token; mutations additionally
// require ownership, enforced in the services.
func registerFormRoutes(app *fiber.App, db *gorm.DB) {
	formHandler := api_handlers.NewFormHandler(db)
	questionHandler := api_handlers.NewQuestionHandler(db)
	answerHandler := api_handlers.NewAnswerHandler(db)

	// The middleware is attached per route, not as a group-level Use: a
	// prefix-matched Use on /api/v1 would also capture the public routes
	// and every unmatched path under the prefix.
	auth := middlewares.AuthMiddleware(db)
	apiGroup := app.Group("/api/v1")

	apiGroup.Get("/forms", auth, formHandler.ListForms)                  // GET    /api/v1/forms
	apiGroup.Post("/forms", auth, formHandler.CreateForm)                // POST   /api/v1/forms
	apiGroup.Get("/forms/:key", auth, formHandler.GetForm)               // GET    /api/v1/forms/{key}
	apiGroup.Put("/forms/:key", auth, formHandler.UpdateForm)            // PUT    /api/v1/forms/{key}
	apiGroup.Delete("/forms/:key", auth, formHandler.DeleteForm)         // DELETE /api/v1/forms/{key}
	apiGroup.Get("/forms/:key/answers", auth, answerHandler.ListAnswers) // GET    /api/v1/forms/{key}/answers

	apiGroup.Post("/questions", auth, questionHandler.CreateQuestion)       // POST   /api/v1/questions
	apiGroup.Put("/questions/:id", auth, questionHandler.UpdateQuestion)    // PUT    /api/v1/questions/{id}
	apiGroup.Delete("/questions/:id", auth, questionHandler.DeleteQuestion) // DELETE /api/v1/questions/{id}
}
