package handlers

import (
	"errors"

	"formbox.link/configs/configslog"
	"formbox.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// renderError is the single place service errors become HTTP responses.
// Every error body is {"message": ...} with the status matching the error
// kind; anything unclassified is a logged 500.
func renderError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrFormNotFound),
		errors.Is(err, services.ErrQuestionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrFormForbidden),
		errors.Is(err, services.ErrQuestionForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrFormTitleRequired),
		errors.Is(err, services.ErrFormInvalidInput),
		errors.Is(err, services.ErrQuestionTitleRequired),
		errors.Is(err, services.ErrQuestionKindInvalid),
		errors.Is(err, services.ErrAnswerQuestionMismatch),
		errors.Is(err, services.ErrAnswerSubmissionFailed),
		errors.Is(err, services.ErrAuthInvalidInput),
		errors.Is(err, services.ErrAuthEmailTaken):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrAuthInvalidCredentials),
		errors.Is(err, services.ErrAuthInvalidToken):
		status = fiber.StatusUnauthorized
	}

	if status == fiber.StatusInternalServerError {
		configslog.Log.Error("unhandled service error",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.Error(err),
		)
		return c.Status(status).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}
