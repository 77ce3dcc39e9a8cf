package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Adwait4291/GroqResume/internal/apperr"
)

// ErrorHandler renders every error returned by a handler. Application errors
// carry their own status code and kind; anything else falls back to the
// fiber defaults.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		code := appErr.HTTPStatus()
		return c.Status(code).JSON(fiber.Map{
			"error": appErr.Error(),
			"kind":  string(appErr.Kind),
			"code":  code,
		})
	}

	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
