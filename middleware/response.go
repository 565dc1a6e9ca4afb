package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Something went wrong, please try again later."

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return JsonResponse(c, statusCode, false, message, nil)
}

// ErrorHandler renders every error returned by a handler as JSON. Client
// errors keep their message; anything else is logged and replaced by a
// generic message so storage details never reach the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	statusCode := fiber.StatusInternalServerError
	message := internalErrorMessage

	var fe *fiber.Error
	if errors.As(err, &fe) {
		statusCode = fe.Code
		if statusCode < fiber.StatusInternalServerError {
			message = fe.Message
		}
	}

	if statusCode >= fiber.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Method(), c.OriginalURL(), err)
	}

	return ErrorResponse(c, statusCode, message)
}
