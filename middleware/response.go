package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ForbiddenResponse is the single message for every denied action.
// Role failures and ownership failures are indistinguishable on the
// wire so responses never reveal which rule fired.
func ForbiddenResponse(c *fiber.Ctx) error {
	return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	return JsonResponse(c, fiber.StatusNotFound, false, message, nil)
}

// RequestID tags each request with a uuid for log correlation.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals("requestId", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
