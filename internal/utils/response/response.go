package response

import (
	"github.com/gofiber/fiber/v2"
)

// Notice levels attached next to "data" by WithNotice.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// WithNotice is a successful response that also carries a user-facing notice
// under the key named by level.
func WithNotice(c *fiber.Ctx, message string, data interface{}, level, notice string) error {
	body := fiber.Map{
		"message": message,
		"data":    data,
	}
	if notice != "" {
		body[level] = notice
	}
	return c.JSON(body)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// ValidationErrors reports field-level problems.
func ValidationErrors(c *fiber.Ctx, errs interface{}) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": errs,
	})
}
