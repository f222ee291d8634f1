package utils

import (
	"errors"

	"fbaprofit/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSessionClaims extracts the session claims stored by the auth middleware.
func GetSessionClaims(c *fiber.Ctx) (*models.SessionClaims, error) {
	v := c.Locals("claims")
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.SessionClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}
