// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"errors"
	"strings"

	"fbaprofit/internal/logger"
	"fbaprofit/internal/services/auth"
	"fbaprofit/internal/services/session"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware requires a Bearer token whose session is still alive.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler validates the token and stores its claims under "claims".
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	log := logger.Get().WithComponent("middleware")

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := m.authService.Authorize(c.UserContext(), tokenString)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "session expired"})
	case errors.Is(err, auth.ErrInvalidToken):
		log.WithError(err).Debug("token validation failed")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	default:
		log.WithError(err).Error("session lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session lookup failed"})
	}

	c.Locals("claims", claims)
	return c.Next()
}
