package handlers

import (
	"errors"

	"fbaprofit/internal/logger"
	"fbaprofit/internal/services/auth"
	"fbaprofit/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login exchanges the access passphrase for a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Passphrase string `json:"passphrase"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Passphrase == "" {
		return response.BadRequest(c, "Passphrase is required")
	}

	token, sess, err := h.authService.Login(c.UserContext(), input.Passphrase)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassphrase):
			return response.Error(c, fiber.StatusUnauthorized, "Invalid passphrase")
		case errors.Is(err, auth.ErrGateDisabled):
			return response.Error(c, fiber.StatusServiceUnavailable, "Login is disabled")
		default:
			logger.Get().WithComponent("handlers").WithError(err).Error("login failed")
			return response.ServerError(c, "Authentication failed")
		}
	}

	return response.Success(c, "Logged in", fiber.Map{
		"access_token": token,
		"session":      sess,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	if err := h.authService.Logout(c.UserContext(), id); err != nil {
		return serviceError(c, err, "log out")
	}
	return response.Success(c, "Logged out", nil)
}
