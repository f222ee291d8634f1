package handlers

import (
	"errors"

	"fbaprofit/internal/logger"
	"fbaprofit/internal/services/session"
	"fbaprofit/internal/utils"
	"fbaprofit/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

var badRequestErrors = []error{
	session.ErrMissingSKU,
	session.ErrDuplicateSKU,
	session.ErrUnsupportedCountry,
	session.ErrInvalidRate,
	session.ErrUnknownFreightMode,
	session.ErrInvalidFreightRate,
	session.ErrInvalidPrice,
}

// serviceError maps session service errors onto HTTP responses.
func serviceError(c *fiber.Ctx, err error, op string) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		return response.Error(c, fiber.StatusUnauthorized, "session expired")
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return response.BadRequest(c, err.Error())
		}
	}
	logger.Get().WithComponent("handlers").WithError(err).WithField("op", op).Error("request failed")
	return response.ServerError(c, "Failed to "+op)
}

func sessionID(c *fiber.Ctx) (string, error) {
	claims, err := utils.GetSessionClaims(c)
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}
