package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/djajbladi/poultry-backend/internal/apperr"
)

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Unauthorized:
		return fiber.StatusUnauthorized
	case apperr.Forbidden:
		return fiber.StatusForbidden
	case apperr.NotFound:
		return fiber.StatusNotFound
	case apperr.Conflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

// respondError maps business errors to their HTTP statuses; anything else
// is logged and hidden behind a 500.
func respondError(c *fiber.Ctx, err error) error {
	if kind, ok := apperr.KindOf(err); ok {
		return c.Status(statusFor(kind)).JSON(fiber.Map{"error": err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
