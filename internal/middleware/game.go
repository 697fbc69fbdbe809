package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequireGameID rejects requests whose :gameId is not a UUID.
func RequireGameID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if _, err := uuid.Parse(gameID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid game ID",
			})
		}
		return c.Next()
	}
}
