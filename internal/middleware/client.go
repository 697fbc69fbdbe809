package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func logger() *slog.Logger {
	return slog.Default().With("package", "middleware")
}

// EnsureClientID tags the request with a client ID taken from the
// X-Client-ID header or the clientId query parameter. Clients that send
// neither get a fresh one; seats are not authenticated.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
			logger().Debug("assigned client ID", "client", clientID, "path", c.Path())
		}

		c.Locals("clientID", clientID)
		c.Set("X-Client-ID", clientID)
		return c.Next()
	}
}
