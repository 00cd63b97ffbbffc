package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures requests to the WebSocket endpoint are valid
// upgrade attempts carrying a room id before the connection is accepted.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		if c.Params("roomId") == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "room ID is required",
			})
		}

		return c.Next()
	}
}
