package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// WebSocketUpgrade admits only upgrade requests that name a well-formed game
// id and carry a player id, and copies both into locals for the handler.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if _, err := uuid.Parse(gameID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "a valid game ID is required",
			})
		}

		// set by EnsurePlayerID
		playerID, _ := c.Locals("playerID").(string)
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		// params are gone once the connection is upgraded; locals are not
		c.Locals("wsGameID", gameID)
		c.Locals("wsPlayerID", playerID)

		return c.Next()
	}
}
