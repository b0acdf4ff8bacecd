package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// maxPlayerIDLen bounds ids used as map keys in the game registry.
const maxPlayerIDLen = 64

// EnsurePlayerID stores the caller's player id in c.Locals("playerID"). The id
// comes from the X-Player-ID header or the playerId query parameter.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := strings.TrimSpace(c.Get("X-Player-ID"))
		if playerID == "" {
			playerID = strings.TrimSpace(c.Query("playerId"))
		}

		switch {
		case playerID == "":
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player id required in X-Player-ID header or playerId query",
			})
		case len(playerID) > maxPlayerIDLen:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player id too long",
			})
		}

		// fasthttp reuses the request buffer the id points into
		c.Locals("playerID", utils.CopyString(playerID))
		return c.Next()
	}
}
