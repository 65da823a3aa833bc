package nav

import (
	"gearshift-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// GET /api/nav?path=/dashboard
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries := ForRole(auth.CurrentRole(c))
		if path := c.Query("path"); path != "" {
			entries = MarkActive(entries, path)
		}
		return c.JSON(entries)
	}
}
