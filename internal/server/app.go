package server

import (
	"gearshift-backend/internal/logger"

	"github.com/gofiber/fiber/v2"
)

// New builds the fiber app with the shared error mapping. Handlers raise
// *fiber.Error; everything else is logged and hidden behind a generic 500.
func New() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"message": e.Message,
				})
			}
			logger.Get().WithError(err).Error("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		},
	})
}
