package validate

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var v = validator.New()

// Required runs the struct's `validate` tags (presence checks only) and
// maps any failure to a 400 with the route's static message.
func Required(body any, message string) error {
	if err := v.Struct(body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, message)
	}
	return nil
}
