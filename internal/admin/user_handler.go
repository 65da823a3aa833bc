package admin

import (
	"errors"

	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserRequest struct {
	Name  string          `json:"name" validate:"required"`
	Email string          `json:"email" validate:"required"`
	Role  models.UserRole `json:"role" validate:"required"`
}

// GET /api/superadmin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at").Find(&users).Error; err != nil {
			logger.StorageError("user", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
		}
		return c.JSON(users)
	}
}

// POST /api/superadmin/users
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var existing models.User
		if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "User with this email already exists")
		}

		user := models.User{
			Name:          body.Name,
			Email:         body.Email,
			Role:          body.Role,
			EmailVerified: false,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "User with this email already exists")
			}
			logger.StorageError("user", "create", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
		}

		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// PUT /api/superadmin/users/:id
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		// Uniqueness check excludes the row being updated so a user can
		// keep their own email.
		var existing models.User
		if err := database.DB.Where("email = ? AND id <> ?", body.Email, id).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "User with this email already exists")
		}

		res := database.DB.Model(&models.User{}).Where("id = ?", id).Updates(map[string]any{
			"name":  body.Name,
			"email": body.Email,
			"role":  body.Role,
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "User with this email already exists")
			}
			logger.StorageError("user", "update", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			logger.StorageError("user", "update", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
		}
		return c.JSON(user)
	}
}

// DELETE /api/superadmin/users/:id
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			logger.StorageError("user", "delete", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		return c.JSON(fiber.Map{"message": "User deleted successfully"})
	}
}
