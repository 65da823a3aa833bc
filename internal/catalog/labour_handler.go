package catalog

import (
	"errors"
	"math"

	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// The priceCents field on the wire is actually a decimal rupee amount;
// it is multiplied by 100 and rounded into integer paise on every write.
type LabourItemRequest struct {
	Code        string   `json:"code" validate:"required"`
	Description string   `json:"description" validate:"required"`
	PriceCents  *float64 `json:"priceCents" validate:"required"`
	IsActive    *bool    `json:"isActive"`
}

func toMinorUnits(amount float64) int {
	return int(math.Round(amount * 100))
}

// GET /api/superadmin/labour-items
func ListLabourItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.LabourItem
		if err := database.DB.Order("code").Find(&items).Error; err != nil {
			logger.StorageError("labour_item", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch labour items")
		}
		return c.JSON(items)
	}
}

// POST /api/superadmin/labour-items
func CreateLabourItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LabourItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var existing models.LabourItem
		if err := database.DB.Where("code = ?", body.Code).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Item with this code already exists")
		}

		item := models.LabourItem{
			Code:        body.Code,
			Description: body.Description,
			PriceCents:  toMinorUnits(*body.PriceCents),
			IsActive:    activeOrDefault(body.IsActive),
		}
		if err := database.DB.Create(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Item with this code already exists")
			}
			logger.StorageError("labour_item", "create", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create labour item")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/superadmin/labour-items/:id
func UpdateLabourItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body LabourItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var existing models.LabourItem
		if err := database.DB.Where("code = ? AND id <> ?", body.Code, id).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Item with this code already exists")
		}

		res := database.DB.Model(&models.LabourItem{}).Where("id = ?", id).Updates(map[string]any{
			"code":        body.Code,
			"description": body.Description,
			"price_cents": toMinorUnits(*body.PriceCents),
			"is_active":   activeOrDefault(body.IsActive),
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Item with this code already exists")
			}
			logger.StorageError("labour_item", "update", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update labour item")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Labour item not found")
		}

		var item models.LabourItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			logger.StorageError("labour_item", "update", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update labour item")
		}
		return c.JSON(item)
	}
}

// DELETE /api/superadmin/labour-items/:id
func DeleteLabourItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.LabourItem{}, "id = ?", id)
		if res.Error != nil {
			logger.StorageError("labour_item", "delete", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete labour item")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Labour item not found")
		}

		return c.JSON(fiber.Map{"message": "Labour item deleted successfully"})
	}
}
