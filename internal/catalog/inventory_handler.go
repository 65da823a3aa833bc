package catalog

import (
	"errors"

	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Price arrives as a decimal amount and is stored as a numeric(10,2)
// string, no unit conversion (unlike labour items).
type InventoryItemRequest struct {
	Sku      string           `json:"sku" validate:"required"`
	Name     string           `json:"name" validate:"required"`
	Unit     string           `json:"unit" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	StockQty *int             `json:"stockQty" validate:"required"`
	IsActive *bool            `json:"isActive"`
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// GET /api/superadmin/inventory-items
func ListInventoryItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.InventoryItem
		if err := database.DB.Order("created_at").Find(&items).Error; err != nil {
			logger.StorageError("inventory_item", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch inventory items")
		}
		return c.JSON(items)
	}
}

// POST /api/superadmin/inventory-items
func CreateInventoryItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body InventoryItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var existing models.InventoryItem
		if err := database.DB.Where("sku = ?", body.Sku).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Item with this SKU already exists")
		}

		item := models.InventoryItem{
			Sku:      body.Sku,
			Name:     body.Name,
			Unit:     body.Unit,
			Price:    *body.Price,
			StockQty: *body.StockQty,
			IsActive: activeOrDefault(body.IsActive),
		}
		if err := database.DB.Create(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Item with this SKU already exists")
			}
			logger.StorageError("inventory_item", "create", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create inventory item")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/superadmin/inventory-items/:id
func UpdateInventoryItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body InventoryItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var existing models.InventoryItem
		if err := database.DB.Where("sku = ? AND id <> ?", body.Sku, id).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Item with this SKU already exists")
		}

		res := database.DB.Model(&models.InventoryItem{}).Where("id = ?", id).Updates(map[string]any{
			"sku":       body.Sku,
			"name":      body.Name,
			"unit":      body.Unit,
			"price":     *body.Price,
			"stock_qty": *body.StockQty,
			"is_active": activeOrDefault(body.IsActive),
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Item with this SKU already exists")
			}
			logger.StorageError("inventory_item", "update", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update inventory item")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			logger.StorageError("inventory_item", "update", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update inventory item")
		}
		return c.JSON(item)
	}
}

// DELETE /api/superadmin/inventory-items/:id
//
// Hard delete; historical parts_usage rows keep their snapshots.
func DeleteInventoryItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.InventoryItem{}, "id = ?", id)
		if res.Error != nil {
			logger.StorageError("inventory_item", "delete", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete inventory item")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}

		return c.JSON(fiber.Map{"message": "Item deleted successfully"})
	}
}
