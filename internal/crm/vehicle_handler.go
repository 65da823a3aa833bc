package crm

import (
	"errors"
	"time"

	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VehicleRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	Make       string `json:"make" validate:"required"`
	Model      string `json:"model" validate:"required"`
	Year       int    `json:"year" validate:"required"`
	RegNumber  string `json:"regNumber" validate:"required"`
	Vin        string `json:"vin"`
}

// List rows carry the owner's name so the table screen does not have to
// join client-side.
type VehicleRow struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	CustomerName *string   `json:"customerName"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	RegNumber    string    `json:"regNumber"`
	Vin          *string   `json:"vin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GET /api/superadmin/vehicles
func ListVehiclesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []VehicleRow
		err := database.DB.Table("vehicles").
			Select("vehicles.id, vehicles.customer_id, customers.name AS customer_name, vehicles.make, vehicles.model, vehicles.year, vehicles.reg_number, vehicles.vin, vehicles.created_at, vehicles.updated_at").
			Joins("LEFT JOIN customers ON customers.id = vehicles.customer_id").
			Order("vehicles.created_at").
			Scan(&rows).Error
		if err != nil {
			logger.StorageError("vehicle", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch vehicles")
		}
		return c.JSON(rows)
	}
}

// POST /api/superadmin/vehicles
func CreateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body VehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var existing models.Vehicle
		if err := database.DB.Where("reg_number = ?", body.RegNumber).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Vehicle with this registration number already exists")
		}

		// The one cross-entity check in the CRUD surface: the owner must
		// exist before a vehicle is written.
		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		vehicle := models.Vehicle{
			CustomerID: body.CustomerID,
			Make:       body.Make,
			Model:      body.Model,
			Year:       body.Year,
			RegNumber:  body.RegNumber,
			Vin:        nullable(body.Vin),
		}
		if err := database.DB.Create(&vehicle).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Vehicle with this registration number already exists")
			}
			logger.StorageError("vehicle", "create", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create vehicle")
		}

		return c.Status(fiber.StatusCreated).JSON(vehicle)
	}
}

// PUT /api/superadmin/vehicles/:id
func UpdateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body VehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var existing models.Vehicle
		if err := database.DB.Where("reg_number = ? AND id <> ?", body.RegNumber, id).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Vehicle with this registration number already exists")
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		res := database.DB.Model(&models.Vehicle{}).Where("id = ?", id).Updates(map[string]any{
			"customer_id": body.CustomerID,
			"make":        body.Make,
			"model":       body.Model,
			"year":        body.Year,
			"reg_number":  body.RegNumber,
			"vin":         nullable(body.Vin),
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Vehicle with this registration number already exists")
			}
			logger.StorageError("vehicle", "update", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update vehicle")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}

		var vehicle models.Vehicle
		if err := database.DB.First(&vehicle, "id = ?", id).Error; err != nil {
			logger.StorageError("vehicle", "update", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update vehicle")
		}
		return c.JSON(vehicle)
	}
}

// DELETE /api/superadmin/vehicles/:id
func DeleteVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Vehicle{}, "id = ?", id)
		if res.Error != nil {
			logger.StorageError("vehicle", "delete", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete vehicle")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}

		return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
	}
}
