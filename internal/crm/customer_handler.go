package crm

import (
	"errors"

	"gearshift-backend/internal/auth"
	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CustomerRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	WhatsappOptIn *bool  `json:"whatsappOptIn"`
}

// Empty optional strings are stored as NULL, not "".
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// GET /api/superadmin/customers
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("created_at").Find(&customers).Error; err != nil {
			logger.StorageError("customer", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch customers")
		}
		return c.JSON(customers)
	}
}

// POST /api/superadmin/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}
		if err := validate.Required(body, "Name is required"); err != nil {
			return err
		}

		if body.Email != "" {
			var existing models.Customer
			if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusConflict, "Customer with this email already exists")
			}
		}

		customer := models.Customer{
			Name:          body.Name,
			Phone:         nullable(body.Phone),
			Email:         nullable(body.Email),
			WhatsappOptIn: optInOrDefault(body.WhatsappOptIn),
			CreatedBy:     auth.CurrentUserID(c),
		}
		if err := database.DB.Create(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Customer with this email already exists")
			}
			logger.StorageError("customer", "create", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create customer")
		}

		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// PUT /api/superadmin/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body CustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}
		if err := validate.Required(body, "Name is required"); err != nil {
			return err
		}

		if body.Email != "" {
			var existing models.Customer
			if err := database.DB.Where("email = ? AND id <> ?", body.Email, id).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusConflict, "Customer with this email already exists")
			}
		}

		res := database.DB.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]any{
			"name":            body.Name,
			"phone":           nullable(body.Phone),
			"email":           nullable(body.Email),
			"whatsapp_opt_in": optInOrDefault(body.WhatsappOptIn),
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Customer with this email already exists")
			}
			logger.StorageError("customer", "update", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update customer")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			logger.StorageError("customer", "update", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update customer")
		}
		return c.JSON(customer)
	}
}

// DELETE /api/superadmin/customers/:id
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Customer{}, "id = ?", id)
		if res.Error != nil {
			logger.StorageError("customer", "delete", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete customer")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		return c.JSON(fiber.Map{"message": "Customer deleted successfully"})
	}
}
