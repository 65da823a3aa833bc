// Package billing exposes read-only views over the rows the external
// billing and payment process writes. There is no create/update/delete
// surface here.
package billing

import (
	"time"

	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type OrderRow struct {
	ID               string             `json:"id"`
	JobCardID        string             `json:"jobCardId"`
	GrossAmount      decimal.Decimal    `json:"grossAmount"`
	TaxAmount        decimal.Decimal    `json:"taxAmount"`
	TotalAmount      decimal.Decimal    `json:"totalAmount"`
	Status           models.OrderStatus `json:"status"`
	PdfURL           *string            `json:"pdfUrl"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	CustomerName     *string            `json:"customerName"`
	VehicleMake      *string            `json:"vehicleMake"`
	VehicleModel     *string            `json:"vehicleModel"`
	VehicleRegNumber *string            `json:"vehicleRegNumber"`
}

type PaymentRow struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"orderId"`
	RazorpayOrderID  *string              `json:"razorpayOrderId"`
	Amount           decimal.Decimal      `json:"amount"`
	PaymentMethod    models.PaymentMethod `json:"paymentMethod"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
	CustomerName     *string              `json:"customerName"`
	VehicleMake      *string              `json:"vehicleMake"`
	VehicleModel     *string              `json:"vehicleModel"`
	VehicleRegNumber *string              `json:"vehicleRegNumber"`
	OrderTotalAmount *decimal.Decimal     `json:"orderTotalAmount"`
}

type InvoiceRow struct {
	ID               string              `json:"id"`
	OrderID          string              `json:"orderId"`
	Amount           decimal.Decimal     `json:"amount"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	CustomerName     *string             `json:"customerName"`
	VehicleMake      *string             `json:"vehicleMake"`
	VehicleModel     *string             `json:"vehicleModel"`
	VehicleRegNumber *string             `json:"vehicleRegNumber"`
	OrderStatus      *models.OrderStatus `json:"orderStatus"`
	OrderTotalAmount *decimal.Decimal    `json:"orderTotalAmount"`
}

// GET /api/superadmin/orders
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []OrderRow
		err := database.DB.Table("orders").
			Select("orders.id, orders.job_card_id, orders.gross_amount, orders.tax_amount, orders.total_amount, orders.status, orders.pdf_url, orders.created_at, orders.updated_at, customers.name AS customer_name, vehicles.make AS vehicle_make, vehicles.model AS vehicle_model, vehicles.reg_number AS vehicle_reg_number").
			Joins("LEFT JOIN jobs ON jobs.id = orders.job_card_id").
			Joins("LEFT JOIN customers ON customers.id = jobs.customer_id").
			Joins("LEFT JOIN vehicles ON vehicles.id = jobs.vehicle_id").
			Order("orders.created_at").
			Scan(&rows).Error
		if err != nil {
			logger.StorageError("order", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch orders")
		}
		return c.JSON(rows)
	}
}

// GET /api/superadmin/payments
func ListPaymentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []PaymentRow
		err := database.DB.Table("payments").
			Select("payments.id, payments.order_id, payments.razorpay_order_id, payments.amount, payments.payment_method, payments.created_at, payments.updated_at, customers.name AS customer_name, vehicles.make AS vehicle_make, vehicles.model AS vehicle_model, vehicles.reg_number AS vehicle_reg_number, orders.total_amount AS order_total_amount").
			Joins("LEFT JOIN orders ON orders.id = payments.order_id").
			Joins("LEFT JOIN jobs ON jobs.id = orders.job_card_id").
			Joins("LEFT JOIN customers ON customers.id = jobs.customer_id").
			Joins("LEFT JOIN vehicles ON vehicles.id = jobs.vehicle_id").
			Order("payments.created_at").
			Scan(&rows).Error
		if err != nil {
			logger.StorageError("payment", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
		}
		return c.JSON(rows)
	}
}

// GET /api/superadmin/invoices
func ListInvoicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []InvoiceRow
		err := database.DB.Table("invoices").
			Select("invoices.id, invoices.order_id, invoices.amount, invoices.created_at, invoices.updated_at, customers.name AS customer_name, vehicles.make AS vehicle_make, vehicles.model AS vehicle_model, vehicles.reg_number AS vehicle_reg_number, orders.status AS order_status, orders.total_amount AS order_total_amount").
			Joins("LEFT JOIN orders ON orders.id = invoices.order_id").
			Joins("LEFT JOIN jobs ON jobs.id = orders.job_card_id").
			Joins("LEFT JOIN customers ON customers.id = jobs.customer_id").
			Joins("LEFT JOIN vehicles ON vehicles.id = jobs.vehicle_id").
			Order("invoices.created_at").
			Scan(&rows).Error
		if err != nil {
			logger.StorageError("invoice", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoices")
		}
		return c.JSON(rows)
	}
}
