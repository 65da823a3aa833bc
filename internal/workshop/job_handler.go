package workshop

import (
	"encoding/json"
	"time"

	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/notify"
	"gearshift-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CreateJobRequest struct {
	CustomerID           string `json:"customerId" validate:"required"`
	VehicleID            string `json:"vehicleId" validate:"required"`
	AssignedMechanicID   string `json:"assignedMechanicId"`
	State                string `json:"state" validate:"required"`
	OdoKm                int    `json:"odoKm"`
	FuelLevel            string `json:"fuelLevel"`
	CustomerRequirements string `json:"customerRequirements"`
	// createdBy comes from the caller on this resource, not the session.
	CreatedBy string `json:"createdBy" validate:"required"`
}

type UpdateJobRequest struct {
	CustomerID           string `json:"customerId" validate:"required"`
	VehicleID            string `json:"vehicleId" validate:"required"`
	AssignedMechanicID   string `json:"assignedMechanicId"`
	State                string `json:"state" validate:"required"`
	OdoKm                int    `json:"odoKm"`
	FuelLevel            string `json:"fuelLevel"`
	CustomerRequirements string `json:"customerRequirements"`
}

// JobRow embeds the customer, vehicle and mechanic labels so the jobs
// table renders without extra lookups.
type JobRow struct {
	ID                   string          `json:"id"`
	CustomerID           string          `json:"customerId"`
	CustomerName         *string         `json:"customerName"`
	VehicleID            string          `json:"vehicleId"`
	VehicleMake          *string         `json:"vehicleMake"`
	VehicleModel         *string         `json:"vehicleModel"`
	VehicleRegNumber     *string         `json:"vehicleRegNumber"`
	AssignedMechanicID   *string         `json:"assignedMechanicId"`
	MechanicName         *string         `json:"mechanicName"`
	State                models.JobState `json:"state"`
	OdoKm                *int            `json:"odoKm"`
	FuelLevel            *string         `json:"fuelLevel"`
	ConditionMedia       json.RawMessage `json:"conditionMedia"`
	CustomerRequirements *string         `json:"customerRequirements"`
	CreatedBy            string          `json:"createdBy"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func nullableStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// GET /api/superadmin/jobs
func ListJobsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []JobRow
		err := database.DB.Table("jobs").
			Select("jobs.id, jobs.customer_id, customers.name AS customer_name, jobs.vehicle_id, vehicles.make AS vehicle_make, vehicles.model AS vehicle_model, vehicles.reg_number AS vehicle_reg_number, jobs.assigned_mechanic_id, users.name AS mechanic_name, jobs.state, jobs.odo_km, jobs.fuel_level, jobs.condition_media, jobs.customer_requirements, jobs.created_by, jobs.created_at, jobs.updated_at").
			Joins("LEFT JOIN customers ON customers.id = jobs.customer_id").
			Joins("LEFT JOIN vehicles ON vehicles.id = jobs.vehicle_id").
			Joins("LEFT JOIN users ON users.id = jobs.assigned_mechanic_id").
			Order("jobs.created_at").
			Scan(&rows).Error
		if err != nil {
			logger.StorageError("job", "list", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch jobs")
		}
		return c.JSON(rows)
	}
}

// POST /api/superadmin/jobs
//
// The referenced customer and vehicle are not checked for existence here,
// matching the observed contract (vehicles do check their customer).
func CreateJobHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateJobRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		job := models.Job{
			CustomerID:           body.CustomerID,
			VehicleID:            body.VehicleID,
			AssignedMechanicID:   nullableStr(body.AssignedMechanicID),
			State:                models.JobState(body.State),
			OdoKm:                nullableInt(body.OdoKm),
			FuelLevel:            nullableStr(body.FuelLevel),
			CustomerRequirements: nullableStr(body.CustomerRequirements),
			CreatedBy:            body.CreatedBy,
		}
		if err := database.DB.Create(&job).Error; err != nil {
			logger.StorageError("job", "create", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create job")
		}

		return c.Status(fiber.StatusCreated).JSON(job)
	}
}

// PUT /api/superadmin/jobs/:id
func UpdateJobHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateJobRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}
		if err := validate.Required(body, "Missing required fields"); err != nil {
			return err
		}

		var job models.Job
		if err := database.DB.First(&job, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Job not found")
		}
		previousState := job.State

		res := database.DB.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]any{
			"customer_id":           body.CustomerID,
			"vehicle_id":            body.VehicleID,
			"assigned_mechanic_id":  nullableStr(body.AssignedMechanicID),
			"state":                 body.State,
			"odo_km":                nullableInt(body.OdoKm),
			"fuel_level":            nullableStr(body.FuelLevel),
			"customer_requirements": nullableStr(body.CustomerRequirements),
		})
		if res.Error != nil {
			logger.StorageError("job", "update", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update job")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Job not found")
		}

		if err := database.DB.First(&job, "id = ?", id).Error; err != nil {
			logger.StorageError("job", "update", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update job")
		}

		// Best effort: tell an opted-in customer their vehicle is ready.
		if job.State == models.JobStateReadyForDelivery && previousState != models.JobStateReadyForDelivery {
			notify.QueueJobReady(job)
		}

		return c.JSON(job)
	}
}

// DELETE /api/superadmin/jobs/:id
func DeleteJobHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Job{}, "id = ?", id)
		if res.Error != nil {
			logger.StorageError("job", "delete", res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete job")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Job not found")
		}

		return c.JSON(fiber.Map{"message": "Job deleted successfully"})
	}
}
