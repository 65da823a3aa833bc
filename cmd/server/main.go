package main

import (
	"strings"

	"gearshift-backend/internal/admin"
	"gearshift-backend/internal/auth"
	"gearshift-backend/internal/billing"
	"gearshift-backend/internal/catalog"
	"gearshift-backend/internal/config"
	"gearshift-backend/internal/crm"
	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/nav"
	"gearshift-backend/internal/server"
	"gearshift-backend/internal/workshop"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := server.New()

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(corsOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	// Perimeter gate for page routes (cookie presence only).
	app.Use(auth.PageGate(cfg))

	api := app.Group("/api")

	// Public auth surface. Google sign-in lives in the external auth
	// service; these are the credential fallback.
	api.Post("/auth/bootstrap-superadmin", auth.BootstrapSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/logout", auth.LogoutHandler(cfg))

	// Everything below requires a session.
	protected := api.Group("")
	protected.Use(auth.SessionMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Get("/nav", nav.Handler())

	// Resource CRUD. No per-operation role checks inside this group.
	resources := protected.Group("/superadmin")

	resources.Get("/users", admin.ListUsersHandler())
	resources.Post("/users", admin.CreateUserHandler())
	resources.Put("/users/:id", admin.UpdateUserHandler())
	resources.Delete("/users/:id", admin.DeleteUserHandler())

	resources.Get("/customers", crm.ListCustomersHandler())
	resources.Post("/customers", crm.CreateCustomerHandler())
	resources.Put("/customers/:id", crm.UpdateCustomerHandler())
	resources.Delete("/customers/:id", crm.DeleteCustomerHandler())

	resources.Get("/vehicles", crm.ListVehiclesHandler())
	resources.Post("/vehicles", crm.CreateVehicleHandler())
	resources.Put("/vehicles/:id", crm.UpdateVehicleHandler())
	resources.Delete("/vehicles/:id", crm.DeleteVehicleHandler())

	resources.Get("/jobs", workshop.ListJobsHandler())
	resources.Post("/jobs", workshop.CreateJobHandler())
	resources.Put("/jobs/:id", workshop.UpdateJobHandler())
	resources.Delete("/jobs/:id", workshop.DeleteJobHandler())

	resources.Get("/inventory-items", catalog.ListInventoryItemsHandler())
	resources.Post("/inventory-items", catalog.CreateInventoryItemHandler())
	resources.Put("/inventory-items/:id", catalog.UpdateInventoryItemHandler())
	resources.Delete("/inventory-items/:id", catalog.DeleteInventoryItemHandler())

	resources.Get("/labour-items", catalog.ListLabourItemsHandler())
	resources.Post("/labour-items", catalog.CreateLabourItemHandler())
	resources.Put("/labour-items/:id", catalog.UpdateLabourItemHandler())
	resources.Delete("/labour-items/:id", catalog.DeleteLabourItemHandler())

	// Read-only aggregate views; their rows are written by the external
	// billing process.
	resources.Get("/orders", billing.ListOrdersHandler())
	resources.Get("/payments", billing.ListPaymentsHandler())
	resources.Get("/invoices", billing.ListInvoicesHandler())

	// SPA build, served behind the page gate.
	app.Static("/", cfg.WebDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.WebDir + "/index.html")
	})

	logger.Get().WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Get().WithError(err).Fatal("server stopped")
	}
}
