package crm

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gearshift-backend/internal/auth"
	"gearshift-backend/internal/database"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/server"
	"gearshift-backend/internal/testdb"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	testdb.Open(t)

	app := server.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.CtxUserIDKey, "test-user")
		c.Locals(auth.CtxUserRoleKey, models.RoleSuperAdmin)
		return c.Next()
	})

	app.Get("/customers", ListCustomersHandler())
	app.Post("/customers", CreateCustomerHandler())
	app.Put("/customers/:id", UpdateCustomerHandler())
	app.Delete("/customers/:id", DeleteCustomerHandler())

	app.Get("/vehicles", ListVehiclesHandler())
	app.Post("/vehicles", CreateVehicleHandler())
	app.Put("/vehicles/:id", UpdateVehicleHandler())
	app.Delete("/vehicles/:id", DeleteVehicleHandler())

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestCreateCustomerDefaults(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/customers", fiber.Map{
		"name":  "A",
		"email": "a@x.com",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created models.Customer
	decodeInto(t, resp, &created)

	if created.ID == "" {
		t.Fatal("expected a server-generated id")
	}
	if !created.WhatsappOptIn {
		t.Fatal("whatsappOptIn must default to true")
	}
	if created.Email == nil || *created.Email != "a@x.com" {
		t.Fatalf("email = %v, want a@x.com", created.Email)
	}
	if created.Phone != nil {
		t.Fatalf("empty phone must be stored as null, got %q", *created.Phone)
	}
	if created.CreatedBy != "test-user" {
		t.Fatalf("createdBy = %q, want the session user", created.CreatedBy)
	}
}

func TestCreateCustomerRequiresName(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/customers", fiber.Map{"email": "a@x.com"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	decodeInto(t, resp, &body)
	if body["message"] != "Name is required" {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestCustomerEmailConflictAndSelfExclusion(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/customers", fiber.Map{"name": "A", "email": "a@x.com"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create: status = %d", resp.StatusCode)
	}
	var first models.Customer
	decodeInto(t, resp, &first)

	resp = doJSON(t, app, http.MethodPost, "/customers", fiber.Map{"name": "B", "email": "a@x.com"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate create: status = %d, want 409", resp.StatusCode)
	}

	// A record may keep its own unique value.
	resp = doJSON(t, app, http.MethodPut, "/customers/"+first.ID, fiber.Map{"name": "A2", "email": "a@x.com"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("self-exclusion update: status = %d, want 200", resp.StatusCode)
	}
	var updated models.Customer
	decodeInto(t, resp, &updated)
	if updated.Name != "A2" {
		t.Fatalf("name = %q, want A2", updated.Name)
	}
}

func TestCustomerWithoutEmailSkipsUniqueness(t *testing.T) {
	app := newTestApp(t)

	for _, name := range []string{"walk-in one", "walk-in two"} {
		resp := doJSON(t, app, http.MethodPost, "/customers", fiber.Map{"name": name})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %q: status = %d, want 201", name, resp.StatusCode)
		}
	}
}

func TestUpdateCustomerNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/customers/nope", fiber.Map{"name": "A"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteCustomer(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/customers", fiber.Map{"name": "A"})
	var created models.Customer
	decodeInto(t, resp, &created)

	resp = doJSON(t, app, http.MethodDelete, "/customers/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status = %d, want 200", resp.StatusCode)
	}

	// Deleting a nonexistent id reports 404 and leaves the count alone.
	resp = doJSON(t, app, http.MethodDelete, "/customers/"+created.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: status = %d, want 404", resp.StatusCode)
	}

	var count int64
	database.DB.Model(&models.Customer{}).Count(&count)
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}

func TestCreateCustomerConflictBackstop(t *testing.T) {
	app := newTestApp(t)

	// Simulates a concurrent writer landing between the email pre-check
	// and the insert. The colliding row appears only once the insert is
	// underway, so the unique index has the final word.
	err := database.DB.Callback().Create().Before("gorm:create").Register("crm_collide", func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.Table != "customers" {
			return
		}
		now := time.Now()
		if err := tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO customers (id, name, email, whatsapp_opt_in, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			"raced-row", "Binod", "asha@example.com", true, "seed-user", now, now,
		).Error; err != nil {
			t.Errorf("insert colliding row: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	resp := doJSON(t, app, http.MethodPost, "/customers", fiber.Map{
		"name":  "Asha",
		"email": "asha@example.com",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409 from the unique index", resp.StatusCode)
	}
	var body map[string]string
	decodeInto(t, resp, &body)
	if body["message"] != "Customer with this email already exists" {
		t.Fatalf("message = %q", body["message"])
	}

	// The failed create's transaction leaves nothing behind.
	var count int64
	database.DB.Model(&models.Customer{}).Count(&count)
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}
