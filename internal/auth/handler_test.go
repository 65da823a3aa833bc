package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gearshift-backend/internal/config"
	"gearshift-backend/internal/database"
	"gearshift-backend/internal/models"
	"gearshift-backend/internal/server"
	"gearshift-backend/internal/testdb"

	"github.com/gofiber/fiber/v2"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-at-least-32-characters-long",
		SessionCookieName: "gearshift.session_token",
	}
}

func newTestApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	testdb.Open(t)
	cfg := testConfig()

	app := server.New()
	app.Post("/api/auth/bootstrap-superadmin", BootstrapSuperAdminHandler(cfg))
	app.Post("/api/auth/login", LoginHandler(cfg))
	app.Post("/api/auth/logout", LogoutHandler(cfg))

	protected := app.Group("/api", SessionMiddleware(cfg))
	protected.Get("/auth/me", MeHandler())
	return app, cfg
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, mod func(*http.Request)) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if mod != nil {
		mod(req)
	}
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

func bootstrap(t *testing.T, app *fiber.App) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/bootstrap-superadmin", fiber.Map{
		"name": "Root", "email": "root@example.com", "password": "hunter22",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("bootstrap: status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()
}

func login(t *testing.T, app *fiber.App, email, password string) (string, *http.Response) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": email, "password": password,
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	decodeInto(t, resp, &body)
	if body.Token == "" {
		t.Fatal("login returned no token")
	}
	return body.Token, resp
}

func TestBootstrapSuperAdminOnce(t *testing.T) {
	app, _ := newTestApp(t)

	bootstrap(t, app)

	var user models.User
	if err := database.DB.Where("email = ?", "root@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Role != models.RoleSuperAdmin {
		t.Fatalf("role = %s, want superadmin", user.Role)
	}
	if !user.EmailVerified {
		t.Fatal("bootstrap user must be email verified")
	}

	var account models.Account
	if err := database.DB.Where("user_id = ?", user.ID).First(&account).Error; err != nil {
		t.Fatalf("load account: %v", err)
	}
	if account.ProviderID != "credential" {
		t.Fatalf("providerId = %q", account.ProviderID)
	}
	if account.Password == nil || *account.Password == "hunter22" {
		t.Fatal("password must be stored hashed")
	}

	// A second bootstrap is refused even with a different email.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/bootstrap-superadmin", fiber.Map{
		"name": "Other", "email": "other@example.com", "password": "hunter22",
	}, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("second bootstrap: status = %d, want 403", resp.StatusCode)
	}
	var msg map[string]string
	decodeInto(t, resp, &msg)
	if msg["message"] != "A superadmin already exists" {
		t.Fatalf("message = %q", msg["message"])
	}
}

func TestBootstrapMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/bootstrap-superadmin", fiber.Map{
		"name": "Root", "email": "root@example.com",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLoginSetsCookieAndSessionRow(t *testing.T) {
	app, cfg := newTestApp(t)
	bootstrap(t, app)

	token, resp := login(t, app, "ROOT@example.com", "hunter22")

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == cfg.SessionCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login did not set the session cookie")
	}
	if cookie.Value != token {
		t.Fatal("cookie value must be the session token")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HTTPOnly")
	}

	var session models.Session
	if err := database.DB.Where("token = ?", token).First(&session).Error; err != nil {
		t.Fatalf("session row not persisted: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	bootstrap(t, app)

	for _, tc := range []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "root@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "hunter22"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
			"email": tc.email, "password": tc.pass,
		}, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, resp.StatusCode)
		}
		var msg map[string]string
		decodeInto(t, resp, &msg)
		if msg["message"] != "Invalid email or password" {
			t.Fatalf("%s: message = %q", tc.name, msg["message"])
		}
	}
}

func TestMeAcceptsCookieAndBearer(t *testing.T) {
	app, cfg := newTestApp(t)
	bootstrap(t, app)
	token, _ := login(t, app, "root@example.com", "hunter22")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: cfg.SessionCookieName, Value: token})
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cookie: status = %d, want 200", resp.StatusCode)
	}
	var user models.User
	decodeInto(t, resp, &user)
	if user.Email != "root@example.com" {
		t.Fatalf("email = %q", user.Email)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bearer: status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no credentials: status = %d, want 401", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-a-token")
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", resp.StatusCode)
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	app, cfg := newTestApp(t)
	bootstrap(t, app)
	token, _ := login(t, app, "root@example.com", "hunter22")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", nil, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: cfg.SessionCookieName, Value: token})
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	var count int64
	if err := database.DB.Model(&models.Session{}).Where("token = ?", token).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("session rows = %d, want 0 after logout", count)
	}
}
