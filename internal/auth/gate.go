package auth

import (
	"strings"

	"gearshift-backend/internal/config"
	"gearshift-backend/internal/database"
	"gearshift-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

var protectedPrefixes = []string{"/dashboard", "/superadmin"}

// PageGate is the perimeter check for page routes. It only looks at cookie
// presence; full session validation happens in the API layer. Signed-in
// visitors hitting the landing page are forwarded to their role's home.
func PageGate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if strings.HasPrefix(path, "/api") {
			return c.Next()
		}

		token := c.Cookies(cfg.SessionCookieName)

		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(path, prefix) && token == "" {
				return c.Redirect("/")
			}
		}

		if path == "/" && token != "" {
			return c.Redirect(landingPath(token))
		}

		return c.Next()
	}
}

// landingPath picks the role home for a session token. Any lookup failure
// falls back to /dashboard.
func landingPath(token string) string {
	var session models.Session
	if err := database.DB.Where("token = ?", token).First(&session).Error; err != nil {
		return "/dashboard"
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", session.UserID).Error; err != nil {
		return "/dashboard"
	}

	if user.Role == models.RoleSuperAdmin {
		return "/superadmin"
	}
	return "/dashboard"
}
