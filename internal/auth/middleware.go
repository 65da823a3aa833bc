package auth

import (
	"fmt"
	"strings"

	"gearshift-backend/internal/config"
	"gearshift-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"
)

// SessionMiddleware accepts the session cookie or a bearer token and puts
// the caller's identity into locals. It does not check roles: within the
// API group there is no per-operation authorization.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(cfg.SessionCookieName)

		if tokenStr == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired session")
		}

		claims, ok := token.Claims.(*SessionClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired session")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserRoleKey, claims.Role)

		return c.Next()
	}
}

// CurrentUserID returns the signed-in user's id, or "" outside the
// session-protected group.
func CurrentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(CtxUserIDKey).(string); ok {
		return id
	}
	return ""
}

// CurrentRole returns the signed-in user's role, falling back to mechanic
// when the role is missing or unknown.
func CurrentRole(c *fiber.Ctx) models.UserRole {
	if role, ok := c.Locals(CtxUserRoleKey).(models.UserRole); ok {
		switch role {
		case models.RoleSuperAdmin, models.RoleAdmin, models.RoleMechanic:
			return role
		}
	}
	return models.RoleMechanic
}
