package auth

import (
	"strings"
	"time"

	"gearshift-backend/internal/config"
	"gearshift-backend/internal/database"
	"gearshift-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Google sign-in is handled by the external auth service. This package
// only carries the credential fallback: the one-time superadmin bootstrap
// and a password login against the "credential" account row.

const credentialProvider = "credential"

type BootstrapSuperAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func BootstrapSuperAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BootstrapSuperAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email and password are required")
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("role = ?", models.RoleSuperAdmin).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "A superadmin already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
		}

		user := models.User{
			Name:          body.Name,
			Email:         body.Email,
			EmailVerified: true,
			Role:          models.RoleSuperAdmin,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
		}

		password := string(hash)
		account := models.Account{
			AccountID:  user.ID,
			ProviderID: credentialProvider,
			UserID:     user.ID,
			Password:   &password,
		}
		if err := database.DB.Create(&account).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}

		var account models.Account
		if err := database.DB.
			Where("user_id = ? AND provider_id = ?", user.ID, credentialProvider).
			First(&account).Error; err != nil || account.Password == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(*account.Password), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
		}

		ip := c.IP()
		ua := c.Get("User-Agent")
		session := models.Session{
			Token:     token,
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(sessionTTL),
			IPAddress: &ip,
			UserAgent: &ua,
		}
		if err := database.DB.Create(&session).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
		}

		c.Cookie(&fiber.Cookie{
			Name:     cfg.SessionCookieName,
			Value:    token,
			Expires:  session.ExpiresAt,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, "id = ?", CurrentUserID(c)).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}
		return c.JSON(user)
	}
}

func LogoutHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cfg.SessionCookieName); token != "" {
			database.DB.Where("token = ?", token).Delete(&models.Session{})
		}

		c.Cookie(&fiber.Cookie{
			Name:     cfg.SessionCookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(fiber.Map{"message": "Logged out"})
	}
}
