package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bornebyte/notes/internal/api/dto"
	"github.com/bornebyte/notes/internal/auth"
	"github.com/bornebyte/notes/internal/service"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

// AuthHandler issues and clears the session cookie the guard checks for.
type AuthHandler struct {
	settings   *service.SettingsService
	sessions   *auth.SessionManager
	cookieName string
}

// NewAuthHandler constructs handler.
func NewAuthHandler(settings *service.SettingsService, sessions *auth.SessionManager, cookieName string) *AuthHandler {
	return &AuthHandler{settings: settings, sessions: sessions, cookieName: cookieName}
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Password == "" {
		return apperrors.NewValidationError("Password is required")
	}

	if err := h.settings.VerifyPassword(c.Context(), req.Password); err != nil {
		return err
	}

	value, expiresAt, err := h.sessions.Issue()
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

// Logout POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

// Session GET /api/auth/session reports whether the caller holds a valid
// session cookie. Unlike the guard this does validate the signed value.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	value := c.Cookies(h.cookieName)
	if value == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	if err := h.sessions.Validate(value); err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{"authenticated": true})
}
