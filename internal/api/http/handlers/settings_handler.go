package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/bornebyte/notes/internal/api/dto"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/service"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

// SettingsHandler manages the admin password and API token endpoints.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// ChangePassword PUT /api/settings/password.
func (h *SettingsHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	if err := h.service.ChangePassword(c.Context(), identityOf(c), req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListTokens GET /api/settings/tokens. Token values are redacted to a hint.
func (h *SettingsHandler) ListTokens(c *fiber.Ctx) error {
	tokens, err := h.service.ListTokens(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TokenResponse, 0, len(tokens))
	for _, t := range tokens {
		items = append(items, dto.TokenResponse{
			ID:        t.ID,
			TokenHint: tokenHint(t.Token),
			Name:      t.Name,
			CreatedAt: t.CreatedAt,
			LastUsed:  t.LastUsed,
			Revoked:   t.Revoked,
		})
	}
	return c.JSON(items)
}

// CreateToken POST /api/settings/tokens. The full token value is returned
// only here.
func (h *SettingsHandler) CreateToken(c *fiber.Ctx) error {
	var req dto.CreateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("Token name is required")
	}

	token, err := h.service.CreateToken(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "token": dto.TokenResponse{
		ID:        token.ID,
		Token:     token.Token,
		Name:      token.Name,
		CreatedAt: token.CreatedAt,
	}})
}

// RevokeToken DELETE /api/settings/tokens?id=.
func (h *SettingsHandler) RevokeToken(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return apperrors.NewValidationError("Token ID is required")
	}

	if err := h.service.RevokeToken(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Token")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func tokenHint(token string) string {
	if len(token) < domain.APITokenLength {
		return ""
	}
	return token[:8] + "..."
}
