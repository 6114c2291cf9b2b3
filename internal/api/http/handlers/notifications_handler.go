package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/bornebyte/notes/internal/api/dto"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/service"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

// NotificationsHandler serves the audit trail.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// List GET /api/notifications?filter=. Responds with the two-element array
// the dashboard consumes: [rows, filterMenu].
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter", "*")
	rows, menu, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		items = append(items, notificationResponse(n))
	}
	return c.JSON([]any{items, menu})
}

// Delete DELETE /api/notifications?id=.
func (h *NotificationsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return apperrors.NewValidationError("Notification ID is required")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Notification")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func notificationResponse(n domain.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
		Category:  n.Category,
		Label:     n.Label,
	}
}
