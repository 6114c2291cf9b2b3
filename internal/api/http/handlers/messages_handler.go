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

// MessagesHandler manages contact message endpoints.
type MessagesHandler struct {
	service *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{service: messageService}
}

// List GET /api/messages.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	messages, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, messageResponse(m))
	}
	return c.JSON(items)
}

// Create POST /api/messages.
func (h *MessagesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	if _, err := h.service.Create(c.Context(), req.Name, req.Email, req.Message); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Message saved successfully"})
}

// Delete DELETE /api/messages?id=.
func (h *MessagesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return apperrors.NewValidationError("Message ID is required")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Message")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Message deleted successfully"})
}

func messageResponse(m domain.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Message: m.Message,
		Time:    m.Time,
	}
}
