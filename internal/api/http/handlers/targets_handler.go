package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/bornebyte/notes/internal/api/dto"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/service"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

// TargetsHandler manages deadline tracker endpoints.
type TargetsHandler struct {
	service *service.TargetService
}

// NewTargetsHandler constructs handler.
func NewTargetsHandler(targetService *service.TargetService) *TargetsHandler {
	return &TargetsHandler{service: targetService}
}

// List GET /api/targets.
func (h *TargetsHandler) List(c *fiber.Ctx) error {
	targets, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TargetResponse, 0, len(targets))
	for _, t := range targets {
		items = append(items, targetResponse(t))
	}
	return c.JSON(items)
}

// Create POST /api/targets.
func (h *TargetsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Message) == "" {
		return apperrors.NewValidationError("Date and message are required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return apperrors.NewValidationError("Invalid date format")
	}

	target, err := h.service.Create(c.Context(), date, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "id": target.ID})
}

// Delete DELETE /api/targets?id=.
func (h *TargetsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return apperrors.NewValidationError("Target ID is required")
	}

	if err := h.service.Delete(c.Context(), identityOf(c), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Target")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseDate(val string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

func targetResponse(t domain.TargetProgress) dto.TargetResponse {
	return dto.TargetResponse{
		ID:                 t.ID,
		Date:               t.Date,
		CreatedAt:          t.CreatedAt,
		Message:            t.Message,
		Months:             t.Months,
		Days:               t.Days,
		Hours:              t.Hours,
		Minutes:            t.Minutes,
		ProgressPercentage: t.ProgressPercentage,
	}
}
