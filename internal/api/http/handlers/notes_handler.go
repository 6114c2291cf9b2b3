package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/bornebyte/notes/internal/api/dto"
	"github.com/bornebyte/notes/internal/auth"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/service"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

// NotesHandler manages note endpoints.
type NotesHandler struct {
	service *service.NoteService
}

// NewNotesHandler constructs handler.
func NewNotesHandler(noteService *service.NoteService) *NotesHandler {
	return &NotesHandler{service: noteService}
}

// List GET /api/notes. Supports ?type=trashed|favorites, ?query= and
// ?shareid= selectors; default is the active note list.
func (h *NotesHandler) List(c *fiber.Ctx) error {
	if shareID := c.Query("shareid"); shareID != "" {
		note, err := h.service.GetShared(c.Context(), shareID)
		if err != nil {
			return err
		}
		if note == nil {
			return c.JSON(nil)
		}
		return c.JSON(noteResponse(note))
	}

	if query := c.Query("query"); query != "" {
		notes, err := h.service.Search(c.Context(), query)
		if err != nil {
			return err
		}
		return c.JSON(noteResponses(notes))
	}

	var kind service.NoteListKind
	switch c.Query("type") {
	case "trashed":
		kind = service.NoteListTrashed
	case "favorites":
		kind = service.NoteListFavorites
	}
	notes, err := h.service.List(c.Context(), kind)
	if err != nil {
		return err
	}
	return c.JSON(noteResponses(notes))
}

// GetShared GET /api/notes/shared/:shareid. The only unguarded read path.
func (h *NotesHandler) GetShared(c *fiber.Ctx) error {
	note, err := h.service.GetShared(c.Context(), c.Params("shareid"))
	if err != nil {
		return err
	}
	if note == nil {
		return c.JSON(nil)
	}
	return c.JSON(noteResponse(note))
}

// Create POST /api/notes.
func (h *NotesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return apperrors.NewValidationError("Title and body are required")
	}
	if len(req.Title) > domain.MaxNoteTitleLength {
		return apperrors.NewValidationError("Title must be 255 characters or less")
	}

	note, err := h.service.Create(c.Context(), identityOf(c), service.NoteCreateInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "id": note.ID})
}

// Update PUT /api/notes.
func (h *NotesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.ID == 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return apperrors.NewValidationError("Missing required fields")
	}

	if err := h.service.Update(c.Context(), identityOf(c), req.ID, req.Title, req.Body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Note")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "id": req.ID})
}

// Delete DELETE /api/notes?id=&permanent=true. Only permanent deletion is
// served here; soft deletion goes through the trash endpoint.
func (h *NotesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return apperrors.NewValidationError("Note ID is required")
	}
	if c.Query("permanent") != "true" {
		return apperrors.NewValidationError("Use PUT /api/notes/trash to move notes to trash")
	}

	if err := h.service.Delete(c.Context(), identityOf(c), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Note")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Note permanently deleted"})
}

// SetTrashed PUT /api/notes/trash.
func (h *NotesHandler) SetTrashed(c *fiber.Ctx) error {
	var req dto.TrashNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.ID == 0 {
		return apperrors.NewValidationError("Note ID is required")
	}

	if err := h.service.SetTrashed(c.Context(), identityOf(c), req.ID, req.Trash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Note")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// SetFavorite PUT /api/notes/favorite.
func (h *NotesHandler) SetFavorite(c *fiber.Ctx) error {
	var req dto.FavoriteNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.ID == 0 {
		return apperrors.NewValidationError("Note ID is required")
	}

	if err := h.service.SetFavorite(c.Context(), identityOf(c), req.ID, req.Favorite); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Note")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Share POST /api/notes/share.
func (h *NotesHandler) Share(c *fiber.Ctx) error {
	var req dto.ShareNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.ID == 0 {
		return apperrors.NewValidationError("Note ID is required")
	}

	shareID, err := h.service.Share(c.Context(), identityOf(c), req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Note")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "shareid": shareID})
}

func identityOf(c *fiber.Ctx) string {
	if authCtx, ok := auth.FromContext(c); ok {
		return authCtx.Identity
	}
	return ""
}

func noteResponse(note *domain.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:          note.ID,
		Title:       note.Title,
		Body:        note.Body,
		Category:    note.Category,
		CreatedAt:   note.CreatedAt,
		LastUpdated: note.LastUpdated,
		Favorite:    note.Favorite,
		Trashed:     note.Trashed,
		ShareID:     note.ShareID,
	}
}

func noteResponses(notes []domain.Note) []dto.NoteResponse {
	items := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		items = append(items, noteResponse(&notes[i]))
	}
	return items
}
