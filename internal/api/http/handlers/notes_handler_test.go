package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/bornebyte/notes/internal/api/http"
	"github.com/bornebyte/notes/internal/api/http/handlers"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/events"
	"github.com/bornebyte/notes/internal/observability"
	"github.com/bornebyte/notes/internal/repository"
	"github.com/bornebyte/notes/internal/service"
)

type memoryNoteRepo struct {
	notes  map[int64]*domain.Note
	nextID int64
}

func newMemoryNoteRepo() *memoryNoteRepo {
	return &memoryNoteRepo{notes: make(map[int64]*domain.Note), nextID: 1}
}

func (m *memoryNoteRepo) Create(_ context.Context, note *domain.Note) error {
	note.ID = m.nextID
	note.CreatedAt = time.Now()
	m.nextID++
	stored := *note
	m.notes[note.ID] = &stored
	return nil
}

func (m *memoryNoteRepo) Update(_ context.Context, id int64, title, body string) error {
	note, ok := m.notes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	note.Title = title
	note.Body = body
	return nil
}

func (m *memoryNoteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.notes[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.notes, id)
	return nil
}

func (m *memoryNoteRepo) SetTrashed(_ context.Context, id int64, trashed bool) error {
	note, ok := m.notes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	note.Trashed = trashed
	return nil
}

func (m *memoryNoteRepo) SetFavorite(_ context.Context, id int64, favorite bool) error {
	note, ok := m.notes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	note.Favorite = favorite
	return nil
}

func (m *memoryNoteRepo) SetShareID(_ context.Context, id int64, shareID string) (string, error) {
	note, ok := m.notes[id]
	if !ok {
		return "", pgx.ErrNoRows
	}
	note.ShareID = &shareID
	return shareID, nil
}

func (m *memoryNoteRepo) GetByShareID(_ context.Context, shareID string) (*domain.Note, error) {
	for _, note := range m.notes {
		if note.ShareID != nil && *note.ShareID == shareID && !note.Trashed {
			copied := *note
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryNoteRepo) List(_ context.Context, filter repository.NoteFilter) ([]domain.Note, error) {
	var out []domain.Note
	for _, note := range m.notes {
		if filter.Trashed != note.Trashed {
			continue
		}
		if filter.FavoritesOnly && !note.Favorite {
			continue
		}
		out = append(out, *note)
	}
	return out, nil
}

func newNotesApp() (*fiber.App, *memoryNoteRepo) {
	repo := newMemoryNoteRepo()
	svc := service.NewNoteService(service.NoteDependencies{
		NoteRepo:   repo,
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	h := handlers.NewNotesHandler(svc)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Get("/api/notes", h.List)
	app.Post("/api/notes", h.Create)
	app.Put("/api/notes", h.Update)
	app.Delete("/api/notes", h.Delete)
	app.Put("/api/notes/trash", h.SetTrashed)
	app.Get("/api/notes/shared/:shareid", h.GetShared)
	return app, repo
}

func jsonRequest(method, target string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func responseMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestNotesCreate(t *testing.T) {
	app, repo := newNotesApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/notes", fiber.Map{
		"title": "groceries",
		"body":  "milk",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := responseMap(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["id"])
	assert.Len(t, repo.notes, 1)
}

func TestNotesCreateValidation(t *testing.T) {
	app, repo := newNotesApp()

	cases := []fiber.Map{
		{"title": "", "body": "milk"},
		{"title": "groceries", "body": ""},
		{"title": "   ", "body": "milk"},
	}
	for _, payload := range cases {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/notes", payload))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := responseMap(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Title and body are required", body["message"])
	}
	assert.Empty(t, repo.notes)
}

func TestNotesCreateTitleTooLong(t *testing.T) {
	app, _ := newNotesApp()

	long := make([]byte, domain.MaxNoteTitleLength+1)
	for i := range long {
		long[i] = 'x'
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/notes", fiber.Map{
		"title": string(long),
		"body":  "milk",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Title must be 255 characters or less", responseMap(t, resp)["message"])
}

func TestNotesDeleteRequiresPermanentFlag(t *testing.T) {
	app, repo := newNotesApp()
	require.NoError(t, repo.Create(context.Background(), &domain.Note{Title: "a", Body: "b"}))

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/notes?id=1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Use PUT /api/notes/trash to move notes to trash", responseMap(t, resp)["message"])
	assert.Len(t, repo.notes, 1)

	resp, err = app.Test(jsonRequest(http.MethodDelete, "/api/notes?id=1&permanent=true", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.notes)
}

func TestNotesUpdateMissingNote(t *testing.T) {
	app, _ := newNotesApp()

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/notes", fiber.Map{
		"id":    99,
		"title": "a",
		"body":  "b",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNotesSharedLookup(t *testing.T) {
	app, repo := newNotesApp()
	shareID := "lx2abc"
	note := &domain.Note{Title: "a", Body: "b", ShareID: &shareID}
	require.NoError(t, repo.Create(context.Background(), note))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/notes/shared/lx2abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := responseMap(t, resp)
	assert.Equal(t, "a", body["title"])

	// Unknown share ids are a null payload, not an error.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/notes/shared/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "null", string(bytes.TrimSpace(raw)))
}
