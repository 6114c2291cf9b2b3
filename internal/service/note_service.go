package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bornebyte/notes/internal/cache"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/events"
	"github.com/bornebyte/notes/internal/repository"
)

// NoteListKind selects which note listing to return.
type NoteListKind string

const (
	NoteListActive    NoteListKind = ""
	NoteListTrashed   NoteListKind = "trashed"
	NoteListFavorites NoteListKind = "favorites"
)

// NoteCreateInput describes note creation payload.
type NoteCreateInput struct {
	Title    string
	Body     string
	Category *string
}

// NoteService coordinates note workflows. Every successful mutation publishes
// a mutation event after the primary write commits.
type NoteService struct {
	notes      repository.NoteRepository
	dispatcher events.Dispatcher
	cache      *cache.NoteCache
	now        func() time.Time
}

// NoteDependencies bundles collaborators for the note service.
type NoteDependencies struct {
	NoteRepo   repository.NoteRepository
	Dispatcher events.Dispatcher
	Cache      *cache.NoteCache
}

// NewNoteService constructs the service.
func NewNoteService(deps NoteDependencies) *NoteService {
	return &NoteService{
		notes:      deps.NoteRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		now:        time.Now,
	}
}

// List returns notes for the requested listing, serving the common listings
// from cache when possible.
func (s *NoteService) List(ctx context.Context, kind NoteListKind) ([]domain.Note, error) {
	cacheKey := listCacheKey(kind)
	var cached []domain.Note
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	filter := repository.NoteFilter{
		Trashed:       kind == NoteListTrashed,
		FavoritesOnly: kind == NoteListFavorites,
	}
	notes, err := s.notes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKey, notes)
	return notes, nil
}

// Search returns active notes whose title or body matches the term.
func (s *NoteService) Search(ctx context.Context, term string) ([]domain.Note, error) {
	return s.notes.List(ctx, repository.NoteFilter{SearchTerm: &term})
}

// GetShared returns a non-trashed note by its share id, or nil when absent.
func (s *NoteService) GetShared(ctx context.Context, shareID string) (*domain.Note, error) {
	note, err := s.notes.GetByShareID(ctx, shareID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return note, nil
}

// Create inserts a note and emits a noteadded notification.
func (s *NoteService) Create(ctx context.Context, identity string, input NoteCreateInput) (*domain.Note, error) {
	note := &domain.Note{
		Title:    strings.TrimSpace(input.Title),
		Body:     input.Body,
		Category: input.Category,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	s.invalidateLists(ctx)
	s.publishMutation(ctx, domain.MutationNoteAdded, noteRef(note.ID), identity)
	return note, nil
}

// Update rewrites title and body and emits a noteupdated notification.
func (s *NoteService) Update(ctx context.Context, identity string, id int64, title, body string) error {
	if err := s.notes.Update(ctx, id, strings.TrimSpace(title), body); err != nil {
		return err
	}
	s.invalidateLists(ctx)
	s.publishMutation(ctx, domain.MutationNoteUpdated, noteRef(id), identity)
	return nil
}

// Delete permanently removes a note and emits a notedeleted notification.
func (s *NoteService) Delete(ctx context.Context, identity string, id int64) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLists(ctx)
	s.publishMutation(ctx, domain.MutationNoteDeleted, noteRef(id), identity)
	return nil
}

// SetTrashed moves a note in or out of the trash, emitting
// notetrashed/noterecovered accordingly.
func (s *NoteService) SetTrashed(ctx context.Context, identity string, id int64, trashed bool) error {
	if err := s.notes.SetTrashed(ctx, id, trashed); err != nil {
		return err
	}
	s.invalidateLists(ctx)
	kind := domain.MutationNoteRecovered
	if trashed {
		kind = domain.MutationNoteTrashed
	}
	s.publishMutation(ctx, kind, noteRef(id), identity)
	return nil
}

// SetFavorite toggles the favorite flag, emitting noteaddedfav/noteremovedfav.
func (s *NoteService) SetFavorite(ctx context.Context, identity string, id int64, favorite bool) error {
	if err := s.notes.SetFavorite(ctx, id, favorite); err != nil {
		return err
	}
	s.invalidateLists(ctx)
	kind := domain.MutationNoteFavoriteRemoved
	if favorite {
		kind = domain.MutationNoteFavoriteAdded
	}
	s.publishMutation(ctx, kind, noteRef(id), identity)
	return nil
}

// Share assigns a share id to a note and emits shareidcreated. The share id
// is base36 of the current unix milliseconds.
func (s *NoteService) Share(ctx context.Context, identity string, id int64) (string, error) {
	shareID := strconv.FormatInt(s.now().UnixMilli(), 36)
	stored, err := s.notes.SetShareID(ctx, id, shareID)
	if err != nil {
		return "", err
	}
	s.invalidateLists(ctx)
	s.publishMutation(ctx, domain.MutationShareCreated, stored, identity)
	return stored, nil
}

func (s *NoteService) invalidateLists(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.KeyNotes, cache.KeyFavorites, cache.KeyTrashed)
}

func (s *NoteService) publishMutation(ctx context.Context, kind domain.MutationKind, ref, identity string) {
	publishMutation(ctx, s.dispatcher, kind, ref, identity)
}

func listCacheKey(kind NoteListKind) string {
	switch kind {
	case NoteListTrashed:
		return cache.KeyTrashed
	case NoteListFavorites:
		return cache.KeyFavorites
	default:
		return cache.KeyNotes
	}
}

func noteRef(id int64) string {
	return strconv.FormatInt(id, 10)
}
