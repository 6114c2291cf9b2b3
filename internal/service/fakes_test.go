package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/repository"
)

type fakeNoteRepo struct {
	notes  map[int64]*domain.Note
	nextID int64
	err    error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[int64]*domain.Note), nextID: 1}
}

func (f *fakeNoteRepo) Create(_ context.Context, note *domain.Note) error {
	if f.err != nil {
		return f.err
	}
	note.ID = f.nextID
	note.CreatedAt = time.Now()
	f.nextID++
	stored := *note
	f.notes[note.ID] = &stored
	return nil
}

func (f *fakeNoteRepo) Update(_ context.Context, id int64, title, body string) error {
	note, ok := f.notes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	note.Title = title
	note.Body = body
	return nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.notes[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) SetTrashed(_ context.Context, id int64, trashed bool) error {
	note, ok := f.notes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	note.Trashed = trashed
	return nil
}

func (f *fakeNoteRepo) SetFavorite(_ context.Context, id int64, favorite bool) error {
	note, ok := f.notes[id]
	if !ok {
		return pgx.ErrNoRows
	}
	note.Favorite = favorite
	return nil
}

func (f *fakeNoteRepo) SetShareID(_ context.Context, id int64, shareID string) (string, error) {
	note, ok := f.notes[id]
	if !ok {
		return "", pgx.ErrNoRows
	}
	note.ShareID = &shareID
	return shareID, nil
}

func (f *fakeNoteRepo) GetByShareID(_ context.Context, shareID string) (*domain.Note, error) {
	for _, note := range f.notes {
		if note.ShareID != nil && *note.ShareID == shareID && !note.Trashed {
			copied := *note
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeNoteRepo) List(_ context.Context, filter repository.NoteFilter) ([]domain.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Note
	for _, note := range f.notes {
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

type fakeNotificationRepo struct {
	rows      []domain.Notification
	nextID    int64
	insertErr error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) Insert(_ context.Context, notification *domain.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	notification.ID = f.nextID
	notification.CreatedAt = time.Now()
	f.nextID++
	f.rows = append(f.rows, *notification)
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id int64) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeNotificationRepo) List(_ context.Context, category string) ([]domain.Notification, error) {
	var out []domain.Notification
	for i := len(f.rows) - 1; i >= 0; i-- {
		if category == "*" || f.rows[i].Category == category {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

type fakeTargetRepo struct {
	targets map[int64]*domain.Target
	nextID  int64
}

func newFakeTargetRepo() *fakeTargetRepo {
	return &fakeTargetRepo{targets: make(map[int64]*domain.Target), nextID: 1}
}

func (f *fakeTargetRepo) Create(_ context.Context, target *domain.Target) error {
	target.ID = f.nextID
	target.CreatedAt = time.Now()
	f.nextID++
	stored := *target
	f.targets[target.ID] = &stored
	return nil
}

func (f *fakeTargetRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.targets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.targets, id)
	return nil
}

func (f *fakeTargetRepo) List(_ context.Context) ([]domain.Target, error) {
	var out []domain.Target
	for _, t := range f.targets {
		out = append(out, *t)
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []domain.Message
	nextID   int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{nextID: 1}
}

func (f *fakeMessageRepo) Create(_ context.Context, message *domain.Message) error {
	message.ID = f.nextID
	message.Time = time.Now()
	f.nextID++
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id int64) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeMessageRepo) List(_ context.Context) ([]domain.Message, error) {
	out := make([]domain.Message, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

type fakePasswordRepo struct {
	hash string
}

func (f *fakePasswordRepo) GetHash(_ context.Context) (string, error) {
	return f.hash, nil
}

func (f *fakePasswordRepo) UpdateHash(_ context.Context, hash string) error {
	f.hash = hash
	return nil
}

type fakeTokenRepo struct {
	tokens []domain.APIToken
	nextID int64
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{nextID: 1}
}

func (f *fakeTokenRepo) GetActiveByValue(_ context.Context, token string) (*domain.APIToken, error) {
	for _, t := range f.tokens {
		if t.Token == token && !t.Revoked {
			copied := t
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTokenRepo) TouchLastUsed(_ context.Context, id int64) error {
	now := time.Now()
	for i := range f.tokens {
		if f.tokens[i].ID == id {
			f.tokens[i].LastUsed = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeTokenRepo) Create(_ context.Context, token *domain.APIToken) error {
	token.ID = f.nextID
	token.CreatedAt = time.Now()
	f.nextID++
	f.tokens = append(f.tokens, *token)
	return nil
}

func (f *fakeTokenRepo) Revoke(_ context.Context, id int64) error {
	for i := range f.tokens {
		if f.tokens[i].ID == id {
			f.tokens[i].Revoked = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeTokenRepo) List(_ context.Context) ([]domain.APIToken, error) {
	out := make([]domain.APIToken, len(f.tokens))
	copy(out, f.tokens)
	return out, nil
}
