package dto

import "time"

// CreateNoteRequest payload for POST /api/notes.
type CreateNoteRequest struct {
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Category *string `json:"category"`
}

// UpdateNoteRequest payload for PUT /api/notes.
type UpdateNoteRequest struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// TrashNoteRequest payload for PUT /api/notes/trash.
type TrashNoteRequest struct {
	ID    int64 `json:"id"`
	Trash bool  `json:"trash"`
}

// FavoriteNoteRequest payload for PUT /api/notes/favorite.
type FavoriteNoteRequest struct {
	ID       int64 `json:"id"`
	Favorite bool  `json:"favorite"`
}

// ShareNoteRequest payload for POST /api/notes/share.
type ShareNoteRequest struct {
	ID int64 `json:"id"`
}

// NoteResponse mirrors the stored note row.
type NoteResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Category    *string    `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUpdated *time.Time `json:"lastupdated"`
	Favorite    bool       `json:"fav"`
	Trashed     bool       `json:"trash"`
	ShareID     *string    `json:"shareid"`
}
