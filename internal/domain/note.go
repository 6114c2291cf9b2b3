package domain

import "time"

// Note is the aggregate for dashboard notes.
type Note struct {
	ID          int64
	Title       string
	Body        string
	Category    *string
	CreatedAt   time.Time
	LastUpdated *time.Time
	Favorite    bool
	Trashed     bool
	ShareID     *string
}

// MaxNoteTitleLength bounds note titles at the API boundary.
const MaxNoteTitleLength = 255
