package domain

import "time"

// APITokenLength is the exact length of an opaque bearer token value.
const APITokenLength = 64

// APIToken is a stored API credential. Token holds the opaque 64-character
// value; a revoked token never authenticates.
type APIToken struct {
	ID        int64
	Token     string
	Name      string
	CreatedAt time.Time
	LastUsed  *time.Time
	Revoked   bool
}
