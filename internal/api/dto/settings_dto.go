package dto

import "time"

// LoginRequest payload for POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// ChangePasswordRequest payload for PUT /api/settings/password.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// CreateTokenRequest payload for POST /api/settings/tokens.
type CreateTokenRequest struct {
	Name string `json:"name"`
}

// TokenResponse lists a stored API token; the opaque value is redacted to its
// prefix except in the creation response.
type TokenResponse struct {
	ID        int64      `json:"id"`
	Token     string     `json:"token,omitempty"`
	TokenHint string     `json:"token_hint,omitempty"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used"`
	Revoked   bool       `json:"revoked"`
}
