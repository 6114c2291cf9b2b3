package dto

import "time"

// CreateMessageRequest payload for POST /api/messages.
type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MessageResponse mirrors the stored message row.
type MessageResponse struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}
