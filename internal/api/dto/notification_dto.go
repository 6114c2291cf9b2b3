package dto

import "time"

// NotificationResponse mirrors the stored notification row.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Category  string    `json:"category"`
	Label     string    `json:"label"`
}
